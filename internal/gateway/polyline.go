package gateway

// decodePolyline decodes a Google-style encoded polyline into [lat, lng]
// pairs. Valhalla encodes shapes with 6 decimal places of precision.
func decodePolyline(encoded string, precision float64) [][2]float64 {
	var coords [][2]float64
	var lat, lng int64

	i := 0
	next := func() int64 {
		var result int64
		var shift uint
		for {
			if i >= len(encoded) {
				return result >> 1 // truncated input; best effort
			}
			b := int64(encoded[i]) - 63
			i++
			result |= (b & 0x1f) << shift
			shift += 5
			if b < 0x20 {
				break
			}
		}
		if result&1 != 0 {
			return ^(result >> 1)
		}
		return result >> 1
	}

	for i < len(encoded) {
		lat += next()
		if i >= len(encoded) {
			break
		}
		lng += next()
		coords = append(coords, [2]float64{float64(lat) / precision, float64(lng) / precision})
	}
	return coords
}
