package geo

import (
	"math"
	"sort"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/models"
)

const (
	// Earth radius in kilometers
	EarthRadiusKm = 6371.0
)

// Haversine calculates the great-circle distance between two points
// Returns distance in kilometers
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	// Convert to radians
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	// Haversine formula
	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Sydney CBD coordinates
var SydneyCBD = struct {
	Lat float64
	Lng float64
}{
	Lat: -33.8688,
	Lng: 151.2093,
}

// NearestStation scans the station table and returns the closest station to
// a point, with the distance rounded to 2 decimals for sub-kilometre
// precision. Linear scan - fine at a few hundred stations.
func NearestStation(lat, lng float64, stations []models.TrainStation) *models.NearbyStation {
	if len(stations) == 0 {
		return nil
	}

	minDist := math.MaxFloat64
	var nearest models.TrainStation

	for _, st := range stations {
		dist := Haversine(lat, lng, st.Latitude, st.Longitude)
		if dist < minDist {
			minDist = dist
			nearest = st
		}
	}

	return &models.NearbyStation{
		Name:       nearest.Name,
		Lines:      nearest.Lines,
		Mode:       nearest.Mode,
		DistanceKm: Round2(minDist),
	}
}

// StationsWithin returns all stations within radiusKm of a point, nearest
// first.
func StationsWithin(lat, lng, radiusKm float64, stations []models.TrainStation) []models.NearbyStation {
	var result []models.NearbyStation
	for _, st := range stations {
		dist := Haversine(lat, lng, st.Latitude, st.Longitude)
		if dist <= radiusKm {
			result = append(result, models.NearbyStation{
				Name:       st.Name,
				Lines:      st.Lines,
				Mode:       st.Mode,
				DistanceKm: Round2(dist),
			})
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	})
	return result
}

// EstimateDriveMins converts a straight-line distance to a rough drive time.
// This is the one canonical approximation used wherever a routing provider
// estimate is unavailable: short hops are dominated by local streets, long
// hauls by motorway speeds.
func EstimateDriveMins(distanceKm float64) int {
	switch {
	case distanceKm < 3:
		mins := int(math.Round(distanceKm * 12))
		if mins < 5 {
			mins = 5
		}
		return mins
	case distanceKm < 10:
		return int(math.Round(15 + distanceKm*2))
	case distanceKm < 30:
		return int(math.Round(20 + distanceKm*1.8))
	default:
		return int(math.Round(30 + distanceKm*1.5))
	}
}
