package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/models"
)

func TestHaversineSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{-33.8688, 151.2093, -33.8150, 151.0011}, // CBD <-> Parramatta
		{-33.7510, 150.6940, -33.8915, 151.2767}, // Penrith <-> Bondi
		{0, 0, 45, 90},
	}
	for _, p := range pairs {
		ab := Haversine(p[0], p[1], p[2], p[3])
		ba := Haversine(p[2], p[3], p[0], p[1])
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestHaversineIdentity(t *testing.T) {
	assert.Equal(t, 0.0, Haversine(-33.8688, 151.2093, -33.8688, 151.2093))
}

func TestHaversineKnownDistance(t *testing.T) {
	// Sydney CBD to Parramatta is roughly 20 km as the crow flies
	d := Haversine(SydneyCBD.Lat, SydneyCBD.Lng, -33.8150, 151.0011)
	assert.InDelta(t, 20, d, 1.5)
}

func testStations() []models.TrainStation {
	return []models.TrainStation{
		{Name: "Central", Latitude: -33.8832, Longitude: 151.2070, Lines: []string{"T1"}, Mode: "train"},
		{Name: "Parramatta", Latitude: -33.8173, Longitude: 151.0046, Lines: []string{"T1"}, Mode: "train"},
		{Name: "Penrith", Latitude: -33.7509, Longitude: 150.6954, Lines: []string{"T1"}, Mode: "train"},
	}
}

func TestNearestStation(t *testing.T) {
	// Near Parramatta
	st := NearestStation(-33.8150, 151.0011, testStations())
	assert.NotNil(t, st)
	assert.Equal(t, "Parramatta", st.Name)
	assert.Less(t, st.DistanceKm, 1.0)

	assert.Nil(t, NearestStation(0, 0, nil))
}

func TestStationsWithin(t *testing.T) {
	// From Parramatta: Central is ~20 km, Penrith ~30 km
	within := StationsWithin(-33.8173, 151.0046, 25, testStations())
	assert.Len(t, within, 2)
	assert.Equal(t, "Parramatta", within[0].Name, "sorted nearest first")
	assert.Equal(t, "Central", within[1].Name)
}

func TestEstimateDriveMins(t *testing.T) {
	tests := []struct {
		km   float64
		want int
	}{
		{0.2, 5},  // floor of 5 minutes
		{2, 24},   // 2*12
		{5, 25},   // 15 + 5*2
		{20, 56},  // 20 + 20*1.8
		{40, 90},  // 30 + 40*1.5
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateDriveMins(tt.km), "km=%v", tt.km)
	}
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 1.3, Round1(1.25))
	assert.Equal(t, 1.2, Round1(1.249))
	assert.Equal(t, 1.25, Round2(1.2499))
}
