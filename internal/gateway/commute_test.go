package gateway

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/geo"
)

func TestCommutePartialFailure(t *testing.T) {
	// Driving branch works, transit branch has no API key configured
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(valhallaRouteBody))
	}))
	defer srv.Close()

	transit := NewTransitClient("", "", time.Hour)
	router := NewRouter(srv.URL, time.Hour)
	svc := NewCommuteService(transit, router)

	result := svc.GetCommute(context.Background(), -33.86, 151.20, -33.81, 151.00)

	assert.NotNil(t, result.Driving)
	assert.False(t, result.Estimated)
	assert.Nil(t, result.Transit)
	assert.NotEmpty(t, result.TransitError)
	assert.Greater(t, result.StraightLineKm, 0.0)
}

func TestCommuteDrivingFallback(t *testing.T) {
	// Both branches fail; driving falls back to a straight-line estimate
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	transit := NewTransitClient("", "", time.Hour)
	router := NewRouter(srv.URL, time.Hour)
	svc := NewCommuteService(transit, router)

	fromLat, fromLng, toLat, toLng := -33.86, 151.20, -33.81, 151.00
	result := svc.GetCommute(context.Background(), fromLat, fromLng, toLat, toLng)

	assert.NotEmpty(t, result.DrivingError)
	assert.True(t, result.Estimated)

	straight := geo.Haversine(fromLat, fromLng, toLat, toLng)
	if assert.NotNil(t, result.Driving) {
		assert.Equal(t, math.Round(straight*2), result.Driving.DurationMins)
		assert.Equal(t, geo.Round1(straight*1.3), result.Driving.DistanceKm)
	}
}

func TestCommuteTransitSuccess(t *testing.T) {
	transitSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "apikey test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"journeys":[{"legs":[
			{"duration":300,"transportation":{"product":{"class":100}}},
			{"duration":1200,"transportation":{"product":{"class":1},"disassembledName":"T1"}},
			{"duration":900,"transportation":{"product":{"class":5},"disassembledName":"400"}}
		]}]}`))
	}))
	defer transitSrv.Close()

	routeSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(valhallaRouteBody))
	}))
	defer routeSrv.Close()

	transit := NewTransitClient(transitSrv.URL, "test-key", time.Hour)
	router := NewRouter(routeSrv.URL, time.Hour)
	svc := NewCommuteService(transit, router)

	result := svc.GetCommute(context.Background(), -33.86, 151.20, -33.81, 151.00)

	assert.Empty(t, result.TransitError)
	if assert.NotNil(t, result.Transit) {
		assert.Equal(t, 40.0, result.Transit.DurationMins) // 2400s
		assert.Equal(t, 1, result.Transit.Changes)         // train + bus
		assert.Len(t, result.Transit.Legs, 3)
		assert.Equal(t, "walk", result.Transit.Legs[0].Mode)
		assert.Equal(t, "train", result.Transit.Legs[1].Mode)
		assert.Equal(t, "T1", result.Transit.Legs[1].Line)
	}
	assert.NotNil(t, result.Driving)
}
