package gateway

import (
	"context"
	"math"
	"sync"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/geo"
)

// CommuteResult joins the transit and driving branches of a commute lookup.
// Either branch may fail independently; its error string is set and the other
// branch's result still comes back.
type CommuteResult struct {
	Transit      *TransitResult `json:"transit,omitempty"`
	TransitError string         `json:"transit_error,omitempty"`

	Driving      *RouteResult `json:"driving,omitempty"`
	DrivingError string       `json:"driving_error,omitempty"`

	StraightLineKm float64 `json:"straight_line_km"`
	Estimated      bool    `json:"estimated"`
}

// CommuteService fans out to the trip planner and the router in parallel.
type CommuteService struct {
	transit *TransitClient
	router  *Router
}

// NewCommuteService wires the two commute branches together.
func NewCommuteService(transit *TransitClient, router *Router) *CommuteService {
	return &CommuteService{transit: transit, router: router}
}

// GetCommute runs both branches concurrently and waits for both (all-settled:
// one branch failing never cancels the other). When the driving branch fails
// entirely the result falls back to a straight-line estimate and is flagged.
func (s *CommuteService) GetCommute(ctx context.Context, fromLat, fromLng, toLat, toLng float64) *CommuteResult {
	straight := geo.Haversine(fromLat, fromLng, toLat, toLng)
	result := &CommuteResult{
		StraightLineKm: geo.Round1(straight),
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		transit, err := s.transit.PlanTrip(ctx, fromLat, fromLng, toLat, toLng)
		if err != nil {
			result.TransitError = err.Error()
			return
		}
		result.Transit = transit
	}()

	go func() {
		defer wg.Done()
		driving, err := s.router.GetRoute(ctx, fromLat, fromLng, toLat, toLng, ModeDriving)
		if err != nil {
			result.DrivingError = err.Error()
			return
		}
		result.Driving = driving
	}()

	wg.Wait()

	if result.Driving == nil {
		// Distance-based fallback: roads are longer and slower than the crow
		// flies.
		result.Driving = &RouteResult{
			DurationMins: math.Round(straight * 2),
			DistanceKm:   geo.Round1(straight * 1.3),
		}
		result.Estimated = true
	}

	return result
}
