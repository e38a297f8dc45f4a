package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Travel modes accepted by the routing gateway.
const (
	ModeDriving = "driving"
	ModeCycling = "cycling"
)

// Router calculates routes and travel times using Valhalla
type Router struct {
	client  *http.Client
	baseURL string
	cache   *ttlCache
}

// RouteResult is the normalized result of a route calculation
type RouteResult struct {
	DurationMins float64      `json:"duration_mins"`
	DistanceKm   float64      `json:"distance_km"`
	Geometry     [][2]float64 `json:"geometry,omitempty"` // [lat, lng] pairs
}

// NewRouter creates a new router using Valhalla
// Pass empty string to use the public Valhalla server
// Pass a URL like "http://localhost:8002" for a local instance
func NewRouter(baseURL string, cacheTTL time.Duration) *Router {
	if baseURL == "" {
		baseURL = "https://valhalla1.openstreetmap.de"
	}
	return &Router{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
		cache:   newTTLCache(cacheTTL),
	}
}

// valhallaRouteResponse represents the Valhalla route API response
type valhallaRouteResponse struct {
	Trip struct {
		Summary struct {
			Time   float64 `json:"time"`   // Duration in seconds
			Length float64 `json:"length"` // Distance in kilometers
		} `json:"summary"`
		Legs []struct {
			Shape string `json:"shape"` // Encoded polyline, 1e6 precision
		} `json:"legs"`
	} `json:"trip"`
}

func valhallaCosting(mode string) (string, error) {
	switch mode {
	case ModeDriving, "":
		return "auto", nil
	case ModeCycling:
		return "bicycle", nil
	default:
		return "", fmt.Errorf("unsupported travel mode %q", mode)
	}
}

// GetRoute calculates the route between two points for the given travel mode.
// Successful results are cached by coordinates rounded to 3 decimals and mode.
func (r *Router) GetRoute(ctx context.Context, fromLat, fromLng, toLat, toLng float64, mode string) (*RouteResult, error) {
	costing, err := valhallaCosting(mode)
	if err != nil {
		return nil, err
	}

	key := cacheKey(3, []float64{fromLat, fromLng, toLat, toLng}, costing)
	if cached, ok := r.cache.get(key); ok {
		return cached.(*RouteResult), nil
	}

	// Build compact request JSON (no whitespace - required for URL encoding)
	requestJSON := fmt.Sprintf(`{"locations":[{"lat":%f,"lon":%f},{"lat":%f,"lon":%f}],"costing":"%s","units":"kilometers"}`,
		fromLat, fromLng, toLat, toLng, costing)

	url := fmt.Sprintf("%s/route?json=%s", r.baseURL, requestJSON)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "RentSmart/1.0")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: "route", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &ProviderError{Provider: "route", Status: resp.StatusCode, Message: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result valhallaRouteResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &ProviderError{Provider: "route", Message: fmt.Sprintf("failed to parse response: %v", err)}
	}

	var geometry [][2]float64
	for _, leg := range result.Trip.Legs {
		geometry = append(geometry, decodePolyline(leg.Shape, 1e6)...)
	}

	// Apply 10% buffer to account for traffic, stops, and real-world conditions
	durationMins := (result.Trip.Summary.Time / 60.0) * 1.1

	route := &RouteResult{
		DurationMins: durationMins,
		DistanceKm:   result.Trip.Summary.Length,
		Geometry:     geometry,
	}
	r.cache.set(key, route)

	return route, nil
}
