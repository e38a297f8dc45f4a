package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"
)

// IsochroneClient generates driving time isochrones using Valhalla
type IsochroneClient struct {
	client  *http.Client
	baseURL string
	cache   *ttlCache
}

// GeoJSON types for isochrone data
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []GeoJSONFeature `json:"features"`
}

type GeoJSONFeature struct {
	Type       string                 `json:"type"`
	Geometry   GeoJSONGeometry        `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

type GeoJSONGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// NewIsochroneClient creates a new isochrone client backed by Valhalla.
func NewIsochroneClient(baseURL string, cacheTTL time.Duration) *IsochroneClient {
	if baseURL == "" {
		baseURL = "https://valhalla1.openstreetmap.de"
	}
	return &IsochroneClient{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
		cache:   newTTLCache(cacheTTL),
	}
}

type valhallaIsochroneRequest struct {
	Locations []struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"locations"`
	Costing  string `json:"costing"`
	Contours []struct {
		Time int `json:"time"`
	} `json:"contours"`
	Polygons bool `json:"polygons"`
}

// GetIsochrones generates travel-time polygons around a point, one contour
// per requested minutes value. Valhalla accepts at most 4 contours; callers
// pass up to that many. Cached by coordinates rounded to 2 decimals plus the
// contour list.
func (g *IsochroneClient) GetIsochrones(ctx context.Context, lat, lng float64, minutes []int) (*GeoJSONFeatureCollection, error) {
	if len(minutes) == 0 {
		return nil, fmt.Errorf("at least one contour is required")
	}
	if len(minutes) > 4 {
		return nil, fmt.Errorf("at most 4 contours are supported")
	}

	// Normalize the contour order so tagging below is independent of how the
	// caller listed the ranges.
	sorted := make([]int, len(minutes))
	copy(sorted, minutes)
	sort.Ints(sorted)

	key := cacheKey(2, []float64{lat, lng}, fmt.Sprint(sorted))
	if cached, ok := g.cache.get(key); ok {
		return cached.(*GeoJSONFeatureCollection), nil
	}

	reqBody := valhallaIsochroneRequest{Costing: "auto", Polygons: true}
	reqBody.Locations = []struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}{{Lat: lat, Lon: lng}}
	for _, m := range sorted {
		reqBody.Contours = append(reqBody.Contours, struct {
			Time int `json:"time"`
		}{Time: m})
	}
	requestJSON, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/isochrone?json=%s", g.baseURL, url.QueryEscape(string(requestJSON)))

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "RentSmart/1.0")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: "isochrone", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &ProviderError{Provider: "isochrone", Status: resp.StatusCode, Message: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var result GeoJSONFeatureCollection
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &ProviderError{Provider: "isochrone", Message: fmt.Sprintf("failed to parse response: %v", err)}
	}

	// Valhalla orders contours largest first; tag each feature with its minutes
	for i := range result.Features {
		if result.Features[i].Properties == nil {
			result.Features[i].Properties = make(map[string]interface{})
		}
		if i < len(sorted) {
			result.Features[i].Properties["minutes"] = sorted[len(sorted)-1-i]
		}
	}

	g.cache.set(key, &result)
	return &result, nil
}
