package dataprep

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Geocoder handles suburb centroid geocoding using Nominatim
type Geocoder struct {
	client    *http.Client
	userAgent string
	baseURL   string
}

// NominatimResult represents a geocoding result from Nominatim
type NominatimResult struct {
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	DisplayName string  `json:"display_name"`
	Type        string  `json:"type"`
	Importance  float64 `json:"importance"`
}

// NewGeocoder creates a new Nominatim geocoder
func NewGeocoder() *Geocoder {
	return &Geocoder{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		userAgent: "RentSmart/1.0 (rent affordability application)",
		baseURL:   "https://nominatim.openstreetmap.org",
	}
}

// GeocodeSuburb converts a suburb name and postcode to centroid coordinates
func (g *Geocoder) GeocodeSuburb(ctx context.Context, suburb, postcode string) (lat, lng float64, err error) {
	// Build the request URL
	params := url.Values{}
	params.Set("q", fmt.Sprintf("%s NSW %s, Australia", suburb, postcode))
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("countrycodes", "au")

	reqURL := fmt.Sprintf("%s/search?%s", g.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create request: %w", err)
	}

	// Nominatim requires a valid User-Agent
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, 0, fmt.Errorf("geocode API error %d: %s", resp.StatusCode, string(body))
	}

	var results []NominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, fmt.Errorf("failed to parse geocode response: %w", err)
	}

	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocode result for %s %s", suburb, postcode)
	}

	lat, err = strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err = strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude: %w", err)
	}

	return lat, lng, nil
}
