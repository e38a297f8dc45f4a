package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// TransitClient plans public transport journeys via the Transport NSW Trip
// Planner API.
type TransitClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	cache   *ttlCache
	now     func() time.Time
}

// TransitLeg is one leg of a planned journey.
type TransitLeg struct {
	Mode         string  `json:"mode"`
	Line         string  `json:"line,omitempty"`
	DurationMins float64 `json:"duration_mins"`
}

// TransitResult is the normalized best journey.
type TransitResult struct {
	DurationMins float64      `json:"duration_mins"`
	Changes      int          `json:"changes"`
	Legs         []TransitLeg `json:"legs"`
}

// NewTransitClient creates a Trip Planner client. apiKey may be empty, in
// which case every call fails with a provider error (the commute fan-out
// tolerates this).
func NewTransitClient(baseURL, apiKey string, cacheTTL time.Duration) *TransitClient {
	if baseURL == "" {
		baseURL = "https://api.transport.nsw.gov.au/v1/tp"
	}
	return &TransitClient{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		cache:   newTTLCache(cacheTTL),
		now:     time.Now,
	}
}

type tripPlannerResponse struct {
	Journeys []struct {
		Legs []struct {
			Duration       float64 `json:"duration"` // seconds
			Transportation struct {
				Product struct {
					Name  string `json:"name"`
					Class int    `json:"class"`
				} `json:"product"`
				DisassembledName string `json:"disassembledName"`
			} `json:"transportation"`
		} `json:"legs"`
	} `json:"journeys"`
}

// PlanTrip finds the best public transport journey between two points.
// Cached by coordinates rounded to 3 decimals plus the hour-of-day bucket,
// since timetable results shift across the day.
func (c *TransitClient) PlanTrip(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (*TransitResult, error) {
	if c.apiKey == "" {
		return nil, &ProviderError{Provider: "trip-planner", Message: "no API key configured"}
	}

	key := cacheKey(3, []float64{fromLat, fromLng, toLat, toLng}, fmt.Sprintf("h%d", c.now().Hour()))
	if cached, ok := c.cache.get(key); ok {
		return cached.(*TransitResult), nil
	}

	params := url.Values{}
	params.Set("outputFormat", "rapidJSON")
	params.Set("coordOutputFormat", "EPSG:4326")
	params.Set("depArrMacro", "dep")
	params.Set("type_origin", "coord")
	params.Set("name_origin", fmt.Sprintf("%f:%f:EPSG:4326", fromLng, fromLat))
	params.Set("type_destination", "coord")
	params.Set("name_destination", fmt.Sprintf("%f:%f:EPSG:4326", toLng, toLat))
	params.Set("calcNumberOfTrips", "3")
	params.Set("TfNSWTR", "true")

	reqURL := fmt.Sprintf("%s/trip?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "apikey "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: "trip-planner", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &ProviderError{Provider: "trip-planner", Status: resp.StatusCode, Message: string(body)}
	}

	var parsed tripPlannerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &ProviderError{Provider: "trip-planner", Message: fmt.Sprintf("failed to parse response: %v", err)}
	}

	if len(parsed.Journeys) == 0 {
		return nil, &ProviderError{Provider: "trip-planner", Message: "no journeys found"}
	}

	// Pick the fastest of the returned journeys
	best := -1
	var bestDuration float64
	for i, j := range parsed.Journeys {
		var total float64
		for _, leg := range j.Legs {
			total += leg.Duration
		}
		if best == -1 || total < bestDuration {
			best = i
			bestDuration = total
		}
	}

	journey := parsed.Journeys[best]
	result := &TransitResult{
		DurationMins: bestDuration / 60.0,
	}
	transitLegs := 0
	for _, leg := range journey.Legs {
		mode := productClassMode(leg.Transportation.Product.Class)
		if mode != "walk" {
			transitLegs++
		}
		result.Legs = append(result.Legs, TransitLeg{
			Mode:         mode,
			Line:         leg.Transportation.DisassembledName,
			DurationMins: leg.Duration / 60.0,
		})
	}
	if transitLegs > 0 {
		result.Changes = transitLegs - 1
	}

	c.cache.set(key, result)
	return result, nil
}

// Trip Planner product classes, per the TfNSW API documentation.
func productClassMode(class int) string {
	switch class {
	case 1:
		return "train"
	case 2:
		return "metro"
	case 4:
		return "light_rail"
	case 5, 7:
		return "bus"
	case 9:
		return "ferry"
	case 99, 100:
		return "walk"
	default:
		return "other"
	}
}
