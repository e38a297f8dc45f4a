package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/geo"
)

// MaxPOIRadiusM caps how far an Overpass search may reach.
const MaxPOIRadiusM = 5000

// OverpassClient searches OSM points of interest via the Overpass API
type OverpassClient struct {
	client  *http.Client
	baseURL string
	cache   *ttlCache
}

// POI is a normalized OSM point of interest
type POI struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Latitude   float64 `json:"lat"`
	Longitude  float64 `json:"lng"`
	DistanceKm float64 `json:"distance_km"`
}

// POIResult groups nearby points of interest by category
type POIResult struct {
	Categories map[string][]POI `json:"categories"`
	Total      int              `json:"total"`
}

// NewOverpassClient creates a new Overpass API client.
func NewOverpassClient(baseURL string, cacheTTL time.Duration) *OverpassClient {
	if baseURL == "" {
		baseURL = "https://overpass-api.de/api/interpreter"
	}
	return &OverpassClient{
		client: &http.Client{
			Timeout: 25 * time.Second,
		},
		baseURL: baseURL,
		cache:   newTTLCache(cacheTTL),
	}
}

type overpassResponse struct {
	Elements []struct {
		Type   string  `json:"type"`
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
		Center *struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"center"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// OSM tag value -> our amenity taxonomy
var osmCategories = map[string]string{
	"hospital":     "hospital",
	"clinic":       "hospital",
	"school":       "school",
	"university":   "university",
	"college":      "university",
	"fire_station": "fire_station",
	"police":       "police",
	"childcare":    "childcare",
	"kindergarten": "childcare",
	"pharmacy":     "pharmacy",
	"supermarket":  "supermarket",
	"park":         "park",
}

// SearchPOI finds categorized points of interest within radiusM metres of a
// point. The radius is capped at MaxPOIRadiusM. Cached by coordinates rounded
// to 3 decimals plus the effective radius.
func (c *OverpassClient) SearchPOI(ctx context.Context, lat, lng float64, radiusM int) (*POIResult, error) {
	if radiusM <= 0 {
		radiusM = 1500
	}
	if radiusM > MaxPOIRadiusM {
		radiusM = MaxPOIRadiusM
	}

	key := cacheKey(3, []float64{lat, lng}, fmt.Sprintf("r%d", radiusM))
	if cached, ok := c.cache.get(key); ok {
		return cached.(*POIResult), nil
	}

	query := fmt.Sprintf(`[out:json][timeout:25];
(
  node["amenity"](around:%d,%f,%f);
  way["amenity"](around:%d,%f,%f);
  node["shop"="supermarket"](around:%d,%f,%f);
  node["leisure"="park"](around:%d,%f,%f);
  way["leisure"="park"](around:%d,%f,%f);
);
out center 200;`,
		radiusM, lat, lng, radiusM, lat, lng, radiusM, lat, lng, radiusM, lat, lng, radiusM, lat, lng)

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "RentSmart/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: "overpass", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &ProviderError{Provider: "overpass", Status: resp.StatusCode, Message: string(body)}
	}

	var parsed overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &ProviderError{Provider: "overpass", Message: fmt.Sprintf("failed to parse response: %v", err)}
	}

	result := &POIResult{Categories: make(map[string][]POI)}
	for _, el := range parsed.Elements {
		elLat, elLng := el.Lat, el.Lon
		if el.Center != nil {
			elLat, elLng = el.Center.Lat, el.Center.Lon
		}
		if elLat == 0 && elLng == 0 {
			continue
		}

		category := categorize(el.Tags)
		if category == "" {
			continue
		}
		name := el.Tags["name"]
		if name == "" {
			continue
		}

		result.Categories[category] = append(result.Categories[category], POI{
			Name:       name,
			Category:   category,
			Latitude:   elLat,
			Longitude:  elLng,
			DistanceKm: geo.Round2(geo.Haversine(lat, lng, elLat, elLng)),
		})
		result.Total++
	}

	c.cache.set(key, result)
	return result, nil
}

func categorize(tags map[string]string) string {
	if cat, ok := osmCategories[tags["amenity"]]; ok {
		return cat
	}
	if tags["shop"] == "supermarket" {
		return "supermarket"
	}
	if tags["leisure"] == "park" {
		return "park"
	}
	return ""
}
