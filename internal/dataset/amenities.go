package dataset

import (
	"math"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/models"
)

// Per-category amenity weights. Each category contributes weight*count up to
// its cap; the overall score is capped at 100.
var amenityWeights = map[string]struct {
	Weight float64
	Cap    float64
}{
	"hospital":     {20, 20},
	"school":       {4, 20},
	"university":   {10, 20},
	"childcare":    {3, 15},
	"police":       {10, 10},
	"fire_station": {5, 5},
	"supermarket":  {2, 10},
	"pharmacy":     {2, 10},
	"park":         {2, 10},
}

// AmenitySummary is the per-postcode amenity response body.
type AmenitySummary struct {
	Postcode   string                      `json:"postcode"`
	Categories map[string][]models.Amenity `json:"categories"`
	Counts     map[string]int              `json:"counts"`
	Score      float64                     `json:"score"`
}

// AmenitiesFor groups a postcode's amenities by category and scores them
// 0-100. Returns nil when the postcode has no amenity data.
func (d *Data) AmenitiesFor(postcode string) *AmenitySummary {
	amenities, ok := d.Amenities[postcode]
	if !ok {
		return nil
	}

	summary := &AmenitySummary{
		Postcode:   postcode,
		Categories: make(map[string][]models.Amenity),
		Counts:     make(map[string]int),
	}
	for _, a := range amenities {
		summary.Categories[a.Category] = append(summary.Categories[a.Category], a)
		summary.Counts[a.Category]++
	}

	var score float64
	for category, count := range summary.Counts {
		w, ok := amenityWeights[category]
		if !ok {
			continue
		}
		score += math.Min(w.Weight*float64(count), w.Cap)
	}
	summary.Score = math.Min(score, 100)

	return summary
}
