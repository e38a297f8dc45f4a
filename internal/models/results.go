package models

// ResolvedRent is the outcome of applying the shared-living policy to a
// suburb's medians.
type ResolvedRent struct {
	TotalRent     float64 `json:"total_rent"`
	PerPersonRent float64 `json:"per_person_rent"`
	Bedrooms      int     `json:"bedrooms"` // 0 means the overall median was used
	Estimated     bool    `json:"rent_estimated"`
}

// RankedSuburb is one row of a recommendation response. Built fresh per
// request, never persisted.
type RankedSuburb struct {
	SuburbKey string  `json:"suburb_key"`
	Postcode  string  `json:"postcode"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`

	WeeklyRent    float64 `json:"weekly_rent"`
	RentBedrooms  int     `json:"rent_bedrooms"`
	RentEstimated bool    `json:"rent_estimated"`
	StressPct     float64 `json:"stress_pct"`
	Rating        string  `json:"rating"`

	AffordabilityScore float64 `json:"affordability_score"`
	RankScore          float64 `json:"rank_score"`

	NearestStation *NearbyStation   `json:"nearest_station,omitempty"`
	Commute        *CommuteEstimate `json:"commute,omitempty"`

	TotalBonds  int64              `json:"total_bonds"`
	RentTrend   []TrendPoint       `json:"rent_trend,omitempty"`
	DwellingMix map[string]float64 `json:"dwelling_mix,omitempty"`
}

// CommuteEstimate is the rough workplace commute attached to a ranked suburb.
type CommuteEstimate struct {
	Workplace     string  `json:"workplace"`
	DistanceKm    float64 `json:"distance_km"`
	EstimatedMins int     `json:"estimated_mins"`
}

// AffordabilityResult is the response body for a single-postcode stress check.
type AffordabilityResult struct {
	SuburbKey  string  `json:"suburb_key"`
	Postcode   string  `json:"postcode"`
	Name       string  `json:"name"`
	Bedrooms   int     `json:"bedrooms"`
	WeeklyRent float64 `json:"weekly_rent"`
	StressPct  float64 `json:"stress_pct"`
	Rating     string  `json:"rating"`
}
