package models

// SuburbRecord holds the precomputed statistics for one postcode/suburb.
// Numeric pointers are nil when the underlying bond data had too few
// lodgements to publish a figure — nil means "unknown", never zero.
type SuburbRecord struct {
	SuburbKey string  `db:"suburb_key" json:"suburb_key"`
	Postcode  string  `db:"postcode" json:"postcode"`
	Name      string  `db:"name" json:"name"`
	Latitude  float64 `db:"latitude" json:"lat"`
	Longitude float64 `db:"longitude" json:"lng"`

	// Median weekly rent by bedroom count.
	Rent1Bed    *float64 `db:"rent_1bed" json:"rent_1bed,omitempty"`
	Rent2Bed    *float64 `db:"rent_2bed" json:"rent_2bed,omitempty"`
	Rent3Bed    *float64 `db:"rent_3bed" json:"rent_3bed,omitempty"`
	Rent4Bed    *float64 `db:"rent_4bed" json:"rent_4bed,omitempty"`
	Rent5Plus   *float64 `db:"rent_5plus" json:"rent_5plus,omitempty"`
	RentOverall *float64 `db:"rent_overall" json:"rent_overall,omitempty"`
	RentAverage *float64 `db:"rent_average" json:"rent_average,omitempty"`

	// Total bond lodgements, used as a supply proxy.
	TotalBonds int64 `db:"total_bonds" json:"total_bonds"`

	// Area median weekly household income.
	MedianIncome *float64 `db:"median_income" json:"median_income,omitempty"`

	// Dwelling type -> percentage of stock (sums to ~100).
	DwellingMix map[string]float64 `json:"dwelling_mix,omitempty"`

	// Year -> median weekly rent, oldest to newest.
	RentTrend []TrendPoint `json:"rent_trend,omitempty"`
}

// TrendPoint is one year of the median rent trend series.
type TrendPoint struct {
	Year int     `json:"year"`
	Rent float64 `json:"rent"`
}

// RentForBedrooms returns the median rent for a bedroom count (1-5, where 5
// means "5 or more"), or nil when the dataset has no figure.
func (s *SuburbRecord) RentForBedrooms(bedrooms int) *float64 {
	switch bedrooms {
	case 1:
		return s.Rent1Bed
	case 2:
		return s.Rent2Bed
	case 3:
		return s.Rent3Bed
	case 4:
		return s.Rent4Bed
	case 5:
		return s.Rent5Plus
	default:
		return nil
	}
}

// TrainStation is one entry in the static transit station table.
type TrainStation struct {
	Name      string   `db:"name" json:"name"`
	Latitude  float64  `db:"latitude" json:"lat"`
	Longitude float64  `db:"longitude" json:"lng"`
	Lines     []string `json:"lines"`
	Mode      string   `db:"mode" json:"mode"` // train, metro, light_rail, ferry
}

// Amenity is a single named point of interest near a postcode centroid.
type Amenity struct {
	Name       string  `db:"name" json:"name"`
	Category   string  `db:"category" json:"category"`
	DistanceKm float64 `db:"distance_km" json:"distance_km"`
}

// NearbyStation is a station joined with its distance from a suburb centroid.
type NearbyStation struct {
	Name       string   `json:"name"`
	Lines      []string `json:"lines"`
	Mode       string   `json:"mode"`
	DistanceKm float64  `json:"distance_km"`
}
