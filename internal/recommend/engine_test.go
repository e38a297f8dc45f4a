package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/dataset"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/models"
)

func fp(v float64) *float64 { return &v }

func testEngine() *Engine {
	suburbs := []models.SuburbRecord{
		{
			SuburbKey: "auburn-2144", Postcode: "2144", Name: "Auburn",
			Latitude: -33.8495, Longitude: 151.0331,
			Rent1Bed: fp(520), Rent2Bed: fp(480), RentOverall: fp(530),
			TotalBonds: 1000,
		},
		{
			SuburbKey: "bondi-2026", Postcode: "2026", Name: "Bondi",
			Latitude: -33.8915, Longitude: 151.2767,
			Rent2Bed: fp(1250), RentOverall: fp(1050),
			TotalBonds: 2000,
		},
		{
			SuburbKey: "newtown-2042", Postcode: "2042", Name: "Newtown",
			Latitude: -33.8978, Longitude: 151.1785,
			Rent2Bed: fp(600), RentOverall: fp(760),
			TotalBonds: 500,
			RentTrend:  []models.TrendPoint{{Year: 2021, Rent: 500}, {Year: 2024, Rent: 600}},
		},
		{
			SuburbKey: "nodata-2999", Postcode: "2999", Name: "Nodata",
			Latitude: -33.7, Longitude: 151.0,
		},
	}
	stations := []models.TrainStation{
		{Name: "Auburn", Latitude: -33.8494, Longitude: 151.0330, Mode: "train"},
		{Name: "Central", Latitude: -33.8832, Longitude: 151.2070, Mode: "train"},
	}
	return NewEngine(dataset.New(suburbs, stations, nil))
}

func TestRecommendFiltersAndSorts(t *testing.T) {
	e := testEngine()

	resp, err := e.Recommend(Request{WeeklyIncome: 1200, Bedrooms: 2})
	assert.NoError(t, err)

	// Bondi's 2-bed at $1250 is 104.2% of income: excluded. Nodata has no
	// rent figure at all: excluded.
	assert.Len(t, resp.Suburbs, 2)
	for _, s := range resp.Suburbs {
		assert.LessOrEqual(t, s.StressPct, 100.0)
	}

	// Sorted ascending by rank score
	for i := 1; i < len(resp.Suburbs); i++ {
		assert.LessOrEqual(t, resp.Suburbs[i-1].RankScore, resp.Suburbs[i].RankScore)
	}

	// Auburn: stress 40.0, supply 1000/500=2, no trend -> 38.0
	auburn := resp.Suburbs[0]
	assert.Equal(t, "auburn-2144", auburn.SuburbKey)
	assert.Equal(t, 40.0, auburn.StressPct)
	assert.Equal(t, 38.0, auburn.RankScore)
	assert.Equal(t, "stressed", auburn.Rating)

	// Newtown: stress 50.0, supply 1, trend +20% -> penalty 2 -> 51.0
	newtown := resp.Suburbs[1]
	assert.Equal(t, "newtown-2042", newtown.SuburbKey)
	assert.Equal(t, 50.0, newtown.StressPct)
	assert.Equal(t, 51.0, newtown.RankScore)
}

func TestRecommendSharedBedroomPair(t *testing.T) {
	e := testEngine()

	resp, err := e.Recommend(Request{WeeklyIncome: 600, Sharing: 2, ShareBedroom: true})
	assert.NoError(t, err)

	var auburn *models.RankedSuburb
	for i := range resp.Suburbs {
		if resp.Suburbs[i].SuburbKey == "auburn-2144" {
			auburn = &resp.Suburbs[i]
		}
	}
	if assert.NotNil(t, auburn, "auburn has a 1-bed figure for the sharing pair") {
		assert.Equal(t, 260.0, auburn.WeeklyRent)
		assert.Equal(t, 1, auburn.RentBedrooms)
		assert.False(t, auburn.RentEstimated)
	}
}

func TestRecommendAttachesStations(t *testing.T) {
	e := testEngine()

	resp, err := e.Recommend(Request{WeeklyIncome: 2000, Bedrooms: 2})
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Suburbs)

	for _, s := range resp.Suburbs {
		if s.SuburbKey == "auburn-2144" {
			assert.NotNil(t, s.NearestStation)
			assert.Equal(t, "Auburn", s.NearestStation.Name)
		}
	}
}

func TestRecommendWorkplaceExactMatch(t *testing.T) {
	e := testEngine()

	resp, err := e.Recommend(Request{WeeklyIncome: 2000, Bedrooms: 2, Workplace: "Newtown"})
	assert.NoError(t, err)

	if assert.NotNil(t, resp.Workplace) {
		assert.Equal(t, "newtown-2042", resp.Workplace.SuburbKey)
		assert.Equal(t, -33.8978, resp.Workplace.Latitude)
	}

	for _, s := range resp.Suburbs {
		if assert.NotNil(t, s.Commute, "every result gets a commute when a workplace resolves") {
			assert.Equal(t, "Newtown", s.Commute.Workplace)
			assert.Greater(t, s.Commute.EstimatedMins, 0)
		}
		if s.SuburbKey == "newtown-2042" {
			assert.Equal(t, 0.0, s.Commute.DistanceKm, "workplace suburb commutes to itself")
		}
	}
}

func TestRecommendLimit(t *testing.T) {
	e := testEngine()

	resp, err := e.Recommend(Request{WeeklyIncome: 5000, Limit: 1})
	assert.NoError(t, err)
	assert.Len(t, resp.Suburbs, 1)
}

func TestRequestValidation(t *testing.T) {
	e := testEngine()

	_, err := e.Recommend(Request{WeeklyIncome: -1})
	assert.Error(t, err)

	_, err = e.Recommend(Request{WeeklyIncome: 1000, Bedrooms: 6})
	assert.Error(t, err)

	_, err = e.Recommend(Request{WeeklyIncome: 1000, Sharing: 5})
	assert.Error(t, err)
}
