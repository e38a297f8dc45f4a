package afford

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/models"
)

func fp(v float64) *float64 { return &v }

func TestRentStress(t *testing.T) {
	tests := []struct {
		name   string
		income float64
		rent   float64
		want   float64
	}{
		{"quarter of income", 1000, 250, 25.0},
		{"thirty percent", 1000, 300, 30.0},
		{"rounds to one decimal", 1200, 480, 40.0},
		{"rounds half up", 900, 283, 31.4},
		{"zero income short-circuits", 0, 500, 100},
		{"negative income short-circuits", -50, 500, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RentStress(tt.income, tt.rent))
		})
	}
}

func TestRatingBoundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{10, RatingComfortable},
		{24.9, RatingComfortable},
		{25.0, RatingManageable},
		{30.0, RatingManageable},
		{30.1, RatingStressed},
		{40.0, RatingStressed},
		{40.1, RatingSevere},
		{100, RatingSevere},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Rating(tt.pct), "pct=%v", tt.pct)
	}
}

func TestZeroIncomeIsSevere(t *testing.T) {
	for _, rent := range []float64{1, 100, 5000} {
		pct := RentStress(0, rent)
		assert.Equal(t, 100.0, pct)
		assert.Equal(t, RatingSevere, Rating(pct))
	}
}

func TestAffordabilityComponent(t *testing.T) {
	assert.Equal(t, 100.0, AffordabilityComponent(0))
	assert.Equal(t, 40.0, AffordabilityComponent(30))
	assert.Equal(t, 0.0, AffordabilityComponent(60))
	assert.Equal(t, 0.0, AffordabilityComponent(80))
}

func TestSupplyBonus(t *testing.T) {
	assert.Equal(t, 0.0, SupplyBonus(0))
	assert.Equal(t, 1.0, SupplyBonus(500))
	assert.Equal(t, 5.0, SupplyBonus(2500))
	assert.Equal(t, 5.0, SupplyBonus(100000)) // capped
}

func TestTrendPenalty(t *testing.T) {
	none := []models.TrendPoint{{Year: 2024, Rent: 500}}
	assert.Equal(t, 0.0, TrendPenalty(none), "single year has no trend")

	flat := []models.TrendPoint{{Year: 2023, Rent: 500}, {Year: 2024, Rent: 540}}
	assert.Equal(t, 0.0, TrendPenalty(flat), "8%% increase is under the threshold")

	growing := []models.TrendPoint{{Year: 2023, Rent: 500}, {Year: 2024, Rent: 600}}
	assert.InDelta(t, 2.0, TrendPenalty(growing), 0.001, "20%% increase scores 2 points")

	steep := []models.TrendPoint{{Year: 2021, Rent: 400}, {Year: 2024, Rent: 800}}
	assert.Equal(t, 5.0, TrendPenalty(steep), "capped at 5")
}

func TestRankScore(t *testing.T) {
	assert.Equal(t, 27.5, RankScore(30, 2.5, 0))
	assert.Equal(t, 32.0, RankScore(30, 0, 2))
	assert.Equal(t, 30.1, RankScore(30.12, 0, 0))
}

func TestResolveSharedRentSolo(t *testing.T) {
	s := &models.SuburbRecord{
		Rent1Bed: fp(520), Rent2Bed: fp(650), RentOverall: fp(600),
	}

	got := ResolveSharedRent(s, 2, 1, false)
	assert.NotNil(t, got)
	assert.Equal(t, 650.0, got.TotalRent)
	assert.Equal(t, 650.0, got.PerPersonRent)
	assert.False(t, got.Estimated)

	// Unspecified bedrooms falls back to the overall median
	got = ResolveSharedRent(s, 0, 1, false)
	assert.NotNil(t, got)
	assert.Equal(t, 600.0, got.TotalRent)

	// Missing figure resolves to nothing
	got = ResolveSharedRent(s, 4, 1, false)
	assert.Nil(t, got)
}

func TestResolveSharedRentPairSharingBedroom(t *testing.T) {
	s := &models.SuburbRecord{Rent1Bed: fp(520)}

	got := ResolveSharedRent(s, 0, 2, true)
	assert.NotNil(t, got)
	assert.Equal(t, 1, got.Bedrooms)
	assert.Equal(t, 520.0, got.TotalRent)
	assert.Equal(t, 260.0, got.PerPersonRent)
	assert.False(t, got.Estimated, "target bedroom count found, not an estimate")
}

func TestResolveSharedRentFallback(t *testing.T) {
	// Three people target 3 bedrooms; only the 2-bed figure exists
	s := &models.SuburbRecord{Rent2Bed: fp(660)}

	got := ResolveSharedRent(s, 0, 3, false)
	assert.NotNil(t, got)
	assert.Equal(t, 2, got.Bedrooms)
	assert.True(t, got.Estimated)
	assert.Equal(t, 220.0, got.PerPersonRent)
}

func TestResolveSharedRentRespectsFloor(t *testing.T) {
	// Four people floor at 3 bedrooms; a lone 2-bed figure is not usable
	s := &models.SuburbRecord{Rent2Bed: fp(660)}
	assert.Nil(t, ResolveSharedRent(s, 0, 4, false))

	// Group of 5+ is capped to a 4-bedroom target
	s = &models.SuburbRecord{Rent4Bed: fp(900)}
	got := ResolveSharedRent(s, 0, 4, false)
	assert.NotNil(t, got)
	assert.Equal(t, 4, got.Bedrooms)
	assert.Equal(t, 225.0, got.PerPersonRent)
	assert.False(t, got.Estimated)
}

func TestResolveSharedRentPerPersonRounding(t *testing.T) {
	s := &models.SuburbRecord{Rent3Bed: fp(700)}
	got := ResolveSharedRent(s, 0, 3, false)
	assert.NotNil(t, got)
	assert.Equal(t, 233.3, got.PerPersonRent)
}
