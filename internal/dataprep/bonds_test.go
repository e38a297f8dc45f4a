package dataprep

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const bondCSV = `postcode,suburb,bedrooms,weekly_rent,lodgement_year
2144,Auburn,2,500,2025
2144,Auburn,2,510,2025
2144,Auburn,2,520,2025
2144,Auburn,2,530,2025
2144,Auburn,2,540,2025
2144,Auburn,2,600,2025
2144,Auburn,1,400,2025
2144,Auburn,1,420,2025
2026,Bondi,3,1200,2025
2026,Bondi,3,1250,2025
`

func TestParseBondCSV(t *testing.T) {
	records, err := ParseBondCSV(strings.NewReader(bondCSV))
	assert.NoError(t, err)
	assert.Len(t, records, 10)
	assert.Equal(t, "2144", records[0].Postcode)
	assert.Equal(t, "Auburn", records[0].Suburb)
	assert.Equal(t, 2, records[0].Bedrooms)
	assert.Equal(t, 500.0, records[0].WeeklyRent)
	assert.Equal(t, 2025, records[0].Year)
}

func TestParseBondCSVBadValue(t *testing.T) {
	_, err := ParseBondCSV(strings.NewReader("postcode,suburb,bedrooms,weekly_rent,lodgement_year\n2144,Auburn,two,500,2025\n"))
	assert.Error(t, err)
}

func TestSuburbKey(t *testing.T) {
	assert.Equal(t, "auburn-2144", SuburbKey("Auburn", "2144"))
	assert.Equal(t, "bondi-junction-2022", SuburbKey(" Bondi Junction ", "2022"))
}

func TestAggregate(t *testing.T) {
	records, err := ParseBondCSV(strings.NewReader(bondCSV))
	assert.NoError(t, err)

	suburbs := Aggregate(records)
	assert.Len(t, suburbs, 2)

	auburn := suburbs[0]
	assert.Equal(t, "auburn-2144", auburn.SuburbKey)
	assert.Equal(t, int64(8), auburn.TotalBonds)

	// Six two-bed samples: even count, mean of 520 and 530
	if assert.NotNil(t, auburn.Rent2Bed) {
		assert.Equal(t, 525.0, *auburn.Rent2Bed)
	}
	// Two one-bed samples are below the publishing threshold
	assert.Nil(t, auburn.Rent1Bed)

	// Overall median over all eight rows: mean of 510 and 520
	if assert.NotNil(t, auburn.RentOverall) {
		assert.Equal(t, 515.0, *auburn.RentOverall)
	}
	// Average is rounded to the nearest dollar
	if assert.NotNil(t, auburn.RentAverage) {
		assert.Equal(t, 503.0, *auburn.RentAverage)
	}

	// Year bucket has eight samples, so the trend publishes
	if assert.Len(t, auburn.RentTrend, 1) {
		assert.Equal(t, 2025, auburn.RentTrend[0].Year)
		assert.Equal(t, 515.0, auburn.RentTrend[0].Rent)
	}

	bondi := suburbs[1]
	assert.Equal(t, "bondi-2026", bondi.SuburbKey)
	assert.Equal(t, int64(2), bondi.TotalBonds)
	assert.Nil(t, bondi.Rent3Bed)
	assert.Nil(t, bondi.RentOverall)
	assert.Empty(t, bondi.RentTrend)
}

func TestAggregateSkipsBadRows(t *testing.T) {
	records := []BondRecord{
		{Postcode: "2144", Suburb: "Auburn", Bedrooms: 2, WeeklyRent: 0, Year: 2025},
		{Postcode: "21", Suburb: "Auburn", Bedrooms: 2, WeeklyRent: 500, Year: 2025},
	}
	assert.Empty(t, Aggregate(records))
}
