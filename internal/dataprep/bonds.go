package dataprep

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/jszwec/csvutil"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/models"
)

// BondRecord is one row of the rental bond lodgement extract.
type BondRecord struct {
	Postcode   string  `csv:"postcode"`
	Suburb     string  `csv:"suburb"`
	Bedrooms   int     `csv:"bedrooms"`
	WeeklyRent float64 `csv:"weekly_rent"`
	Year       int     `csv:"lodgement_year"`
}

// ParseBondCSV decodes a bond lodgement CSV extract. The header row must
// match the BondRecord tags.
func ParseBondCSV(r io.Reader) ([]BondRecord, error) {
	decoder, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}

	var records []BondRecord
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode bond CSV: %w", err)
	}
	return records, nil
}

// minSampleSize is the smallest bedroom-count sample that yields a published
// median; below it the figure stays null, meaning "unknown".
const minSampleSize = 5

// SuburbKey builds the canonical suburb key: lowercased hyphenated name plus
// postcode.
func SuburbKey(suburb, postcode string) string {
	name := strings.ToLower(strings.TrimSpace(suburb))
	name = strings.ReplaceAll(name, " ", "-")
	return name + "-" + postcode
}

// Aggregate folds raw bond rows into per-suburb statistics: median rent per
// bedroom count, overall median and average, lodgement volume, and the
// year-by-year trend. Coordinates are left zero for the geocoding pass.
func Aggregate(records []BondRecord) []models.SuburbRecord {
	type bucket struct {
		postcode string
		suburb   string
		byBeds   map[int][]float64
		all      []float64
		byYear   map[int][]float64
	}

	buckets := make(map[string]*bucket)
	for _, rec := range records {
		if rec.WeeklyRent <= 0 || len(rec.Postcode) != 4 {
			continue
		}
		key := SuburbKey(rec.Suburb, rec.Postcode)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				postcode: rec.Postcode,
				suburb:   strings.TrimSpace(rec.Suburb),
				byBeds:   make(map[int][]float64),
				byYear:   make(map[int][]float64),
			}
			buckets[key] = b
		}

		beds := rec.Bedrooms
		if beds >= 5 {
			beds = 5
		}
		if beds >= 1 {
			b.byBeds[beds] = append(b.byBeds[beds], rec.WeeklyRent)
		}
		b.all = append(b.all, rec.WeeklyRent)
		if rec.Year > 0 {
			b.byYear[rec.Year] = append(b.byYear[rec.Year], rec.WeeklyRent)
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var suburbs []models.SuburbRecord
	for _, key := range keys {
		b := buckets[key]
		s := models.SuburbRecord{
			SuburbKey:  key,
			Postcode:   b.postcode,
			Name:       b.suburb,
			TotalBonds: int64(len(b.all)),
		}

		s.Rent1Bed = medianIfEnough(b.byBeds[1])
		s.Rent2Bed = medianIfEnough(b.byBeds[2])
		s.Rent3Bed = medianIfEnough(b.byBeds[3])
		s.Rent4Bed = medianIfEnough(b.byBeds[4])
		s.Rent5Plus = medianIfEnough(b.byBeds[5])
		s.RentOverall = medianIfEnough(b.all)

		if len(b.all) > 0 {
			var total float64
			for _, r := range b.all {
				total += r
			}
			avg := math.Round(total / float64(len(b.all)))
			s.RentAverage = &avg
		}

		years := make([]int, 0, len(b.byYear))
		for y := range b.byYear {
			years = append(years, y)
		}
		sort.Ints(years)
		for _, y := range years {
			if m := medianIfEnough(b.byYear[y]); m != nil {
				s.RentTrend = append(s.RentTrend, models.TrendPoint{Year: y, Rent: *m})
			}
		}

		suburbs = append(suburbs, s)
	}
	return suburbs
}

func medianIfEnough(values []float64) *float64 {
	if len(values) < minSampleSize {
		return nil
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var m float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		m = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		m = sorted[mid]
	}
	m = math.Round(m)
	return &m
}
