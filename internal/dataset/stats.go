package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/geo"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/models"
)

// SuburbTrend pairs a suburb with its rent growth over the trend series.
type SuburbTrend struct {
	SuburbKey string  `json:"suburb_key"`
	Name      string  `json:"name"`
	Postcode  string  `json:"postcode"`
	GrowthPct float64 `json:"growth_pct"`
}

// CityStats summarises the dataset citywide.
type CityStats struct {
	SuburbCount    int                   `json:"suburb_count"`
	MedianRent     float64               `json:"median_rent"`
	Cheapest       []models.SuburbRecord `json:"cheapest"`
	MostExpensive  []models.SuburbRecord `json:"most_expensive"`
	FastestGrowing []SuburbTrend         `json:"fastest_growing"`
	Declining      []SuburbTrend         `json:"declining"`
}

const statsListSize = 5

// Stats computes the citywide summary over suburbs with a known overall
// median.
func (d *Data) Stats() CityStats {
	var priced []models.SuburbRecord
	for _, s := range d.Suburbs {
		if s.RentOverall != nil {
			priced = append(priced, s)
		}
	}

	stats := CityStats{SuburbCount: len(d.Suburbs)}
	if len(priced) == 0 {
		return stats
	}

	sort.Slice(priced, func(i, j int) bool {
		return *priced[i].RentOverall < *priced[j].RentOverall
	})
	stats.MedianRent = *priced[len(priced)/2].RentOverall
	stats.Cheapest = topN(priced, statsListSize)

	reversed := make([]models.SuburbRecord, len(priced))
	for i, s := range priced {
		reversed[len(priced)-1-i] = s
	}
	stats.MostExpensive = topN(reversed, statsListSize)

	var trends []SuburbTrend
	for _, s := range d.Suburbs {
		if len(s.RentTrend) < 2 || s.RentTrend[0].Rent <= 0 {
			continue
		}
		first := s.RentTrend[0].Rent
		last := s.RentTrend[len(s.RentTrend)-1].Rent
		trends = append(trends, SuburbTrend{
			SuburbKey: s.SuburbKey,
			Name:      s.Name,
			Postcode:  s.Postcode,
			GrowthPct: geo.Round1((last - first) / first * 100),
		})
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].GrowthPct > trends[j].GrowthPct })
	stats.FastestGrowing = topTrend(trends, statsListSize)

	var declining []SuburbTrend
	for i := len(trends) - 1; i >= 0; i-- {
		if trends[i].GrowthPct < 0 {
			declining = append(declining, trends[i])
		}
	}
	stats.Declining = topTrend(declining, statsListSize)

	return stats
}

func topN(s []models.SuburbRecord, n int) []models.SuburbRecord {
	if len(s) > n {
		s = s[:n]
	}
	out := make([]models.SuburbRecord, len(s))
	copy(out, s)
	return out
}

func topTrend(s []SuburbTrend, n int) []SuburbTrend {
	if len(s) > n {
		s = s[:n]
	}
	return s
}

// Digest renders the dataset as plain text for the chat system prompt.
func (d *Data) Digest() string {
	stats := d.Stats()

	var b strings.Builder
	fmt.Fprintf(&b, "Sydney rental market reference data (%d suburbs tracked).\n", stats.SuburbCount)
	fmt.Fprintf(&b, "Citywide median weekly rent: $%.0f.\n\n", stats.MedianRent)

	b.WriteString("Cheapest suburbs (median weekly rent):\n")
	for _, s := range stats.Cheapest {
		fmt.Fprintf(&b, "- %s (%s): $%.0f\n", s.Name, s.Postcode, *s.RentOverall)
	}

	b.WriteString("\nMost expensive suburbs:\n")
	for _, s := range stats.MostExpensive {
		fmt.Fprintf(&b, "- %s (%s): $%.0f\n", s.Name, s.Postcode, *s.RentOverall)
	}

	if len(stats.FastestGrowing) > 0 {
		b.WriteString("\nFastest growing rents:\n")
		for _, t := range stats.FastestGrowing {
			fmt.Fprintf(&b, "- %s (%s): %+.1f%%\n", t.Name, t.Postcode, t.GrowthPct)
		}
	}
	if len(stats.Declining) > 0 {
		b.WriteString("\nDeclining rents:\n")
		for _, t := range stats.Declining {
			fmt.Fprintf(&b, "- %s (%s): %+.1f%%\n", t.Name, t.Postcode, t.GrowthPct)
		}
	}

	b.WriteString("\nSuburb profiles:\n")
	for _, s := range d.Suburbs {
		fmt.Fprintf(&b, "- %s (%s)", s.Name, s.Postcode)
		if s.RentOverall != nil {
			fmt.Fprintf(&b, ": median rent $%.0f/wk", *s.RentOverall)
		}
		if s.Rent2Bed != nil {
			fmt.Fprintf(&b, ", 2-bed $%.0f", *s.Rent2Bed)
		}
		if s.MedianIncome != nil {
			fmt.Fprintf(&b, ", median household income $%.0f/wk", *s.MedianIncome)
		}
		fmt.Fprintf(&b, ", %d bonds lodged", s.TotalBonds)
		b.WriteString("\n")
	}

	return b.String()
}
