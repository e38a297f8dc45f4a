package afford

import (
	"math"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/models"
)

// Rent stress rating tiers. Boundaries are inclusive on the upper side:
// exactly 30.0% is still "manageable", exactly 40.0% still "stressed".
const (
	RatingComfortable = "comfortable"
	RatingManageable  = "manageable"
	RatingStressed    = "stressed"
	RatingSevere      = "severe"
)

// RentStress returns the rent-to-income percentage rounded to one decimal.
// A non-positive income is treated as 100% stress rather than dividing by
// zero.
func RentStress(weeklyIncome, weeklyRent float64) float64 {
	if weeklyIncome <= 0 {
		return 100
	}
	return math.Round(weeklyRent/weeklyIncome*1000) / 10
}

// Rating maps a stress percentage to its qualitative tier.
func Rating(stressPct float64) string {
	switch {
	case stressPct < 25:
		return RatingComfortable
	case stressPct <= 30:
		return RatingManageable
	case stressPct <= 40:
		return RatingStressed
	default:
		return RatingSevere
	}
}

// AffordabilityComponent is the 0-100 score derived from stress alone.
func AffordabilityComponent(stressPct float64) float64 {
	return math.Max(0, 100-2*stressPct)
}

// SupplyBonus rewards postcodes with deep rental supply, capped at 5 points.
func SupplyBonus(totalBonds int64) float64 {
	return math.Min(5, float64(totalBonds)/500)
}

// TrendPenalty penalises postcodes whose median rent grew more than 10%
// across the trend series, capped at 5 points.
func TrendPenalty(trend []models.TrendPoint) float64 {
	if len(trend) < 2 {
		return 0
	}
	first := trend[0].Rent
	last := trend[len(trend)-1].Rent
	if first <= 0 {
		return 0
	}
	increase := (last - first) / first
	if increase <= 0.10 {
		return 0
	}
	return math.Min(5, increase*10)
}

// RankScore is the engine's default ordering key: lower is better.
func RankScore(stressPct, supplyBonus, trendPenalty float64) float64 {
	return math.Round((stressPct-supplyBonus+trendPenalty)*10) / 10
}

// sharedFloor is the smallest bedroom count a group can fall back to when
// the preferred figure is missing from the dataset.
func sharedFloor(groupSize int, shareBedroom bool) int {
	switch {
	case groupSize == 2 && shareBedroom:
		return 1
	case groupSize <= 3:
		return 2
	default:
		return 3
	}
}

// ResolveSharedRent applies the shared-living policy to a suburb's medians.
//
// Solo renters get the figure for their requested bedroom count (or the
// overall median when unspecified) as-is. Groups target min(groupSize, 4)
// bedrooms, except a two-person group sharing one bedroom targets 1. When the
// target figure is missing the resolution walks down to the group's floor and
// flags the result as estimated. Returns nil when no usable figure exists.
func ResolveSharedRent(s *models.SuburbRecord, bedrooms, groupSize int, shareBedroom bool) *models.ResolvedRent {
	if groupSize < 1 {
		groupSize = 1
	}

	if groupSize == 1 {
		if bedrooms == 0 {
			if s.RentOverall == nil {
				return nil
			}
			return &models.ResolvedRent{
				TotalRent:     *s.RentOverall,
				PerPersonRent: *s.RentOverall,
			}
		}
		rent := s.RentForBedrooms(bedrooms)
		if rent == nil {
			return nil
		}
		return &models.ResolvedRent{
			TotalRent:     *rent,
			PerPersonRent: *rent,
			Bedrooms:      bedrooms,
		}
	}

	target := groupSize
	if target > 4 {
		target = 4
	}
	if groupSize == 2 && shareBedroom {
		target = 1
	}

	floor := sharedFloor(groupSize, shareBedroom)
	for beds := target; beds >= floor; beds-- {
		rent := s.RentForBedrooms(beds)
		if rent == nil {
			continue
		}
		return &models.ResolvedRent{
			TotalRent:     *rent,
			PerPersonRent: math.Round(*rent/float64(groupSize)*10) / 10,
			Bedrooms:      beds,
			Estimated:     beds != target,
		}
	}
	return nil
}
