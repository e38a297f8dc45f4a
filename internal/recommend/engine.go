package recommend

import (
	"fmt"
	"sort"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/afford"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/dataset"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/geo"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/models"
)

const (
	DefaultLimit = 15
	MaxLimit     = 50
)

// Request is a validated recommendation query.
type Request struct {
	WeeklyIncome float64
	Bedrooms     int // 0 = unspecified, otherwise 1-5
	Sharing      int // group size 1-4
	ShareBedroom bool
	Workplace    string
	Limit        int
}

// Response carries the ranked suburbs plus the resolved workplace, if any.
type Response struct {
	Suburbs   []models.RankedSuburb `json:"suburbs"`
	Workplace *WorkplaceInfo        `json:"workplace,omitempty"`
}

// WorkplaceInfo echoes how free-text workplace input was resolved.
type WorkplaceInfo struct {
	Query     string  `json:"query"`
	SuburbKey string  `json:"suburb_key"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Engine ranks suburbs by affordability over the reference dataset.
type Engine struct {
	data *dataset.Data
}

// NewEngine creates a recommendation engine over a loaded dataset.
func NewEngine(data *dataset.Data) *Engine {
	return &Engine{data: data}
}

// Validate checks parameter ranges before ranking.
func (r *Request) Validate() error {
	if r.WeeklyIncome < 0 {
		return fmt.Errorf("income must be a non-negative number")
	}
	if r.Bedrooms != 0 && (r.Bedrooms < 1 || r.Bedrooms > 5) {
		return fmt.Errorf("bedrooms must be between 1 and 5")
	}
	if r.Sharing != 0 && (r.Sharing < 1 || r.Sharing > 4) {
		return fmt.Errorf("sharing group size must be between 1 and 4")
	}
	return nil
}

// Recommend resolves a rent figure for every suburb, filters out unaffordable
// or data-poor postcodes, attaches station and commute context, and returns
// the results sorted ascending by rank score (lower is better).
func (e *Engine) Recommend(req Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sharing := req.Sharing
	if sharing == 0 {
		sharing = 1
	}
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	resp := &Response{}

	var workplace *models.SuburbRecord
	if req.Workplace != "" {
		workplace = e.data.Resolve(req.Workplace)
		if workplace != nil {
			resp.Workplace = &WorkplaceInfo{
				Query:     req.Workplace,
				SuburbKey: workplace.SuburbKey,
				Name:      workplace.Name,
				Latitude:  workplace.Latitude,
				Longitude: workplace.Longitude,
			}
		}
	}

	for i := range e.data.Suburbs {
		s := &e.data.Suburbs[i]

		rent := afford.ResolveSharedRent(s, req.Bedrooms, sharing, req.ShareBedroom)
		if rent == nil {
			continue
		}

		stress := afford.RentStress(req.WeeklyIncome, rent.PerPersonRent)
		if stress > 100 {
			// Per-person rent alone exceeds the stated income.
			continue
		}

		supply := afford.SupplyBonus(s.TotalBonds)
		penalty := afford.TrendPenalty(s.RentTrend)

		ranked := models.RankedSuburb{
			SuburbKey:          s.SuburbKey,
			Postcode:           s.Postcode,
			Name:               s.Name,
			Latitude:           s.Latitude,
			Longitude:          s.Longitude,
			WeeklyRent:         rent.PerPersonRent,
			RentBedrooms:       rent.Bedrooms,
			RentEstimated:      rent.Estimated,
			StressPct:          stress,
			Rating:             afford.Rating(stress),
			AffordabilityScore: afford.AffordabilityComponent(stress),
			RankScore:          afford.RankScore(stress, supply, penalty),
			TotalBonds:         s.TotalBonds,
			RentTrend:          s.RentTrend,
			DwellingMix:        s.DwellingMix,
		}

		ranked.NearestStation = geo.NearestStation(s.Latitude, s.Longitude, e.data.Stations)

		if workplace != nil {
			dist := geo.Haversine(s.Latitude, s.Longitude, workplace.Latitude, workplace.Longitude)
			ranked.Commute = &models.CommuteEstimate{
				Workplace:     workplace.Name,
				DistanceKm:    geo.Round1(dist),
				EstimatedMins: geo.EstimateDriveMins(dist),
			}
		}

		resp.Suburbs = append(resp.Suburbs, ranked)
	}

	sort.SliceStable(resp.Suburbs, func(i, j int) bool {
		return resp.Suburbs[i].RankScore < resp.Suburbs[j].RankScore
	})
	if len(resp.Suburbs) > limit {
		resp.Suburbs = resp.Suburbs[:limit]
	}

	return resp, nil
}
