package db

import (
	"encoding/json"
	"fmt"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/models"
)

// LoadSuburbs reads every suburb record with its dwelling mix and rent trend.
// Called once at boot; the result is treated as immutable afterwards.
func (db *DB) LoadSuburbs() ([]models.SuburbRecord, error) {
	var suburbs []models.SuburbRecord
	err := db.Select(&suburbs, `
		SELECT suburb_key, postcode, name, latitude, longitude,
			rent_1bed, rent_2bed, rent_3bed, rent_4bed, rent_5plus,
			rent_overall, rent_average, total_bonds, median_income
		FROM suburbs ORDER BY suburb_key
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load suburbs: %w", err)
	}

	type mixRow struct {
		SuburbKey string  `db:"suburb_key"`
		Category  string  `db:"category"`
		Pct       float64 `db:"pct"`
	}
	var mixes []mixRow
	if err := db.Select(&mixes, `SELECT suburb_key, category, pct FROM dwelling_mix`); err != nil {
		return nil, fmt.Errorf("failed to load dwelling mix: %w", err)
	}

	type trendRow struct {
		SuburbKey string  `db:"suburb_key"`
		Year      int     `db:"year"`
		Rent      float64 `db:"rent"`
	}
	var trends []trendRow
	if err := db.Select(&trends, `SELECT suburb_key, year, rent FROM rent_trend ORDER BY suburb_key, year`); err != nil {
		return nil, fmt.Errorf("failed to load rent trend: %w", err)
	}

	byKey := make(map[string]*models.SuburbRecord, len(suburbs))
	for i := range suburbs {
		byKey[suburbs[i].SuburbKey] = &suburbs[i]
	}
	for _, m := range mixes {
		if s, ok := byKey[m.SuburbKey]; ok {
			if s.DwellingMix == nil {
				s.DwellingMix = make(map[string]float64)
			}
			s.DwellingMix[m.Category] = m.Pct
		}
	}
	for _, tr := range trends {
		if s, ok := byKey[tr.SuburbKey]; ok {
			s.RentTrend = append(s.RentTrend, models.TrendPoint{Year: tr.Year, Rent: tr.Rent})
		}
	}

	return suburbs, nil
}

// LoadStations reads the static station table.
func (db *DB) LoadStations() ([]models.TrainStation, error) {
	type stationRow struct {
		Name      string  `db:"name"`
		Latitude  float64 `db:"latitude"`
		Longitude float64 `db:"longitude"`
		Mode      string  `db:"mode"`
		Lines     string  `db:"lines"` // JSON array
	}

	var rows []stationRow
	err := db.Select(&rows, `SELECT name, latitude, longitude, mode, COALESCE(lines, '[]') as lines FROM stations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to load stations: %w", err)
	}

	stations := make([]models.TrainStation, 0, len(rows))
	for _, r := range rows {
		var lines []string
		if err := json.Unmarshal([]byte(r.Lines), &lines); err != nil {
			return nil, fmt.Errorf("failed to parse lines for station %s: %w", r.Name, err)
		}
		stations = append(stations, models.TrainStation{
			Name:      r.Name,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Mode:      r.Mode,
			Lines:     lines,
		})
	}
	return stations, nil
}

// LoadAmenities reads the amenity table grouped by postcode.
func (db *DB) LoadAmenities() (map[string][]models.Amenity, error) {
	type amenityRow struct {
		Postcode   string  `db:"postcode"`
		Name       string  `db:"name"`
		Category   string  `db:"category"`
		DistanceKm float64 `db:"distance_km"`
	}

	var rows []amenityRow
	err := db.Select(&rows, `SELECT postcode, name, category, distance_km FROM amenities ORDER BY postcode, category, distance_km`)
	if err != nil {
		return nil, fmt.Errorf("failed to load amenities: %w", err)
	}

	byPostcode := make(map[string][]models.Amenity)
	for _, r := range rows {
		byPostcode[r.Postcode] = append(byPostcode[r.Postcode], models.Amenity{
			Name:       r.Name,
			Category:   r.Category,
			DistanceKm: r.DistanceKm,
		})
	}
	return byPostcode, nil
}
