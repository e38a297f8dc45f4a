package dataprep

import (
	"encoding/json"
	"fmt"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/db"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/models"
)

// Seed writes a full dataset into the SQLite file, replacing whatever is
// there. The server never writes; this is the only mutation path.
func Seed(database *db.DB, suburbs []models.SuburbRecord, stations []models.TrainStation, amenities map[string][]models.Amenity) error {
	tx, err := database.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"rent_trend", "dwelling_mix", "amenities", "stations", "suburbs"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, s := range suburbs {
		_, err := tx.Exec(`
			INSERT INTO suburbs (suburb_key, postcode, name, latitude, longitude,
				rent_1bed, rent_2bed, rent_3bed, rent_4bed, rent_5plus,
				rent_overall, rent_average, total_bonds, median_income)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.SuburbKey, s.Postcode, s.Name, s.Latitude, s.Longitude,
			s.Rent1Bed, s.Rent2Bed, s.Rent3Bed, s.Rent4Bed, s.Rent5Plus,
			s.RentOverall, s.RentAverage, s.TotalBonds, s.MedianIncome)
		if err != nil {
			return fmt.Errorf("failed to insert suburb %s: %w", s.SuburbKey, err)
		}

		for category, pct := range s.DwellingMix {
			if _, err := tx.Exec(`INSERT INTO dwelling_mix (suburb_key, category, pct) VALUES (?, ?, ?)`,
				s.SuburbKey, category, pct); err != nil {
				return fmt.Errorf("failed to insert dwelling mix for %s: %w", s.SuburbKey, err)
			}
		}
		for _, tp := range s.RentTrend {
			if _, err := tx.Exec(`INSERT INTO rent_trend (suburb_key, year, rent) VALUES (?, ?, ?)`,
				s.SuburbKey, tp.Year, tp.Rent); err != nil {
				return fmt.Errorf("failed to insert rent trend for %s: %w", s.SuburbKey, err)
			}
		}
	}

	for _, st := range stations {
		lines, err := json.Marshal(st.Lines)
		if err != nil {
			return fmt.Errorf("failed to marshal lines for %s: %w", st.Name, err)
		}
		if _, err := tx.Exec(`INSERT INTO stations (name, latitude, longitude, mode, lines) VALUES (?, ?, ?, ?, ?)`,
			st.Name, st.Latitude, st.Longitude, st.Mode, string(lines)); err != nil {
			return fmt.Errorf("failed to insert station %s: %w", st.Name, err)
		}
	}

	for postcode, list := range amenities {
		for _, a := range list {
			if _, err := tx.Exec(`INSERT INTO amenities (postcode, name, category, distance_km) VALUES (?, ?, ?, ?)`,
				postcode, a.Name, a.Category, a.DistanceKm); err != nil {
				return fmt.Errorf("failed to insert amenity %s: %w", a.Name, err)
			}
		}
	}

	return tx.Commit()
}
