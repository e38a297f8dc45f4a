package dataset

import (
	"fmt"
	"strings"

	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/db"
	"github.com/Harsh-D14/Sydney-rentsmart-ai/internal/models"
)

// Data is the immutable in-memory reference dataset. Loaded once at process
// start and never mutated, so concurrent readers need no locking.
type Data struct {
	Suburbs   []models.SuburbRecord
	Stations  []models.TrainStation
	Amenities map[string][]models.Amenity

	byKey      map[string]*models.SuburbRecord
	byPostcode map[string][]*models.SuburbRecord
}

// Load hydrates the dataset from the SQLite file produced by the seed tool.
func Load(database *db.DB) (*Data, error) {
	suburbs, err := database.LoadSuburbs()
	if err != nil {
		return nil, err
	}
	stations, err := database.LoadStations()
	if err != nil {
		return nil, err
	}
	amenities, err := database.LoadAmenities()
	if err != nil {
		return nil, err
	}

	d := New(suburbs, stations, amenities)
	if len(d.Suburbs) == 0 {
		return nil, fmt.Errorf("dataset is empty - run 'tools seed' first")
	}
	return d, nil
}

// New builds the lookup indexes over already-loaded tables.
func New(suburbs []models.SuburbRecord, stations []models.TrainStation, amenities map[string][]models.Amenity) *Data {
	d := &Data{
		Suburbs:    suburbs,
		Stations:   stations,
		Amenities:  amenities,
		byKey:      make(map[string]*models.SuburbRecord, len(suburbs)),
		byPostcode: make(map[string][]*models.SuburbRecord),
	}
	for i := range suburbs {
		s := &suburbs[i]
		d.byKey[s.SuburbKey] = s
		d.byPostcode[s.Postcode] = append(d.byPostcode[s.Postcode], s)
	}
	return d
}

// Get returns a suburb by its key, falling back to the first record for a
// bare postcode. Returns nil when unresolvable.
func (d *Data) Get(key string) *models.SuburbRecord {
	if s, ok := d.byKey[key]; ok {
		return s
	}
	if recs := d.byPostcode[key]; len(recs) > 0 {
		return recs[0]
	}
	return nil
}

// ByPostcode returns every suburb record sharing a postcode.
func (d *Data) ByPostcode(postcode string) []*models.SuburbRecord {
	return d.byPostcode[postcode]
}

// Search returns all suburbs matching a name substring or postcode prefix.
// An empty query returns the full dataset.
func (d *Data) Search(query string) []models.SuburbRecord {
	query = strings.TrimSpace(query)
	if query == "" {
		return d.Suburbs
	}

	q := strings.ToLower(query)
	var matches []models.SuburbRecord
	for _, s := range d.Suburbs {
		if strings.Contains(strings.ToLower(s.Name), q) || strings.HasPrefix(s.Postcode, query) {
			matches = append(matches, s)
		}
	}
	return matches
}

// Resolve maps free text to a single suburb: exact name, then name prefix,
// then substring, then postcode prefix, first hit in each tier wins. Used for
// workplace resolution.
func (d *Data) Resolve(query string) *models.SuburbRecord {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)

	for i := range d.Suburbs {
		if strings.ToLower(d.Suburbs[i].Name) == q {
			return &d.Suburbs[i]
		}
	}
	for i := range d.Suburbs {
		if strings.HasPrefix(strings.ToLower(d.Suburbs[i].Name), q) {
			return &d.Suburbs[i]
		}
	}
	for i := range d.Suburbs {
		if strings.Contains(strings.ToLower(d.Suburbs[i].Name), q) {
			return &d.Suburbs[i]
		}
	}
	for i := range d.Suburbs {
		if strings.HasPrefix(d.Suburbs[i].Postcode, query) {
			return &d.Suburbs[i]
		}
	}
	return nil
}
