package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.db"))
	assert.Error(t, err)
}

func TestOpenIsReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rentsmart.db")

	w, err := Create(path)
	assert.NoError(t, err)
	_, err = w.Exec(`INSERT INTO suburbs (suburb_key, postcode, name, latitude, longitude)
		VALUES ('auburn-2144', '2144', 'Auburn', -33.8495, 151.0331)`)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	r, err := Open(path)
	assert.NoError(t, err)
	defer r.Close()

	suburbs, err := r.LoadSuburbs()
	assert.NoError(t, err)
	assert.Len(t, suburbs, 1)

	// The server connection must reject writes
	_, err = r.Exec(`DELETE FROM suburbs`)
	assert.Error(t, err)
}

func TestLoadStationsCorruptLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rentsmart.db")

	w, err := Create(path)
	assert.NoError(t, err)
	defer w.Close()

	_, err = w.Exec(`INSERT INTO stations (name, latitude, longitude, mode, lines)
		VALUES ('Auburn', -33.8494, 151.0330, 'train', 'not json')`)
	assert.NoError(t, err)

	_, err = w.LoadStations()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "Auburn")
	}
}
