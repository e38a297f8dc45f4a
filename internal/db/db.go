package db

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// DB wraps sqlx.DB with dataset loading methods.
type DB struct {
	*sqlx.DB
}

// Open opens an existing dataset file read-only. The server never writes, so
// a missing file is an error here, not something to create: schema creation
// belongs to the seed tool.
func Open(dbPath string) (*DB, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("dataset %s not found (run 'tools seed' first): %w", dbPath, err)
	}

	conn, err := sqlx.Connect("sqlite3", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	return &DB{conn}, nil
}

// Create opens the dataset file for seeding, creating it and its directory
// when needed, and applies the embedded schema.
func Create(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create dataset directory: %w", err)
	}

	conn, err := sqlx.Connect("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}

	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	if _, err := conn.Exec(string(schema)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{conn}, nil
}
