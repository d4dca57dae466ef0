package prefs

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store is a durable key-value preference store backed by SQLite. Values
// are stored as strings; the only consumer today is the haptic preference,
// stored as "true"/"false" under a fixed key.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the preference database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open preference store: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS prefs (
		name  TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init preference store: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the stored value for name, or def if unset.
func (s *Store) Get(name, def string) string {
	var v string
	err := s.db.QueryRow(`SELECT value FROM prefs WHERE name = ?`, name).Scan(&v)
	if err != nil {
		return def
	}
	return v
}

// Set stores value under name, replacing any previous value.
func (s *Store) Set(name, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO prefs (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		name, value)
	return err
}

// Bool reads a boolean preference stored as "true"/"false".
func (s *Store) Bool(name string, def bool) bool {
	switch s.Get(name, "") {
	case "true":
		return true
	case "false":
		return false
	}
	return def
}

// SetBool stores a boolean preference as "true"/"false".
func (s *Store) SetBool(name string, v bool) error {
	if v {
		return s.Set(name, "true")
	}
	return s.Set(name, "false")
}

func (s *Store) Close() error {
	return s.db.Close()
}
