// Package store caches fetched player-data snapshots in a local SQLite
// database, so the tool can run offline or survive a flaky server FTP.
// Only the raw input blob is cached; search results are never persisted.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNoSnapshot is returned when no cached snapshot exists for a player.
var ErrNoSnapshot = errors.New("store: no cached snapshot")

// Store manages the SQLite connection and schema.
type Store struct {
	db *sql.DB
}

// NewStore initializes the SQLite database connection.
// It enables WAL mode for concurrency and durability.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	s := &Store{db: db}

	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("schema migration failed: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the necessary tables if they don't exist.
func (s *Store) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS snapshots (
		username TEXT PRIMARY KEY,
		blob BLOB NOT NULL,
		fetched_at DATETIME NOT NULL
	);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create snapshots table: %w", err)
	}

	return nil
}

// PutSnapshot stores (or replaces) the raw player-data blob for username.
func (s *Store) PutSnapshot(username string, blob []byte) error {
	query := `
	INSERT INTO snapshots (username, blob, fetched_at) VALUES (?, ?, ?)
	ON CONFLICT(username) DO UPDATE SET blob = excluded.blob, fetched_at = excluded.fetched_at;
	`
	if _, err := s.db.Exec(query, username, blob, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to store snapshot for %s: %w", username, err)
	}
	return nil
}

// Snapshot returns the cached blob for username and when it was fetched.
func (s *Store) Snapshot(username string) ([]byte, time.Time, error) {
	var blob []byte
	var fetchedAt time.Time
	row := s.db.QueryRow(`SELECT blob, fetched_at FROM snapshots WHERE username = ?;`, username)
	if err := row.Scan(&blob, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, time.Time{}, ErrNoSnapshot
		}
		return nil, time.Time{}, fmt.Errorf("failed to load snapshot for %s: %w", username, err)
	}
	return blob, fetchedAt, nil
}
