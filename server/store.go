// ABOUTME: SQLite-backed store for named configuration resources and their save revisions.
// ABOUTME: Provides list, get, put, and manifest queries; every save appends a ULID-keyed revision row.
package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
)

// ErrNotFound is returned when a resource does not exist in the store.
var ErrNotFound = errors.New("resource not found")

// ManifestEntry describes one named resource in a category manifest.
type ManifestEntry struct {
	Value   string `json:"Value"`
	Version int64  `json:"Version"`
}

// Revision is one historical save of a resource.
type Revision struct {
	RevisionID string
	Category   string
	Name       string
	Content    json.RawMessage
	Version    int64
	CreatedAt  string
}

// Store persists configuration resources in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the store database at the given path and ensures the
// schema is up to date.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS resources (
			category TEXT NOT NULL,
			name TEXT NOT NULL,
			content TEXT NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (category, name)
		);

		CREATE TABLE IF NOT EXISTS revisions (
			revision_id TEXT PRIMARY KEY,
			category TEXT NOT NULL,
			name TEXT NOT NULL,
			content TEXT NOT NULL,
			version INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_revisions_resource
			ON revisions (category, name, version);`

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ListNames returns all resource names in a category, ordered by name.
func (s *Store) ListNames(category string) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT name FROM resources WHERE category = ? ORDER BY name ASC", category)
	if err != nil {
		return nil, fmt.Errorf("query names: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Get returns the content and version of one resource.
func (s *Store) Get(category, name string) (json.RawMessage, int64, error) {
	var content string
	var version int64
	err := s.db.QueryRow(
		"SELECT content, version FROM resources WHERE category = ? AND name = ?",
		category, name).Scan(&content, &version)
	if err == sql.ErrNoRows {
		return nil, 0, ErrNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("query resource: %w", err)
	}
	return json.RawMessage(content), version, nil
}

// Put upserts a resource's content, bumping its version, and appends a
// revision row recording the save. Returns the new version.
func (s *Store) Put(category, name string, content json.RawMessage) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin put: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)

	if _, err := tx.Exec(
		`INSERT INTO resources (category, name, content, version, updated_at)
		 VALUES (?, ?, ?, 1, ?)
		 ON CONFLICT(category, name) DO UPDATE SET
			content = excluded.content,
			version = resources.version + 1,
			updated_at = excluded.updated_at`,
		category, name, string(content), now); err != nil {
		return 0, fmt.Errorf("upsert resource: %w", err)
	}

	var version int64
	if err := tx.QueryRow(
		"SELECT version FROM resources WHERE category = ? AND name = ?",
		category, name).Scan(&version); err != nil {
		return 0, fmt.Errorf("read version: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO revisions (revision_id, category, name, content, version, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ulid.Make().String(), category, name, string(content), version, now); err != nil {
		return 0, fmt.Errorf("insert revision: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit put: %w", err)
	}
	return version, nil
}

// Manifest returns every resource in a category mapped to its manifest entry.
// The Value field is the resource's category-qualified path.
func (s *Store) Manifest(category string) (map[string]ManifestEntry, error) {
	rows, err := s.db.Query(
		"SELECT name, version FROM resources WHERE category = ? ORDER BY name ASC", category)
	if err != nil {
		return nil, fmt.Errorf("query manifest: %w", err)
	}
	defer func() { _ = rows.Close() }()

	manifest := map[string]ManifestEntry{}
	for rows.Next() {
		var name string
		var version int64
		if err := rows.Scan(&name, &version); err != nil {
			return nil, fmt.Errorf("scan manifest row: %w", err)
		}
		manifest[name] = ManifestEntry{
			Value:   category + "/" + name,
			Version: version,
		}
	}
	return manifest, rows.Err()
}

// Revisions returns the save history of one resource, newest first.
func (s *Store) Revisions(category, name string) ([]Revision, error) {
	rows, err := s.db.Query(
		`SELECT revision_id, category, name, content, version, created_at
		 FROM revisions WHERE category = ? AND name = ? ORDER BY version DESC`,
		category, name)
	if err != nil {
		return nil, fmt.Errorf("query revisions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var revs []Revision
	for rows.Next() {
		var r Revision
		var content string
		if err := rows.Scan(&r.RevisionID, &r.Category, &r.Name, &content, &r.Version, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan revision row: %w", err)
		}
		r.Content = json.RawMessage(content)
		revs = append(revs, r)
	}
	return revs, rows.Err()
}
