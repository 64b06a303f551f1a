// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pages persists the site page inventory that internal link
// suggestions draw from.
package pages

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/content-engine/pkg/types"
)

// Store manages the page inventory SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the inventory database at dbPath, creating
// the schema if it does not exist.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS pages (
		slug TEXT PRIMARY KEY,
		title TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Upsert inserts or replaces one page by slug.
func (s *Store) Upsert(ctx context.Context, page types.Page) error {
	if page.Slug == "" {
		return fmt.Errorf("page slug is empty")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pages (slug, title) VALUES (?, ?)
		 ON CONFLICT(slug) DO UPDATE SET title = excluded.title`,
		page.Slug, page.Title)
	if err != nil {
		return fmt.Errorf("upserting page %s: %w", page.Slug, err)
	}
	return nil
}

// List returns the full inventory in slug order.
func (s *Store) List(ctx context.Context) ([]types.Page, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug, title FROM pages ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("querying pages: %w", err)
	}
	defer rows.Close()

	var pages []types.Page
	for rows.Next() {
		var p types.Page
		if err := rows.Scan(&p.Slug, &p.Title); err != nil {
			return nil, fmt.Errorf("scanning page row: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// Import reads a YAML list of pages from path and upserts each one,
// returning the count ingested. Individual invalid entries are skipped
// with a warning.
func (s *Store) Import(ctx context.Context, path string, w io.Writer) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading pages file %s: %w", path, err)
	}

	var pages []types.Page
	if err := yaml.Unmarshal(data, &pages); err != nil {
		return 0, fmt.Errorf("parsing pages file %s: %w", path, err)
	}

	count := 0
	for _, p := range pages {
		if err := s.Upsert(ctx, p); err != nil {
			fmt.Fprintf(w, "warning: %v\n", err)
			continue
		}
		count++
	}
	return count, nil
}
