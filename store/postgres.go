// Package store persists assembled gamebook documents to Postgres. The
// document is stored whole as JSONB; downstream analytics query into it
// rather than through a normalized schema.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/fieldline/scoutbook/gamebook"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS gamebooks (
    id         BIGSERIAL PRIMARY KEY,
    league     TEXT NOT NULL,
    game_date  TEXT NOT NULL DEFAULT '',
    document   JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Store is a Postgres-backed document sink.
type Store struct {
	db *sql.DB
}

// Open connects to Postgres and verifies the connection.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error { return s.db.Close() }

// EnsureSchema creates the gamebooks table when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("create gamebooks table: %w", err)
	}
	return nil
}

// SaveDocument inserts one assembled document and returns its row id. The
// league and date are lifted from the document's meta section for cheap
// listing queries.
func (s *Store) SaveDocument(ctx context.Context, doc *gamebook.Document) (int64, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("marshal document: %w", err)
	}

	var id int64
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO gamebooks (league, game_date, document) VALUES ($1, $2, $3) RETURNING id`,
		doc.Meta.String("League"), doc.Meta.String("Date"), payload,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert document: %w", err)
	}
	return id, nil
}
