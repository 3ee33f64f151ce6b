package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

const createRecordsTable = `
	CREATE TABLE IF NOT EXISTS records (
		name       TEXT PRIMARY KEY,
		document   JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

type postgresStore struct {
	db *sql.DB
}

// NewPostgresStore keeps each document as one row of the records table.
func NewPostgresStore(db *sql.DB) RecordStore {
	return &postgresStore{db: db}
}

// EnsureSchema creates the records table and an empty row for every missing document.
func EnsureSchema(ctx context.Context, db *sql.DB, names ...string) error {
	if _, err := db.ExecContext(ctx, createRecordsTable); err != nil {
		return fmt.Errorf("create records table: %w", err)
	}
	for _, name := range names {
		body, err := encodeDocument(name, nil)
		if err != nil {
			return err
		}
		query := `INSERT INTO records (name, document) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`
		if _, err := db.ExecContext(ctx, query, name, body); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
	}
	return nil
}

func (s *postgresStore) Read(ctx context.Context, name string) ([]json.RawMessage, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx, `SELECT document FROM records WHERE name = $1`, name).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: document %s not found", ErrIO, name)
		}
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return decodeDocument(name, body)
}

func (s *postgresStore) Write(ctx context.Context, name string, records []json.RawMessage) error {
	body, err := encodeDocument(name, records)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO records (name, document, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW()
	`
	if _, err := s.db.ExecContext(ctx, query, name, body); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// Update locks the document row for the length of the transaction.
func (s *postgresStore) Update(ctx context.Context, name string, fn func([]json.RawMessage) ([]json.RawMessage, error)) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer tx.Rollback()

	var body []byte
	err = tx.QueryRowContext(ctx, `SELECT document FROM records WHERE name = $1 FOR UPDATE`, name).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: document %s not found", ErrIO, name)
		}
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	records, err := decodeDocument(name, body)
	if err != nil {
		return err
	}
	records, err = fn(records)
	if err != nil {
		return err
	}
	body, err = encodeDocument(name, records)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE records SET document = $2, updated_at = NOW() WHERE name = $1`, name, body); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
