package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the part of pgxpool.Pool / pgx.Tx the postgres store needs
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

const getSlice = `
SELECT value FROM persisted_slices
WHERE key = $1
`

const upsertSlice = `
INSERT INTO persisted_slices (key, value, updated_at)
VALUES ($1, $2::jsonb, now())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value,
    updated_at = EXCLUDED.updated_at
`

const deleteSlice = `
DELETE FROM persisted_slices
WHERE key = $1
`

// PostgresStore keeps every key as a row of persisted_slices (see
// data/migrations). Values must be valid JSON because the column is jsonb.
type PostgresStore struct {
	db DBTX
}

func NewPostgresStore(db DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(ctx, getSlice, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select slice %s: %w", key, err)
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.Exec(ctx, upsertSlice, key, string(value)); err != nil {
		return fmt.Errorf("upsert slice %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, deleteSlice, key); err != nil {
		return fmt.Errorf("delete slice %s: %w", key, err)
	}
	return nil
}
