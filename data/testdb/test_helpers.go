// Package testdb prepares the postgres database named by TEST_DB_CONN for
// tests that exercise the postgres store.
package testdb

import (
	"context"
	"testing"

	"github.com/Pjt727/classboard/config"
	"github.com/Pjt727/classboard/data"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SetupTestDb skips t unless TEST_DB_CONN is set. Otherwise it applies the
// down and then up migrations so every test starts from empty tables.
func SetupTestDb(t *testing.T) string {
	t.Helper()
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.TestDBConn == "" {
		t.Skip("TEST_DB_CONN not set")
	}
	if err := data.ResetDb(cfg.TestDBConn); err != nil {
		t.Fatalf("reset test db: %v", err)
	}
	return cfg.TestDBConn
}

// Pool returns a pool on a freshly reset test database, closed with the test
func Pool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	conn := SetupTestDb(t)
	pool, err := pgxpool.New(context.Background(), conn)
	if err != nil {
		t.Fatalf("could not get database: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}
