package data

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

var (
	dbPool  *pgxpool.Pool
	poolErr error
	pgOnce  sync.Once
)

// NewPool returns the process wide pool, connecting on first use
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pgOnce.Do(func() {
		pgPool, err := pgxpool.New(ctx, connString)
		if err != nil {
			log.Error(fmt.Errorf("Unable to create connection pool: %w", err))
			poolErr = err
			return
		}
		if err := pgPool.Ping(ctx); err != nil {
			pgPool.Close()
			log.Error(fmt.Errorf("Unable to reach database: %w", err))
			poolErr = err
			return
		}
		dbPool = pgPool
	})
	return dbPool, poolErr
}
