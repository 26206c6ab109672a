package data

import (
	"context"
	"fmt"

	"github.com/Pjt727/classboard/config"
	"github.com/Pjt727/classboard/data/kv"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// OpenStore builds the durable store selected by cfg.Store. The returned
// close func releases any connection the store holds and is always non nil.
func OpenStore(ctx context.Context, cfg config.Runtime) (kv.Store, func(), error) {
	logger := log.WithFields(log.Fields{"store": cfg.Store})
	noop := func() {}

	switch cfg.Store {
	case config.StoreMemory:
		logger.Warn("Using the memory store, nothing will survive this process")
		return kv.NewMemoryStore(), noop, nil

	case config.StoreFile:
		logger.WithField("dir", cfg.StateDir).Debug("Using the file store")
		return kv.NewFileStore(cfg.StateDir), noop, nil

	case config.StorePostgres:
		pool, err := NewPool(ctx, cfg.DBConn)
		if err != nil {
			return nil, noop, fmt.Errorf("connect to postgres: %w", err)
		}
		return kv.NewPostgresStore(pool), pool.Close, nil

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("connect to redis %s: %w", cfg.RedisAddr, err)
		}
		closeClient := func() {
			if err := client.Close(); err != nil {
				logger.Warn("Could not close redis client: ", err)
			}
		}
		return kv.NewRedisStore(client, cfg.RedisPrefix), closeClient, nil
	}

	return nil, noop, fmt.Errorf("unknown store %q", cfg.Store)
}
