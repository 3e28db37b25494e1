package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/store"
)

type StoreOptions struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DocumentTTL   time.Duration
	PingTO        time.Duration
}

// OpenStore returns a Redis-backed document store when RedisAddr is set and
// an in-memory one otherwise. The returned close func is never nil.
func OpenStore(ctx context.Context, opt StoreOptions) (store.DocumentStore, func() error, error) {
	if opt.RedisAddr == "" {
		return store.NewMemoryStore(), func() error { return nil }, nil
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opt.RedisAddr,
		Password: opt.RedisPassword,
		DB:       opt.RedisDB,
	})

	pctx, cancel := context.WithTimeout(ctx, opt.PingTO)
	defer cancel()

	if err := client.Ping(pctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	return store.NewRedisStore(client, opt.DocumentTTL), client.Close, nil
}
