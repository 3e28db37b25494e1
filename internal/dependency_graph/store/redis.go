package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
)

const (
	docKeyPrefix = "knit:doc:"    // knit:doc:{id} -> StoredDocument JSON
	currentKey   = "knit:current" // id of the current document
)

// RedisStore keeps documents in Redis so several API replicas see the same
// upload. A zero ttl keeps keys forever.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Name() string { return "redis" }

func (r *RedisStore) docKey(id string) string { return docKeyPrefix + id }

func (r *RedisStore) Save(ctx context.Context, doc *StoredDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.docKey(doc.ID), data, r.ttl)
	pipe.Set(ctx, currentKey, doc.ID, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

func (r *RedisStore) Current(ctx context.Context) (*StoredDocument, error) {
	id, err := r.client.Get(ctx, currentKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get current document id: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *RedisStore) Get(ctx context.Context, id string) (*StoredDocument, error) {
	data, err := r.client.Get(ctx, r.docKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	var doc StoredDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return &doc, nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
