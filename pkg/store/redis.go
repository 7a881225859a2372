package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"foliopress/pkg/core/document"
	"foliopress/pkg/observability"
)

// RedisStore persists catalogs as JSON values in Redis. Useful for
// short-lived shared editing sessions where durability beyond the TTL
// does not matter.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

const redisKeyPrefix = "catalog:"

// NewRedisStore connects to Redis at the given address. A zero ttl means
// catalogs never expire.
func NewRedisStore(ctx context.Context, addr, password string, db int, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*document.Catalog, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	observability.Store().OnGet("redis", id, err)
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get catalog %s: %w", id, err)
	}

	var c document.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", id, err)
	}
	return &c, nil
}

func (s *RedisStore) Put(ctx context.Context, c *document.Catalog) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode catalog %s: %w", c.ID, err)
	}
	err = s.client.Set(ctx, redisKeyPrefix+c.ID, data, s.ttl).Err()
	observability.Store().OnPut("redis", c.ID, err)
	if err != nil {
		return fmt.Errorf("save catalog %s: %w", c.ID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete catalog %s: %w", id, err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]Summary, error) {
	var out []Summary
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			// Key may have expired between SCAN and GET.
			continue
		}
		var c document.Catalog
		if err := json.Unmarshal(data, &c); err != nil {
			continue
		}
		out = append(out, summarize(&c))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan catalogs: %w", err)
	}
	return out, nil
}

func (s *RedisStore) Close(ctx context.Context) error {
	return s.client.Close()
}
