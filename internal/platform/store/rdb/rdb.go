// Package rdb provides a redis client for key-value reads
package rdb

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Config configures the redis client
type Config struct {
	URL string
}

// RDB wraps a go-redis client
type RDB struct {
	client *redis.Client
}

// Open connects using a redis:// URL
func Open(_ context.Context, cfg Config) (*RDB, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	return &RDB{client: redis.NewClient(opt)}, nil
}

// Get reads key; found is false when the key does not exist
func (r *RDB) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Ping verifies connectivity
func (r *RDB) Ping(ctx context.Context) error { return r.client.Ping(ctx).Err() }

// Close closes the client
func (r *RDB) Close() error { return r.client.Close() }
