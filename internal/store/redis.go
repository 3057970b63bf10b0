// Copyright (c) 2025-2026 Eduree Education Co.
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores the snapshot blob under a single Redis key. The key
// never expires; the snapshot is the durable copy, not a cache.
type RedisBackend struct {
	client *redis.Client
	key    string
}

// NewRedisBackend creates a Redis snapshot backend from a redis URL
// (redis://[user:pass@]host:port/db).
func NewRedisBackend(url string) (*RedisBackend, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}
	return &RedisBackend{
		client: redis.NewClient(opts),
		key:    StorageKey,
	}, nil
}

// Ping verifies the connection.
func (b *RedisBackend) Ping(ctx context.Context) error {
	if err := b.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}
	return nil
}

// Load reads the snapshot key.
func (b *RedisBackend) Load(ctx context.Context) ([]byte, error) {
	data, err := b.client.Get(ctx, b.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot key: %w", err)
	}
	return data, nil
}

// Save writes the snapshot key with no expiry.
func (b *RedisBackend) Save(ctx context.Context, data []byte) error {
	if err := b.client.Set(ctx, b.key, data, 0).Err(); err != nil {
		return fmt.Errorf("writing snapshot key: %w", err)
	}
	return nil
}

// Close releases the client.
func (b *RedisBackend) Close() error {
	return b.client.Close()
}
