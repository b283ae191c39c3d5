package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"acronymer/internal/domain"
	"acronymer/internal/repository"
)

const keyPrefix = "acronym:"

var _ repository.AcronymCache = (*RedisCache)(nil)

// RedisCache implements repository.AcronymCache on Redis strings holding JSON
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisCache creates a cache whose entries expire after ttl
func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Connect opens a Redis client and checks it answers PING
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func acronymKey(id string) string {
	return keyPrefix + id
}

// GetAcronym returns the cached acronym, or nil on a miss
func (c *RedisCache) GetAcronym(ctx context.Context, id string) (*domain.Acronym, error) {
	data, err := c.client.Get(ctx, acronymKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached acronym: %w", err)
	}

	var a domain.Acronym
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode cached acronym: %w", err)
	}
	return &a, nil
}

// SetAcronym stores a under its id
func (c *RedisCache) SetAcronym(ctx context.Context, a *domain.Acronym) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode acronym: %w", err)
	}
	if err := c.client.Set(ctx, acronymKey(a.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cached acronym: %w", err)
	}
	return nil
}

// DeleteAcronym drops the cached entry for id
func (c *RedisCache) DeleteAcronym(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, acronymKey(id)).Err(); err != nil {
		return fmt.Errorf("delete cached acronym: %w", err)
	}
	return nil
}
