package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"deskflow/internal/cascade"
	"deskflow/pkg/platform/sentinel"
)

const keyPrefix = "cascade:escola:"

// RedisCache keeps rendered cascades for a short TTL so dashboard refresh
// bursts do not rerun the six-table join.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis constructs a cache whose entries expire after ttl.
func NewRedis(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Key identifies the cascade for a school and form type. Form types compare
// case-insensitively, so the key is upper-cased.
func Key(schoolID int64, formType string) string {
	return fmt.Sprintf("%s%d:%s", keyPrefix, schoolID, strings.ToUpper(formType))
}

// Get returns the cached cascade or sentinel.ErrNotFound on a miss.
func (c *RedisCache) Get(ctx context.Context, schoolID int64, formType string) ([]cascade.Division, error) {
	raw, err := c.client.Get(ctx, Key(schoolID, formType)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cascade: %w", errors.Join(sentinel.ErrUnavailable, err))
	}

	var tree []cascade.Division
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("decode cached cascade: %w", err)
	}
	if tree == nil {
		tree = []cascade.Division{}
	}
	return tree, nil
}

// Set stores tree for the configured TTL.
func (c *RedisCache) Set(ctx context.Context, schoolID int64, formType string, tree []cascade.Division) error {
	raw, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("encode cascade: %w", err)
	}
	if err := c.client.Set(ctx, Key(schoolID, formType), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cascade: %w", errors.Join(sentinel.ErrUnavailable, err))
	}
	return nil
}
