package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/mentorsearch"
)

// PageCache caches normalized upstream pages in Redis, keyed by the
// canonical query encoding. A cache miss returns (nil, nil).
type PageCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewPageCache returns a PageCache with the given entry TTL. A TTL of zero
// disables caching entirely.
func NewPageCache(rdb *redis.Client, ttl time.Duration) *PageCache {
	return &PageCache{rdb: rdb, ttl: ttl}
}

func pageKey(encodedQuery string) string {
	return "mentors:page:" + encodedQuery
}

// Get returns the cached page body for the encoded query, or nil on a miss.
func (c *PageCache) Get(ctx context.Context, encodedQuery string) ([]byte, error) {
	if c.ttl == 0 {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, pageKey(encodedQuery)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("page cache get: %w", err)
	}
	return data, nil
}

// Set stores a page body under the encoded query for the configured TTL.
func (c *PageCache) Set(ctx context.Context, encodedQuery string, body []byte) error {
	if c.ttl == 0 {
		return nil
	}
	if err := c.rdb.Set(ctx, pageKey(encodedQuery), body, c.ttl).Err(); err != nil {
		return fmt.Errorf("page cache set: %w", err)
	}
	return nil
}

// FilterStore persists per-user filter preferences in Redis. The bytes it
// stores come from mentorsearch.EncodeFilters; the controller itself never
// persists anything.
type FilterStore struct {
	rdb *redis.Client
}

// NewFilterStore returns a Redis-backed FilterStore.
func NewFilterStore(rdb *redis.Client) *FilterStore {
	return &FilterStore{rdb: rdb}
}

func filterKey(userID string) string {
	return "mentors:filters:" + userID
}

// Load returns the user's saved filters, or the unfiltered default when the
// user has never saved any.
func (s *FilterStore) Load(ctx context.Context, userID string) (mentorsearch.Filters, error) {
	data, err := s.rdb.Get(ctx, filterKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return mentorsearch.Filters{}, nil
	}
	if err != nil {
		return mentorsearch.Filters{}, fmt.Errorf("filter store get: %w", err)
	}
	return mentorsearch.DecodeFilters(data)
}

// Save validates and persists the user's filters.
func (s *FilterStore) Save(ctx context.Context, userID string, f mentorsearch.Filters) error {
	if err := f.Validate(); err != nil {
		return err
	}
	data, err := mentorsearch.EncodeFilters(f)
	if err != nil {
		return fmt.Errorf("encode filters: %w", err)
	}
	if err := s.rdb.Set(ctx, filterKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("filter store set: %w", err)
	}
	return nil
}

// Clear removes the user's saved filters.
func (s *FilterStore) Clear(ctx context.Context, userID string) error {
	if err := s.rdb.Del(ctx, filterKey(userID)).Err(); err != nil {
		return fmt.Errorf("filter store del: %w", err)
	}
	return nil
}
