package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/featherpost/social-api/internal/core/domain"
)

const searchCacheTTL = time.Minute

// SearchCache holds recent hashtag search results for a short window so
// repeated searches of a hot tag skip the document store.
// Key format: hashtag:search:<tag>
type SearchCache struct {
	client *redis.Client
}

func NewSearchCache(client *redis.Client) *SearchCache {
	return &SearchCache{client: client}
}

// Get returns the cached result for tag, or (nil, nil) on a miss.
func (c *SearchCache) Get(ctx context.Context, tag string) ([]domain.Tweet, error) {
	raw, err := c.client.Get(ctx, c.key(tag)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("search cache get: %w", err)
	}

	var tweets []domain.Tweet
	if err := json.Unmarshal(raw, &tweets); err != nil {
		return nil, fmt.Errorf("search cache decode: %w", err)
	}
	return tweets, nil
}

func (c *SearchCache) Put(ctx context.Context, tag string, tweets []domain.Tweet) error {
	raw, err := json.Marshal(tweets)
	if err != nil {
		return fmt.Errorf("search cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(tag), raw, searchCacheTTL).Err(); err != nil {
		return fmt.Errorf("search cache set: %w", err)
	}
	return nil
}

func (c *SearchCache) key(tag string) string {
	return "hashtag:search:" + tag
}
