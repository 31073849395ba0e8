package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/featherpost/social-api/internal/core/ports"
)

const trendingKey = "hashtags:trending"

// TrendingStore keeps hashtag usage counts in a Redis sorted set. Bump is
// issued by the fan-out workers on every hashtag occurrence; Top reads the
// current ranking.
type TrendingStore struct {
	client *redis.Client
}

func NewTrendingStore(client *redis.Client) *TrendingStore {
	return &TrendingStore{client: client}
}

func (s *TrendingStore) Bump(ctx context.Context, tag string) error {
	if err := s.client.ZIncrBy(ctx, trendingKey, 1, tag).Err(); err != nil {
		return fmt.Errorf("trending bump: %w", err)
	}
	return nil
}

func (s *TrendingStore) Top(ctx context.Context, n int) ([]ports.TrendingTag, error) {
	if n <= 0 {
		return nil, nil
	}

	entries, err := s.client.ZRevRangeWithScores(ctx, trendingKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("trending top: %w", err)
	}

	tags := make([]ports.TrendingTag, 0, len(entries))
	for _, e := range entries {
		tag, ok := e.Member.(string)
		if !ok {
			continue
		}
		tags = append(tags, ports.TrendingTag{Tag: tag, Count: int64(e.Score)})
	}
	return tags, nil
}
