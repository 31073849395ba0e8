package ports

import (
	"context"

	"github.com/featherpost/social-api/internal/core/domain"
)

// TrendingTag is one entry in the trending ranking.
type TrendingTag struct {
	Tag   string `json:"tag"`
	Count int64  `json:"count"`
}

// TrendingStore keeps running hashtag usage counts.
type TrendingStore interface {
	Bump(ctx context.Context, tag string) error
	Top(ctx context.Context, n int) ([]TrendingTag, error)
}

// HashtagFanout receives the hashtags of freshly created posts for
// asynchronous processing. Enqueue must not block the caller beyond
// bounded buffering.
type HashtagFanout interface {
	Enqueue(tag string)
}

// SearchCache is a short-lived cache of hashtag search results. A miss is
// (nil, nil); cache errors must never fail a search.
type SearchCache interface {
	Get(ctx context.Context, tag string) ([]domain.Tweet, error)
	Put(ctx context.Context, tag string, tweets []domain.Tweet) error
}
