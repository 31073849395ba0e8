package ports

import (
	"context"

	"github.com/featherpost/social-api/internal/core/domain"
)

// TweetService defines the tweet, like, comment, and hashtag use-cases.
type TweetService interface {
	Post(ctx context.Context, owner, content string) (*domain.Tweet, error)
	Get(ctx context.Context, id string) (*domain.Tweet, error)
	ToggleLike(ctx context.Context, tweetID, actorUID string) (domain.LikeAction, error)
	SearchHashtag(ctx context.Context, tag string) ([]domain.Tweet, error)
	Trending(ctx context.Context, limit int) ([]TrendingTag, error)
	Comment(ctx context.Context, owner, tweetID, content string) (*domain.Comment, error)
	Comments(ctx context.Context, tweetID string) ([]domain.Comment, error)
}
