package ports

import (
	"context"

	"github.com/featherpost/social-api/internal/core/domain"
)

// TweetRepository defines the persistence boundary for tweets and comments.
//
// ToggleLike must be a single conditional update applied atomically to the
// addressed document: remove uid from the liker set when present, add it
// when absent, and report which side was taken. Implementations must not
// read-then-write in two round trips — that admits a lost update between
// concurrent togglers of the same tweet.
type TweetRepository interface {
	CreateTweet(ctx context.Context, tweet *domain.Tweet) error
	FindTweet(ctx context.Context, id string) (*domain.Tweet, error)
	ToggleLike(ctx context.Context, tweetID, uid string) (domain.LikeAction, error)
	FindByHashtag(ctx context.Context, tag string, limit int) ([]domain.Tweet, error)
	CreateComment(ctx context.Context, comment *domain.Comment) error
	FindComments(ctx context.Context, tweetID string, limit int) ([]domain.Comment, error)
}
