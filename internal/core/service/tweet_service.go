package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/featherpost/social-api/internal/core/domain"
	"github.com/featherpost/social-api/internal/core/ports"
)

const searchLimit = 50

// TweetService implements posting, liking, commenting, and hashtag lookups.
type TweetService struct {
	repo     ports.TweetRepository
	fanout   ports.HashtagFanout
	trending ports.TrendingStore
	cache    ports.SearchCache
	logger   zerolog.Logger
}

func NewTweetService(
	repo ports.TweetRepository,
	fanout ports.HashtagFanout,
	trending ports.TrendingStore,
	cache ports.SearchCache,
	logger zerolog.Logger,
) *TweetService {
	return &TweetService{repo: repo, fanout: fanout, trending: trending, cache: cache, logger: logger}
}

// Post creates a tweet. Hashtags are derived here, once, and stored with the
// document; each tag is also handed to the fan-out workers for trending.
func (s *TweetService) Post(ctx context.Context, owner, content string) (*domain.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyContent
	}

	tweet := &domain.Tweet{
		ID:       uuid.NewString(),
		Owner:    owner,
		Content:  content,
		Likes:    []string{},
		Unix:     time.Now().Unix(),
		Hashtags: domain.Hashtags(content),
	}

	if err := s.repo.CreateTweet(ctx, tweet); err != nil {
		s.logger.Error().Err(err).Msg("failed to create tweet")
		return nil, err
	}

	for _, tag := range tweet.Hashtags {
		s.fanout.Enqueue(tag)
	}

	s.logger.Info().Str("id", tweet.ID).Str("owner", owner).Int("hashtags", len(tweet.Hashtags)).Msg("tweet created")
	return tweet, nil
}

// Get retrieves a single tweet by its public identifier.
func (s *TweetService) Get(ctx context.Context, id string) (*domain.Tweet, error) {
	return s.repo.FindTweet(ctx, id)
}

// ToggleLike flips actorUID's membership in the tweet's liker set and
// reports which way it flipped. Atomicity lives in the repository contract.
func (s *TweetService) ToggleLike(ctx context.Context, tweetID, actorUID string) (domain.LikeAction, error) {
	action, err := s.repo.ToggleLike(ctx, tweetID, actorUID)
	if err != nil {
		return "", err
	}
	s.logger.Debug().Str("tweet", tweetID).Str("actor", actorUID).Str("action", string(action)).Msg("like toggled")
	return action, nil
}

// SearchHashtag returns recent tweets carrying the tag, newest first. The
// cache is consulted first; cache failures fall through to the repository.
func (s *TweetService) SearchHashtag(ctx context.Context, tag string) ([]domain.Tweet, error) {
	tag = strings.ToLower(strings.TrimPrefix(tag, "#"))

	if cached, err := s.cache.Get(ctx, tag); err != nil {
		s.logger.Warn().Err(err).Str("tag", tag).Msg("search cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	tweets, err := s.repo.FindByHashtag(ctx, tag, searchLimit)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Put(ctx, tag, tweets); err != nil {
		s.logger.Warn().Err(err).Str("tag", tag).Msg("search cache write failed")
	}
	return tweets, nil
}

// Trending returns the most used hashtags, highest count first.
func (s *TweetService) Trending(ctx context.Context, limit int) ([]ports.TrendingTag, error) {
	return s.trending.Top(ctx, limit)
}

// Comment creates a comment under an existing tweet. The parent must exist.
func (s *TweetService) Comment(ctx context.Context, owner, tweetID, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyContent
	}

	if _, err := s.repo.FindTweet(ctx, tweetID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:       uuid.NewString(),
		Owner:    owner,
		Content:  content,
		Likes:    []string{},
		Unix:     time.Now().Unix(),
		Hashtags: domain.Hashtags(content),
		TweetID:  tweetID,
	}

	if err := s.repo.CreateComment(ctx, comment); err != nil {
		s.logger.Error().Err(err).Str("tweet", tweetID).Msg("failed to create comment")
		return nil, err
	}

	for _, tag := range comment.Hashtags {
		s.fanout.Enqueue(tag)
	}
	return comment, nil
}

// Comments lists the comments under a tweet, newest first.
func (s *TweetService) Comments(ctx context.Context, tweetID string) ([]domain.Comment, error) {
	return s.repo.FindComments(ctx, tweetID, searchLimit)
}
