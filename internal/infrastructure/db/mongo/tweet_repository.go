package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/featherpost/social-api/internal/core/domain"
)

const (
	tweetCollection   = "tweets"
	commentCollection = "comments"
)

// TweetRepository persists tweets and comments in MongoDB.
type TweetRepository struct {
	tweets   *mongo.Collection
	comments *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) *TweetRepository {
	return &TweetRepository{
		tweets:   db.Collection(tweetCollection),
		comments: db.Collection(commentCollection),
	}
}

func (r *TweetRepository) CreateTweet(ctx context.Context, tweet *domain.Tweet) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.tweets.InsertOne(ctx, tweet); err != nil {
		return fmt.Errorf("insert tweet: %w", err)
	}
	return nil
}

func (r *TweetRepository) FindTweet(ctx context.Context, id string) (*domain.Tweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Tweet
	if err := r.tweets.FindOne(ctx, bson.M{"id": id}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTweetNotFound
		}
		return nil, fmt.Errorf("find tweet: %w", err)
	}
	return &t, nil
}

// ToggleLike flips uid's membership in the tweet's liker set with one
// conditional update executed server-side: $setDifference removes the uid
// when present, $concatArrays appends it when absent. The pre-image decides
// which side was taken. Single-document atomicity in MongoDB makes this
// safe under concurrent togglers; re-delivery of the same toggle cannot
// duplicate an entry.
func (r *TweetRepository) ToggleLike(ctx context.Context, tweetID, uid string) (domain.LikeAction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{{Key: "likes", Value: bson.D{{Key: "$cond", Value: bson.A{
			bson.D{{Key: "$in", Value: bson.A{uid, "$likes"}}},
			bson.D{{Key: "$setDifference", Value: bson.A{"$likes", bson.A{uid}}}},
			bson.D{{Key: "$concatArrays", Value: bson.A{"$likes", bson.A{uid}}}},
		}}}}}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var before domain.Tweet
	err := r.tweets.FindOneAndUpdate(ctx, bson.M{"id": tweetID}, update, opts).Decode(&before)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", domain.ErrTweetNotFound
		}
		return "", fmt.Errorf("toggle like: %w", err)
	}

	for _, liker := range before.Likes {
		if liker == uid {
			return domain.LikeRemoved, nil
		}
	}
	return domain.LikeAdded, nil
}

func (r *TweetRepository) FindByHashtag(ctx context.Context, tag string, limit int) ([]domain.Tweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "unix", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.tweets.Find(ctx, bson.M{"hashtags": tag}, opts)
	if err != nil {
		return nil, fmt.Errorf("find by hashtag: %w", err)
	}

	var tweets []domain.Tweet
	if err := cursor.All(ctx, &tweets); err != nil {
		return nil, fmt.Errorf("decode hashtag results: %w", err)
	}
	return tweets, nil
}

func (r *TweetRepository) CreateComment(ctx context.Context, comment *domain.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.comments.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *TweetRepository) FindComments(ctx context.Context, tweetID string, limit int) ([]domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "unix", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.comments.Find(ctx, bson.M{"tweet": tweetID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find comments: %w", err)
	}

	var comments []domain.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	return comments, nil
}

// EnsureIndexes creates the indexes on the tweet and comment collections.
func (r *TweetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	tweetIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "hashtags", Value: 1}}},
		{Keys: bson.D{{Key: "owner", Value: 1}}},
	}
	if _, err := r.tweets.Indexes().CreateMany(ctx, tweetIndexes); err != nil {
		return err
	}

	commentIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tweet", Value: 1}}},
	}
	_, err := r.comments.Indexes().CreateMany(ctx, commentIndexes)
	return err
}
