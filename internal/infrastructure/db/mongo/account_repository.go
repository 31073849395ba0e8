package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/featherpost/social-api/internal/core/domain"
)

const accountCollection = "accounts"

// AccountRepository persists accounts in MongoDB. Username and email
// uniqueness is enforced by unique indexes, not by check-then-insert, so
// concurrent registrations of the same identity cannot race past each other.
type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(accountCollection)}
}

type mongoAccount struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Username       string             `bson:"username"`
	DisplayName    string             `bson:"display_name"`
	PasswordDigest string             `bson:"password_digest"`
	Email          string             `bson:"email"`
	Bio            string             `bson:"bio"`
	Age            int                `bson:"age"`
	UID            string             `bson:"uid"`
	CreatedAt      int64              `bson:"created_at"`
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAccount{
		Username:       account.Username,
		DisplayName:    account.DisplayName,
		PasswordDigest: account.PasswordDigest,
		Email:          account.Email,
		Bio:            account.Bio,
		Age:            account.Age,
		UID:            account.UID,
		CreatedAt:      time.Now().Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateKeyError(err)
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	// fetch back to get the storage-assigned ID
	return r.FindByUsername(ctx, account.Username)
}

// duplicateKeyError maps a unique-index violation to the field-specific
// conflict error, by which index tripped.
func duplicateKeyError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "email"):
		return domain.ErrEmailTaken
	default:
		return domain.ErrUsernameTaken
	}
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *AccountRepository) FindByUID(ctx context.Context, uid string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"uid": uid})
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoAccount
	if err := r.coll.FindOne(ctx, filter).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	return &domain.Account{
		ID:             ma.ID.Hex(),
		Username:       ma.Username,
		DisplayName:    ma.DisplayName,
		PasswordDigest: ma.PasswordDigest,
		Email:          ma.Email,
		Bio:            ma.Bio,
		Age:            ma.Age,
		UID:            ma.UID,
	}, nil
}

// EnsureIndexes creates the unique indexes backing the registration
// uniqueness guarantees.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
