package ports

import (
	"context"

	"github.com/featherpost/social-api/internal/core/domain"
)

// RegisterInput carries all fields needed to create an account.
type RegisterInput struct {
	Username    string
	DisplayName string
	Password    string
	Email       string
	Bio         string
	Age         int
}

// AccountService defines the account use-cases.
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Account, error)
	// Login verifies the credentials and returns a signed bearer token. It
	// fails with domain.ErrInvalidCredentials for both an unknown email and
	// a wrong password, so callers cannot probe for registered addresses.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	Profile(ctx context.Context, uid string) (*domain.Profile, error)
}
