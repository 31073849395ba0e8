package ports

import (
	"context"

	"github.com/featherpost/social-api/internal/core/domain"
)

// AccountRepository defines the persistence boundary for accounts. Username
// and email uniqueness is enforced at the storage layer; Create surfaces
// violations as domain.ErrUsernameTaken / domain.ErrEmailTaken.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByUID(ctx context.Context, uid string) (*domain.Account, error)
}
