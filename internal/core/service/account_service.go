package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/featherpost/social-api/internal/core/domain"
	"github.com/featherpost/social-api/internal/core/ports"
	"github.com/featherpost/social-api/internal/core/token"
	"github.com/featherpost/social-api/internal/pkg/hash"
)

const (
	passwordMinLen = 8
	passwordMaxLen = 100
)

// AccountService implements registration, login, and profile retrieval.
type AccountService struct {
	repo   ports.AccountRepository
	codec  *token.Codec
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, codec *token.Codec, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, codec: codec, logger: logger}
}

// Register creates an account. The password is digested before anything is
// stored; uniqueness of username and email is enforced by the repository's
// storage-level constraints, not by a check-then-insert here.
func (s *AccountService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
	if len(input.Password) < passwordMinLen || len(input.Password) > passwordMaxLen {
		return nil, domain.ErrPasswordLength
	}

	account := &domain.Account{
		Username:       input.Username,
		DisplayName:    input.DisplayName,
		PasswordDigest: hash.Digest(input.Password),
		Email:          input.Email,
		Bio:            input.Bio,
		Age:            input.Age,
		UID:            uuid.NewString(),
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("uid", created.UID).Msg("account created")
	return created, nil
}

// Login verifies the credentials and issues a bearer token. An unknown email
// and a wrong password both come back as ErrInvalidCredentials so the
// response does not reveal whether the address is registered.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if account.PasswordDigest != hash.Digest(password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	tok, err := s.codec.Issue(account.Username, account.ID, account.UID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", account.Username).Msg("login")
	return tok, account, nil
}

// Profile returns the public projection of the account addressed by uid.
func (s *AccountService) Profile(ctx context.Context, uid string) (*domain.Profile, error) {
	account, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	profile := account.Profile()
	return &profile, nil
}
