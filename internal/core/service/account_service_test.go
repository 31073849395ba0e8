package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/featherpost/social-api/internal/core/domain"
	"github.com/featherpost/social-api/internal/core/ports"
	"github.com/featherpost/social-api/internal/core/token"
	"github.com/featherpost/social-api/internal/pkg/hash"
)

type stubAccountRepo struct {
	accounts map[string]*domain.Account // keyed by username
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if _, exists := r.accounts[account.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	for _, a := range r.accounts {
		if a.Email == account.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	stored := cloneAccount(account)
	stored.ID = "id-" + account.Username
	r.accounts[stored.Username] = stored
	return cloneAccount(stored), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	if a, ok := r.accounts[username]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByUID(_ context.Context, uid string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.UID == uid {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func newAccountService(t *testing.T) (*AccountService, *stubAccountRepo, *token.Codec) {
	t.Helper()
	repo := newStubAccountRepo()
	codec, err := token.NewCodec(map[string]string{"v1": "test-secret"}, "v1")
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return NewAccountService(repo, codec, zerolog.Nop()), repo, codec
}

func registerInput() ports.RegisterInput {
	return ports.RegisterInput{
		Username:    "alice",
		DisplayName: "Alice",
		Password:    "correct horse",
		Email:       "alice@example.com",
		Bio:         "hello",
		Age:         30,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	svc, _, _ := newAccountService(t)

	account, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if account.PasswordDigest == "correct horse" {
		t.Fatalf("password stored in plaintext")
	}
	if account.PasswordDigest != hash.Digest("correct horse") {
		t.Fatalf("stored digest does not match password digest")
	}
	if account.UID == "" {
		t.Fatalf("expected a public uid to be assigned")
	}
	if account.ID == "" {
		t.Fatalf("expected an internal id to be assigned")
	}
}

func TestAccountService_Register_PasswordLength(t *testing.T) {
	svc, repo, _ := newAccountService(t)

	in := registerInput()
	in.Password = "short"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrPasswordLength) {
		t.Fatalf("expected ErrPasswordLength, got %v", err)
	}
	if len(repo.accounts) != 0 {
		t.Fatalf("no account should be written on validation failure")
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newAccountService(t)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	in := registerInput()
	in.Username = "alice2"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAccountService_Login_Success(t *testing.T) {
	svc, _, codec := newAccountService(t)

	created, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	tok, account, err := svc.Login(context.Background(), "alice@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if account.Username != "alice" {
		t.Fatalf("unexpected account: %+v", account)
	}

	claims, err := codec.Verify(tok)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Username != "alice" || claims.UID != created.UID || claims.UserID != created.ID {
		t.Fatalf("claims do not match identity: %+v", claims)
	}
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newAccountService(t)
	_, _ = svc.Register(context.Background(), registerInput())

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "wrong password"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAccountService_Login_UnknownEmailNotRevealed(t *testing.T) {
	svc, _, _ := newAccountService(t)
	_, _ = svc.Register(context.Background(), registerInput())

	// An unknown address must fail exactly like a wrong password.
	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever-pass")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("login must not reveal whether the email exists")
	}
}

func TestAccountService_Profile(t *testing.T) {
	svc, _, _ := newAccountService(t)
	created, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	profile, err := svc.Profile(context.Background(), created.UID)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile.Username != "alice" || profile.DisplayName != "Alice" || profile.Age != 30 {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	if _, err := svc.Profile(context.Background(), "missing-uid"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
