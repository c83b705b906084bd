package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hire-flow/internal/domain/user"
	"hire-flow/internal/pkg/jwt"
	"hire-flow/internal/repository"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User

	createErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:    make(map[uuid.UUID]user.User),
		byEmail: make(map[string]user.User),
	}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func testTokenService() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	users := newMockUserRepo()
	uc := NewAuthUsecase(users, testTokenService())

	out, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Hiring Manager",
		Email:    "  HM@Example.com ",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.User.Email != "hm@example.com" {
		t.Fatalf("expected normalized email, got %q", out.User.Email)
	}
	if out.User.Role != user.RoleEmployer {
		t.Fatalf("expected employer role by default, got %q", out.User.Role)
	}
	if out.User.PasswordHash != "" {
		t.Fatalf("password hash leaked in response")
	}
	if out.Tokens.AccessToken == "" || out.Tokens.RefreshToken == "" {
		t.Fatalf("expected token pair, got %+v", out.Tokens)
	}

	login, err := uc.Login(context.Background(), LoginInput{Email: "hm@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if login.User.ID != out.User.ID {
		t.Fatalf("login returned a different user")
	}
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	users := newMockUserRepo()
	uc := NewAuthUsecase(users, testTokenService())

	in := RegisterInput{Email: "hm@example.com", Password: "correct horse"}
	if _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Register(context.Background(), in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuth_RegisterShortPassword(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), testTokenService())
	_, err := uc.Register(context.Background(), RegisterInput{Email: "hm@example.com", Password: "short"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	users := newMockUserRepo()
	uc := NewAuthUsecase(users, testTokenService())

	if _, err := uc.Register(context.Background(), RegisterInput{Email: "hm@example.com", Password: "correct horse"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := uc.Login(context.Background(), LoginInput{Email: "hm@example.com", Password: "wrong horse"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_LoginUnknownEmail(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), testTokenService())
	_, err := uc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "whatever1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_Refresh(t *testing.T) {
	users := newMockUserRepo()
	uc := NewAuthUsecase(users, testTokenService())

	out, err := uc.Register(context.Background(), RegisterInput{Email: "hm@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	pair, err := uc.Refresh(context.Background(), out.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected new pair, got %+v", pair)
	}

	// An access token is not accepted on the refresh path.
	if _, err := uc.Refresh(context.Background(), out.Tokens.AccessToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for access token, got %v", err)
	}
}
