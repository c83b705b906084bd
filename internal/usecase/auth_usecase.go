package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hire-flow/internal/domain/user"
	"hire-flow/internal/pkg/jwt"
	"hire-flow/internal/repository"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthResult struct {
	User   user.User `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (AuthResult, error)
	Login(ctx context.Context, in LoginInput) (AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type AuthService struct {
	users  repository.UserRepository
	tokens jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, tokens jwt.Service) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !isValidPassword(in.Password) {
		return AuthResult{}, ErrInvalidInput
	}

	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = user.RoleEmployer
	}
	if role != user.RoleEmployer && role != user.RoleSeeker && role != user.RoleAdmin {
		return AuthResult{}, ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, ErrInternal
	}
	if exists {
		return AuthResult{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.users.Create(ctx, u); err != nil {
		// A concurrent register can win the race between the existence check
		// and the insert; report it as the conflict it is.
		exists, exErr := s.users.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return AuthResult{}, ErrEmailAlreadyRegistered
		}
		return AuthResult{}, ErrInternal
	}

	created, err := s.users.GetByID(ctx, u.ID)
	if err != nil {
		return AuthResult{}, ErrInternal
	}
	return s.issue(created)
}

func (s *AuthService) Login(ctx context.Context, in LoginInput) (AuthResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	return s.issue(u)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return TokenPair{}, ErrInvalidInput
	}

	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidCredentials
	}
	if !s.tokens.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, ErrInternal
	}

	return s.pair(u)
}

func (s *AuthService) issue(u user.User) (AuthResult, error) {
	pair, err := s.pair(u)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: sanitizeUser(u), Tokens: pair}, nil
}

func (s *AuthService) pair(u user.User) (TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	refresh, err := s.tokens.GenerateRefreshToken(u.ID)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
