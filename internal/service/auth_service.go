package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"blog_service/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows.
var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserNotFound    = errors.New("user not found")
)

// AuthService handles credential hashing and verification.
type AuthService struct {
	users repository.Users
}

func NewAuthService(users repository.Users) *AuthService {
	return &AuthService{users: users}
}

var _ Authorization = (*AuthService)(nil)

// SignUp hashes the password and creates a new user. If hashing fails,
// no store call is made.
func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (int, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}
	return s.users.Create(ctx, username, email, hash)
}

// Login verifies credentials and returns the user's id. Unknown usernames and
// wrong passwords surface as distinct errors; callers collapse both into one
// response so the two cases are indistinguishable to clients.
func (s *AuthService) Login(ctx context.Context, username, password string) (int, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if u == nil {
		return 0, ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return 0, ErrInvalidPassword
	}

	return u.ID, nil
}

// IsCredentialError reports whether err is an auth failure rather than a
// store failure.
func IsCredentialError(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrInvalidPassword)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash. bcrypt compares in constant time and
// a malformed hash fails closed with an error.
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
