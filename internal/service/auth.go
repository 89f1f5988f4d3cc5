// Package service contains application services for authentication and notes.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgcrypto "github.com/avolodin/notekeep/internal/crypto"
	"github.com/avolodin/notekeep/internal/errs"
	"github.com/avolodin/notekeep/internal/model"
	"github.com/avolodin/notekeep/internal/repository"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
)

// AuthService defines authentication and account management operations.
type AuthService interface {
	// Register creates a new user with secure password hashing.
	Register(ctx context.Context, email, password string) (*model.User, error)
	// Login authenticates the user and issues a signed access token.
	Login(ctx context.Context, email, password string) (model.Tokens, *model.User, error)
	// ListUsers returns all registered users.
	ListUsers(ctx context.Context) ([]model.User, error)
	// DeleteUser removes a user by id.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type AuthServiceImpl struct {
	users     repository.UserRepository
	signKey   []byte
	accessTTL time.Duration
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, signKey []byte, accessTTL time.Duration) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, signKey: signKey, accessTTL: accessTTL}
}

// Register creates a new user record with a bcrypt password hash.
func (s *AuthServiceImpl) Register(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: empty email/password", errs.ErrValidation)
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, errs.ErrAlreadyExists
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	uid, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	hash, err := pkgcrypto.HashPassword([]byte(password))
	if err != nil {
		return nil, err
	}

	u := &model.User{
		ID:           uid,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	// The unique index still backstops concurrent registrations.
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password produce the same error, and both paths pay one bcrypt
// comparison.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (model.Tokens, *model.User, error) {
	if email == "" || password == "" {
		return model.Tokens{}, nil, errs.ErrUnauthorized
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		pkgcrypto.BurnVerification([]byte(password))
		if errors.Is(err, errs.ErrNotFound) {
			return model.Tokens{}, nil, errs.ErrUnauthorized
		}
		return model.Tokens{}, nil, err
	}
	if !pkgcrypto.VerifyPassword([]byte(password), u.PasswordHash) {
		return model.Tokens{}, nil, errs.ErrUnauthorized
	}

	access, exp, err := s.issueAccessToken(u.ID)
	if err != nil {
		return model.Tokens{}, nil, err
	}
	return model.Tokens{AccessToken: access, ExpiresAt: exp}, u, nil
}

// issueAccessToken creates a signed HS256 JWT for the given subject.
func (s *AuthServiceImpl) issueAccessToken(userID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.accessTTL)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.signKey)
	return signed, exp, err
}

// ListUsers returns all users; password hashes never leave the model layer.
func (s *AuthServiceImpl) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// DeleteUser removes a user by id.
func (s *AuthServiceImpl) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: empty id", errs.ErrValidation)
	}
	return s.users.DeleteByID(ctx, id)
}
