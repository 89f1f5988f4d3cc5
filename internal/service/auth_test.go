package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avolodin/notekeep/internal/errs"
	"github.com/avolodin/notekeep/internal/repository/memory"
)

var testSignKey = []byte("test-signing-key")

func newAuth() (*AuthServiceImpl, *memory.UserRepo) {
	users := memory.NewUserRepo()
	return NewAuthService(users, testSignKey, time.Hour), users
}

func TestRegister_HashesPassword(t *testing.T) {
	t.Parallel()
	s, users := newAuth()
	ctx := context.Background()

	u, err := s.Register(ctx, "a@b.c", "secret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Email != "a@b.c" {
		t.Fatalf("email=%q", u.Email)
	}
	if string(u.PasswordHash) == "secret" || len(u.PasswordHash) == 0 {
		t.Fatalf("password stored without hashing")
	}

	stored, err := users.GetByEmail(ctx, "a@b.c")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if stored.ID != u.ID {
		t.Fatalf("stored id mismatch")
	}
}

func TestRegister_EmptyFields(t *testing.T) {
	t.Parallel()
	s, _ := newAuth()
	ctx := context.Background()

	if _, err := s.Register(ctx, "", "pw"); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("empty email: got %v, want ErrValidation", err)
	}
	if _, err := s.Register(ctx, "a@b.c", ""); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("empty password: got %v, want ErrValidation", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	s, _ := newAuth()
	ctx := context.Background()

	if _, err := s.Register(ctx, "a@b.c", "pw1"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := s.Register(ctx, "a@b.c", "pw2")
	if !errors.Is(err, errs.ErrAlreadyExists) {
		t.Fatalf("second register: got %v, want ErrAlreadyExists", err)
	}
}

func TestLogin_Success_TokenSubjectAndExpiry(t *testing.T) {
	t.Parallel()
	s, _ := newAuth()
	ctx := context.Background()

	u, err := s.Register(ctx, "a@b.c", "secret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	tok, got, err := s.Login(ctx, "a@b.c", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.Email != "a@b.c" {
		t.Fatalf("login user email=%q", got.Email)
	}
	if tok.AccessToken == "" {
		t.Fatalf("empty access token")
	}

	var claims jwt.RegisteredClaims
	_, err = jwt.ParseWithClaims(tok.AccessToken, &claims, func(*jwt.Token) (any, error) {
		return testSignKey, nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Subject != u.ID.String() {
		t.Fatalf("subject=%q, want=%q", claims.Subject, u.ID)
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 55*time.Minute || ttl > time.Hour {
		t.Fatalf("token ttl=%v, want about 1h", ttl)
	}
}

func TestLogin_UnknownEmailAndWrongPassword_SameError(t *testing.T) {
	t.Parallel()
	s, _ := newAuth()
	ctx := context.Background()

	if _, err := s.Register(ctx, "a@b.c", "secret"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, _, errWrongPw := s.Login(ctx, "a@b.c", "not-the-password")
	_, _, errNoUser := s.Login(ctx, "nobody@b.c", "secret")

	if !errors.Is(errWrongPw, errs.ErrUnauthorized) {
		t.Fatalf("wrong password: got %v, want ErrUnauthorized", errWrongPw)
	}
	if !errors.Is(errNoUser, errs.ErrUnauthorized) {
		t.Fatalf("unknown email: got %v, want ErrUnauthorized", errNoUser)
	}
	// Neither path may reveal which check failed.
	if errWrongPw.Error() != errNoUser.Error() {
		t.Fatalf("errors differ: %q vs %q", errWrongPw, errNoUser)
	}
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()
	s, _ := newAuth()
	ctx := context.Background()

	u, err := s.Register(ctx, "a@b.c", "pw")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := s.DeleteUser(ctx, u.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if err := s.DeleteUser(ctx, u.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("second delete: got %v, want ErrNotFound", err)
	}

	us, err := s.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(us) != 0 {
		t.Fatalf("users remaining: %d", len(us))
	}
}
