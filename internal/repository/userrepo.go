package repository

import (
	"context"

	"github.com/avolodin/notekeep/internal/model"
	"github.com/gofrs/uuid/v5"
)

// UserRepository provides CRUD access and email lookup for users.
type UserRepository interface {
	// Create inserts a new user.
	Create(ctx context.Context, u *model.User) error
	// GetByEmail loads a user by email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// List returns all users.
	List(ctx context.Context) ([]model.User, error)
	// DeleteByID removes a user.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
