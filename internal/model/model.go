// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Note is a single user-authored record with a favorite flag.
type Note struct {
	ID        uuid.UUID `json:"id"`
	Heading   string    `json:"heading"`
	Content   string    `json:"content"`
	Favorite  bool      `json:"favorite"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"` // bumped on every write
}

// NoteUpdate carries a partial update; nil fields are left unchanged.
type NoteUpdate struct {
	Heading  *string `json:"heading"`
	Content  *string `json:"content"`
	Favorite *bool   `json:"favorite"`
}

// User represents an account. The password hash is never serialized.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"` // unique
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Tokens collects an issued access token and its expiry.
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time // access token expiry (for diagnostics)
}
