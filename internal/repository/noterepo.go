// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/avolodin/notekeep/internal/model"
	"github.com/gofrs/uuid/v5"
)

// NoteRepository provides CRUD access to the notes collection.
type NoteRepository interface {
	// Create inserts a new note and returns it with generated id and timestamps.
	Create(ctx context.Context, heading, content string, favorite bool) (*model.Note, error)
	// List returns all notes in creation order.
	List(ctx context.Context) ([]model.Note, error)
	// GetByID loads a note by id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Note, error)
	// UpdateByID applies a partial update and returns the updated note.
	UpdateByID(ctx context.Context, id uuid.UUID, upd model.NoteUpdate) (*model.Note, error)
	// DeleteByID removes a note.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
