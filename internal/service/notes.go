package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/avolodin/notekeep/internal/errs"
	"github.com/avolodin/notekeep/internal/model"
	"github.com/avolodin/notekeep/internal/repository"
	"github.com/gofrs/uuid/v5"
)

// NoteService defines CRUD operations over notes.
type NoteService interface {
	// Create validates input and stores a new note.
	Create(ctx context.Context, heading, content string, favorite bool) (*model.Note, error)
	// List returns all notes.
	List(ctx context.Context) ([]model.Note, error)
	// GetOne returns a single note by id.
	GetOne(ctx context.Context, id uuid.UUID) (*model.Note, error)
	// Update applies a partial update to a note.
	Update(ctx context.Context, id uuid.UUID, upd model.NoteUpdate) (*model.Note, error)
	// Delete removes a note by id.
	Delete(ctx context.Context, id uuid.UUID) error
}

type NoteServiceImpl struct {
	repo repository.NoteRepository
}

// NewNoteService constructs NoteService.
func NewNoteService(repo repository.NoteRepository) *NoteServiceImpl {
	return &NoteServiceImpl{repo: repo}
}

// Create validates heading/content and delegates to the repository.
// Validation rules:
// - heading non-empty after trimming
// - content non-empty after trimming
func (s *NoteServiceImpl) Create(ctx context.Context, heading, content string, favorite bool) (*model.Note, error) {
	if strings.TrimSpace(heading) == "" {
		return nil, fmt.Errorf("%w: empty heading", errs.ErrValidation)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: empty content", errs.ErrValidation)
	}
	return s.repo.Create(ctx, heading, content, favorite)
}

// List returns all notes in store order.
func (s *NoteServiceImpl) List(ctx context.Context) ([]model.Note, error) {
	return s.repo.List(ctx)
}

// GetOne fetches a single note by id.
func (s *NoteServiceImpl) GetOne(ctx context.Context, id uuid.UUID) (*model.Note, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: empty id", errs.ErrValidation)
	}
	return s.repo.GetByID(ctx, id)
}

// Update rejects present-but-empty heading/content, then applies the
// partial update. Absent fields keep their stored values.
func (s *NoteServiceImpl) Update(ctx context.Context, id uuid.UUID, upd model.NoteUpdate) (*model.Note, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: empty id", errs.ErrValidation)
	}
	if upd.Heading != nil && strings.TrimSpace(*upd.Heading) == "" {
		return nil, fmt.Errorf("%w: empty heading", errs.ErrValidation)
	}
	if upd.Content != nil && strings.TrimSpace(*upd.Content) == "" {
		return nil, fmt.Errorf("%w: empty content", errs.ErrValidation)
	}
	if upd.Heading == nil && upd.Content == nil && upd.Favorite == nil {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.UpdateByID(ctx, id, upd)
}

// Delete removes a note by id.
func (s *NoteServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: empty id", errs.ErrValidation)
	}
	return s.repo.DeleteByID(ctx, id)
}
