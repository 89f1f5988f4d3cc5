// Package memory contains in-memory implementations of repository
// interfaces, used by tests and local development.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/avolodin/notekeep/internal/errs"
	"github.com/avolodin/notekeep/internal/model"
	"github.com/avolodin/notekeep/internal/repository"
	"github.com/gofrs/uuid/v5"
)

var (
	_ repository.NoteRepository = (*NoteRepo)(nil)
	_ repository.UserRepository = (*UserRepo)(nil)
)

// NoteRepo is a map-backed NoteRepository.
type NoteRepo struct {
	mu    sync.RWMutex
	notes map[uuid.UUID]model.Note
	seq   int
	order map[uuid.UUID]int
}

// NewNoteRepo constructs an empty in-memory note repository.
func NewNoteRepo() *NoteRepo {
	return &NoteRepo{
		notes: make(map[uuid.UUID]model.Note),
		order: make(map[uuid.UUID]int),
	}
}

// Create stores a new note with a generated id and timestamps.
func (r *NoteRepo) Create(_ context.Context, heading, content string, favorite bool) (*model.Note, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	n := model.Note{
		ID:        id,
		Heading:   heading,
		Content:   content,
		Favorite:  favorite,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes[id] = n
	r.seq++
	r.order[id] = r.seq
	return &n, nil
}

// List returns all notes in creation order.
func (r *NoteRepo) List(_ context.Context) ([]model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Note, 0, len(r.notes))
	for _, n := range r.notes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return r.order[out[i].ID] < r.order[out[j].ID] })
	return out, nil
}

// GetByID loads a note by id.
func (r *NoteRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.notes[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &n, nil
}

// UpdateByID applies a partial update; nil fields keep their values.
func (r *NoteRepo) UpdateByID(_ context.Context, id uuid.UUID, upd model.NoteUpdate) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notes[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	if upd.Heading != nil {
		n.Heading = *upd.Heading
	}
	if upd.Content != nil {
		n.Content = *upd.Content
	}
	if upd.Favorite != nil {
		n.Favorite = *upd.Favorite
	}
	n.UpdatedAt = time.Now()
	r.notes[id] = n
	return &n, nil
}

// DeleteByID removes a note.
func (r *NoteRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[id]; !ok {
		return errs.ErrNotFound
	}
	delete(r.notes, id)
	delete(r.order, id)
	return nil
}

// UserRepo is a map-backed UserRepository.
type UserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]model.User
	seq   int
	order map[uuid.UUID]int
}

// NewUserRepo constructs an empty in-memory user repository.
func NewUserRepo() *UserRepo {
	return &UserRepo{
		users: make(map[uuid.UUID]model.User),
		order: make(map[uuid.UUID]int),
	}
}

// Create stores a new user, enforcing email uniqueness.
func (r *UserRepo) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return errs.ErrAlreadyExists
		}
	}
	r.users[u.ID] = *u
	r.seq++
	r.order[u.ID] = r.seq
	return nil
}

// GetByEmail loads a user by email.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			c := u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

// List returns all users in creation order.
func (r *UserRepo) List(_ context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return r.order[out[i].ID] < r.order[out[j].ID] })
	return out, nil
}

// DeleteByID removes a user.
func (r *UserRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return errs.ErrNotFound
	}
	delete(r.users, id)
	delete(r.order, id)
	return nil
}
