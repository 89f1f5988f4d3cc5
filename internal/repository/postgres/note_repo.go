package postgres

import (
	"context"
	"errors"

	"github.com/avolodin/notekeep/internal/errs"
	"github.com/avolodin/notekeep/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// NoteRepo implements NoteRepository using PostgreSQL.
type NoteRepo struct{ db *DB }

// NewNoteRepo constructs a note repository.
func NewNoteRepo(db *DB) *NoteRepo { return &NoteRepo{db: db} }

// Create inserts a new note row and returns it with generated id and timestamps.
func (r *NoteRepo) Create(ctx context.Context, heading, content string, favorite bool) (*model.Note, error) {
	const q = `
INSERT INTO notes (id, heading, content, favorite)
VALUES ($1, $2, $3, $4)
RETURNING id, heading, content, favorite, created_at, updated_at`
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	row := r.db.Pool.QueryRow(ctx, q, id, heading, content, favorite)
	var n model.Note
	if err := row.Scan(&n.ID, &n.Heading, &n.Content, &n.Favorite, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

// List returns all notes in creation order.
func (r *NoteRepo) List(ctx context.Context) ([]model.Note, error) {
	const q = `
SELECT id, heading, content, favorite, created_at, updated_at
FROM notes ORDER BY created_at`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Note{}
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.Heading, &n.Content, &n.Favorite, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// GetByID selects a note by id.
func (r *NoteRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Note, error) {
	const q = `
SELECT id, heading, content, favorite, created_at, updated_at
FROM notes WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var n model.Note
	if err := row.Scan(&n.ID, &n.Heading, &n.Content, &n.Favorite, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// UpdateByID applies a partial update; nil fields keep their current value.
func (r *NoteRepo) UpdateByID(ctx context.Context, id uuid.UUID, upd model.NoteUpdate) (*model.Note, error) {
	const q = `
UPDATE notes
SET heading = COALESCE($2, heading),
    content = COALESCE($3, content),
    favorite = COALESCE($4, favorite),
    updated_at = now()
WHERE id=$1
RETURNING id, heading, content, favorite, created_at, updated_at`
	row := r.db.Pool.QueryRow(ctx, q, id, upd.Heading, upd.Content, upd.Favorite)
	var n model.Note
	if err := row.Scan(&n.ID, &n.Heading, &n.Content, &n.Favorite, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// DeleteByID removes a note row.
func (r *NoteRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM notes WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
