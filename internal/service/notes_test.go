package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/avolodin/notekeep/internal/errs"
	"github.com/avolodin/notekeep/internal/model"
	"github.com/avolodin/notekeep/internal/repository/memory"
)

func newNotes() *NoteServiceImpl {
	return NewNoteService(memory.NewNoteRepo())
}

func TestNoteCreate_Validation(t *testing.T) {
	t.Parallel()
	s := newNotes()
	ctx := context.Background()

	cases := []struct {
		name             string
		heading, content string
	}{
		{"empty heading", "", "body"},
		{"empty content", "title", ""},
		{"whitespace heading", "   ", "body"},
		{"whitespace content", "title", "\t\n"},
	}
	for _, tc := range cases {
		if _, err := s.Create(ctx, tc.heading, tc.content, false); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("%s: got %v, want ErrValidation", tc.name, err)
		}
	}
}

func TestNoteCreate_ThenGet(t *testing.T) {
	t.Parallel()
	s := newNotes()
	ctx := context.Background()

	first, err := s.Create(ctx, "Groceries", "milk, eggs", false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.Favorite {
		t.Fatalf("favorite should default to false")
	}

	second, err := s.Create(ctx, "Other", "note", false)
	if err != nil {
		t.Fatalf("Create(2): %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("ids must be distinct")
	}

	got, err := s.GetOne(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetOne: %v", err)
	}
	if got.Heading != "Groceries" || got.Content != "milk, eggs" {
		t.Fatalf("fetched note mismatch: %+v", got)
	}
}

func TestNoteUpdate_RejectsEmptyFields(t *testing.T) {
	t.Parallel()
	s := newNotes()
	ctx := context.Background()

	n, err := s.Create(ctx, "h", "c", false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	empty := "  "
	if _, err := s.Update(ctx, n.ID, model.NoteUpdate{Heading: &empty}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("empty heading: got %v, want ErrValidation", err)
	}
	if _, err := s.Update(ctx, n.ID, model.NoteUpdate{Content: &empty}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("empty content: got %v, want ErrValidation", err)
	}
}

func TestNoteUpdate_NoFields_ReturnsCurrent(t *testing.T) {
	t.Parallel()
	s := newNotes()
	ctx := context.Background()

	n, err := s.Create(ctx, "h", "c", true)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := s.Update(ctx, n.ID, model.NoteUpdate{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Heading != "h" || got.Content != "c" || !got.Favorite {
		t.Fatalf("note changed by empty update: %+v", got)
	}
}

func TestNoteUpdate_FavoriteToggleTwice(t *testing.T) {
	t.Parallel()
	s := newNotes()
	ctx := context.Background()

	n, err := s.Create(ctx, "h", "c", false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	on := true
	got, err := s.Update(ctx, n.ID, model.NoteUpdate{Favorite: &on})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !got.Favorite {
		t.Fatalf("favorite should be true after first toggle")
	}

	off := false
	got, err = s.Update(ctx, n.ID, model.NoteUpdate{Favorite: &off})
	if err != nil {
		t.Fatalf("Update(2): %v", err)
	}
	if got.Favorite {
		t.Fatalf("favorite should return to false after second toggle")
	}
	if got.Heading != "h" || got.Content != "c" {
		t.Fatalf("toggle must not touch heading/content: %+v", got)
	}
}

func TestNoteDelete(t *testing.T) {
	t.Parallel()
	s := newNotes()
	ctx := context.Background()

	n, err := s.Create(ctx, "h", "c", false)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Delete(ctx, n.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.GetOne(ctx, n.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("get after delete: got %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, uuid.Must(uuid.NewV4())); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("delete nonexistent: got %v, want ErrNotFound", err)
	}
}
