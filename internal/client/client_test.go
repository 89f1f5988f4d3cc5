package client

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avolodin/notekeep/internal/httpapi"
	"github.com/avolodin/notekeep/internal/model"
	"github.com/avolodin/notekeep/internal/repository/memory"
	"github.com/avolodin/notekeep/internal/service"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	auth := service.NewAuthService(memory.NewUserRepo(), []byte("test-key"), time.Hour)
	notes := service.NewNoteService(memory.NewNoteRepo())
	srv := httptest.NewServer(httpapi.New(auth, notes).Routes(zap.NewNop(), "http://localhost:5173"))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_AuthFlow(t *testing.T) {
	srv := newServer(t)
	c := New(srv.URL, "")
	ctx := context.Background()

	reg, err := c.Register(ctx, "a@b.c", "secret")
	require.NoError(t, err)
	require.Equal(t, "a@b.c", reg.User.Email)

	_, err = c.Register(ctx, "a@b.c", "secret")
	require.Error(t, err)
	require.Contains(t, err.Error(), "User already exists")

	login, err := c.Login(ctx, "a@b.c", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)
	require.Equal(t, "a@b.c", login.Email)

	_, err = c.Login(ctx, "a@b.c", "wrong")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid Credentials")

	users, err := c.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	require.NoError(t, c.DeleteUser(ctx, users[0].ID.String()))
	_, err = c.ListUsers(ctx)
	require.True(t, IsNotFound(err))
}

func TestClient_NoteFlow(t *testing.T) {
	srv := newServer(t)
	c := New(srv.URL, "")
	ctx := context.Background()

	n, err := c.CreateNote(ctx, "Groceries", "milk, eggs", false)
	require.NoError(t, err)
	require.False(t, n.Favorite)

	fav := true
	updated, err := c.UpdateNote(ctx, n.ID.String(), model.NoteUpdate{Favorite: &fav})
	require.NoError(t, err)
	require.True(t, updated.Favorite)

	notes, err := c.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)

	require.NoError(t, c.DeleteNote(ctx, n.ID.String()))

	_, err = c.GetNote(ctx, n.ID.String())
	require.True(t, IsNotFound(err))
	require.Contains(t, err.Error(), "Note not found")
}
