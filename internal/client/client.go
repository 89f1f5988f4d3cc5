// Package client implements the REST client used by the notekeep CLI.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/avolodin/notekeep/internal/model"
)

// Client talks to the notekeep HTTP API.
type Client struct {
	base  string
	http  *http.Client
	token string
}

// New constructs a client for the given base URL. token may be empty for
// unauthenticated calls.
func New(base, token string) *Client {
	return &Client{
		base:  base,
		http:  &http.Client{Timeout: 30 * time.Second},
		token: token,
	}
}

// apiError is a non-2xx response carrying the server's message.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// IsNotFound reports whether err is a 404 from the server.
func IsNotFound(err error) bool {
	ae, ok := err.(*apiError)
	return ok && ae.Status == http.StatusNotFound
}

// do issues a request and decodes the JSON response into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &msg)
		return &apiError{Status: resp.StatusCode, Message: msg.Message}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// --- Auth ---

// RegisterResult is the body of a successful registration.
type RegisterResult struct {
	Message string     `json:"message"`
	User    model.User `json:"user"`
}

// LoginResult is the body of a successful login.
type LoginResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  string `json:"userId"`
	Email   string `json:"email"`
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, email, password string) (*RegisterResult, error) {
	var out RegisterResult
	err := c.do(ctx, http.MethodPost, "/admin/register", map[string]string{
		"email": email, "password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and returns the issued token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var out LoginResult
	err := c.do(ctx, http.MethodPost, "/admin/login", map[string]string{
		"email": email, "password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers returns all registered users.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var out struct {
		Users []model.User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/get-users", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// DeleteUser removes a user by id.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/delete-user/"+id, nil, nil)
}

// --- Notes ---

// CreateNote stores a new note.
func (c *Client) CreateNote(ctx context.Context, heading, content string, favorite bool) (*model.Note, error) {
	var out model.Note
	err := c.do(ctx, http.MethodPost, "/create/notes", map[string]any{
		"heading": heading, "content": content, "favorite": favorite,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListNotes fetches the full note list.
func (c *Client) ListNotes(ctx context.Context) ([]model.Note, error) {
	var out []model.Note
	if err := c.do(ctx, http.MethodGet, "/create/notes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetNote fetches a single note.
func (c *Client) GetNote(ctx context.Context, id string) (*model.Note, error) {
	var out model.Note
	if err := c.do(ctx, http.MethodGet, "/create/notes/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateNote applies a partial update; nil fields are left unchanged.
func (c *Client) UpdateNote(ctx context.Context, id string, upd model.NoteUpdate) (*model.Note, error) {
	var out model.Note
	if err := c.do(ctx, http.MethodPut, "/create/notes/"+id, upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteNote removes a note.
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/create/notes/"+id, nil, nil)
}
