package client

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
)

// Session is the persisted login state of the CLI.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ErrNoSession indicates there is no valid stored login.
var ErrNoSession = errors.New("no valid session (login required)")

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "notekeep")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "notekeep")
}

func sessionPath() string { return filepath.Join(cfgDir(), "session.json") }

// SaveSession writes the session file with owner-only permissions.
func SaveSession(s Session) error {
	if err := os.MkdirAll(cfgDir(), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(sessionPath(), b, 0o600)
}

// LoadSession reads and validates the stored session.
func LoadSession() (Session, error) {
	b, err := os.ReadFile(sessionPath())
	if err != nil {
		return Session{}, ErrNoSession
	}
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return Session{}, ErrNoSession
	}
	if s.Token == "" || time.Now().After(s.ExpiresAt) {
		return Session{}, ErrNoSession
	}
	return s, nil
}

// ClearSession removes the stored session, if any.
func ClearSession() error {
	err := os.Remove(sessionPath())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
