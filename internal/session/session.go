// Package session persists the authenticated session as a durable
// token/profile pair under the configuration directory.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ttask/internal/service"
)

const (
	// TokenFile holds the raw bearer token.
	TokenFile = "token"

	// UserFile holds the serialized user profile.
	UserFile = "user.json"
)

// Store is the single source of truth for "who is logged in". It performs
// no network calls; it only reads and writes the two durable entries
// beneath its directory, and the two are always written and removed
// together.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) tokenPath() string { return filepath.Join(s.dir, TokenFile) }
func (s *Store) userPath() string  { return filepath.Join(s.dir, UserFile) }

// Restore reads the persisted token/profile pair. It returns nil when no
// session is stored. Partial or corrupt state is not trusted: a token
// without a parseable profile (or the reverse) never establishes a session.
func (s *Store) Restore() (*service.Session, error) {
	tokenData, err := os.ReadFile(s.tokenPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	token := strings.TrimSpace(string(tokenData))
	if token == "" {
		return nil, nil
	}

	userData, err := os.ReadFile(s.userPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read user profile: %w", err)
	}
	var user service.User
	if err := json.Unmarshal(userData, &user); err != nil {
		return nil, nil
	}
	if user.ID == "" || user.Email == "" {
		return nil, nil
	}

	return &service.Session{Token: token, User: user}, nil
}

// Set establishes the session, persisting both entries with mode 0600.
// The directory is created on demand.
func (s *Store) Set(token string, user service.User) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("encode user profile: %w", err)
	}
	if err := os.WriteFile(s.userPath(), data, 0600); err != nil {
		return fmt.Errorf("save user profile: %w", err)
	}
	if err := os.WriteFile(s.tokenPath(), []byte(token+"\n"), 0600); err != nil {
		// Keep the pair invariant: no profile without a token.
		os.Remove(s.userPath())
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// Clear tears down the session, removing both entries. Missing files are
// not an error, so Clear also scrubs any partial state.
func (s *Store) Clear() error {
	var firstErr error
	for _, path := range []string{s.tokenPath(), s.userPath()} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// IsAuthenticated reports whether a complete session is stored.
func (s *Store) IsAuthenticated() bool {
	sess, err := s.Restore()
	return err == nil && sess != nil
}
