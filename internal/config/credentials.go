package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
)

// TokenEnv overrides any stored API token.
const TokenEnv = "DATEPICKER_TOKEN"

// DataDir returns $XDG_DATA_HOME/datepicker-tui, or
// ~/.local/share/datepicker-tui, creating it when missing.
func DataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}

	dir := filepath.Join(base, appName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dir, nil
}

// TokenStore keeps the HTTP API bearer token in the system keyring. When
// no keyring is available the token goes to a 0600 file in Dir.
type TokenStore struct {
	Dir     string
	Service string
	User    string
}

// DefaultTokenStore stores under the data directory.
func DefaultTokenStore() (*TokenStore, error) {
	dir, err := DataDir()
	if err != nil {
		return nil, err
	}
	return &TokenStore{Dir: dir, Service: appName, User: "server-token"}, nil
}

func (s *TokenStore) file() string {
	return filepath.Join(s.Dir, ".server-token")
}

// Get returns the token from $DATEPICKER_TOKEN, the keyring or the token
// file, in that order. "" means no token is configured.
func (s *TokenStore) Get() (string, error) {
	if env := strings.TrimSpace(os.Getenv(TokenEnv)); env != "" {
		return env, nil
	}

	if token, err := keyring.Get(s.Service, s.User); err == nil && token != "" {
		return strings.TrimSpace(token), nil
	}

	data, err := os.ReadFile(s.file())
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "", nil
	case err != nil:
		return "", fmt.Errorf("failed to read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save stores token, preferring the keyring.
func (s *TokenStore) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token cannot be empty")
	}

	if keyring.Set(s.Service, s.User, token) == nil {
		return nil
	}
	if err := os.WriteFile(s.file(), []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Clear removes the token from the keyring and the token file.
func (s *TokenStore) Clear() error {
	_ = keyring.Delete(s.Service, s.User)
	if err := os.Remove(s.file()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

// GetToken reads the token from the default store.
func GetToken() (string, error) {
	s, err := DefaultTokenStore()
	if err != nil {
		return "", err
	}
	return s.Get()
}

// SaveToken writes the token to the default store.
func SaveToken(token string) error {
	s, err := DefaultTokenStore()
	if err != nil {
		return err
	}
	return s.Save(token)
}

// ClearToken removes the token from the default store.
func ClearToken() error {
	s, err := DefaultTokenStore()
	if err != nil {
		return err
	}
	return s.Clear()
}
