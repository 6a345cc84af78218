package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotLoggedIn is returned by LoadCredentials when no session is stored.
var ErrNotLoggedIn = errors.New("not logged in")

// Credentials is the session state the CLI persists between invocations.
type Credentials struct {
	ServerURL string `json:"server_url"`
	Email     string `json:"email"`
	Token     string `json:"token"`
}

// credentialsPath returns the location of the stored session file, creating
// the parent directory if needed.
func credentialsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}

	dir := filepath.Join(configDir, "taskwell")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return filepath.Join(dir, "credentials.json"), nil
}

// SaveCredentials persists the session to disk, readable only by the
// current user.
func SaveCredentials(creds Credentials) error {
	path, err := credentialsPath()
	if err != nil {
		return err
	}

	payload, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	return nil
}

// LoadCredentials reads the stored session, returning ErrNotLoggedIn when
// none exists.
func LoadCredentials() (*Credentials, error) {
	path, err := credentialsPath()
	if err != nil {
		return nil, err
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(payload, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	if creds.Token == "" {
		return nil, ErrNotLoggedIn
	}
	return &creds, nil
}

// ClearCredentials removes the stored session. Clearing an absent session
// is not an error.
func ClearCredentials() error {
	path, err := credentialsPath()
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}
	return nil
}
