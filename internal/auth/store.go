// Package auth loads and stores the Moltbook API key.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDir is the directory name for moltbook config.
	ConfigDir = "moltbook"
	// CredentialsFile is the filename for stored credentials.
	CredentialsFile = "credentials.json"
)

// Credentials is the content of the credentials file.
type Credentials struct {
	APIKey    string `json:"api_key"`
	AgentName string `json:"agent_name,omitempty"`
}

// Store manages credential storage.
type Store struct {
	configDir string
}

// NewStore creates a credential store in the user config directory.
func NewStore() (*Store, error) {
	configDir, err := UserConfigDir()
	if err != nil {
		return nil, err
	}
	return &Store{configDir: configDir}, nil
}

// NewStoreAt creates a credential store rooted at dir.
func NewStoreAt(dir string) *Store {
	return &Store{configDir: dir}
}

// UserConfigDir returns the moltbook configuration directory path.
func UserConfigDir() (string, error) {
	// Use XDG_CONFIG_HOME if set, otherwise ~/.config.
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir), nil
}

// Save stores credentials to disk.
func (s *Store) Save(creds *Credentials) error {
	if err := os.MkdirAll(s.configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	if err := os.WriteFile(s.Path(), data, 0600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}

	return nil
}

// Load retrieves stored credentials.
func (s *Store) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoCredentials
		}
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}

	return &creds, nil
}

// Delete removes stored credentials.
func (s *Store) Delete() error {
	if err := os.Remove(s.Path()); err != nil {
		if os.IsNotExist(err) {
			return nil // Already deleted.
		}
		return fmt.Errorf("failed to delete credentials: %w", err)
	}

	return nil
}

// Exists checks if credentials are stored.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path())
	return err == nil
}

// Path returns the credentials file path.
func (s *Store) Path() string {
	return filepath.Join(s.configDir, CredentialsFile)
}

// ErrNoCredentials indicates no stored credentials exist.
var ErrNoCredentials = errors.New("no stored credentials")
