package credentials

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
)

const (
	credentialsDir  = ".bbcli"
	credentialsFile = "credentials.json"
)

// Credentials is the stored Bitbucket username / app password pair.
// Persisted as plaintext JSON; a known limitation of this tool.
type Credentials struct {
	Username    string `json:"username"`
	AppPassword string `json:"appPassword"`
}

// Complete returns true when both fields are set.
func (c Credentials) Complete() bool {
	return c.Username != "" && c.AppPassword != ""
}

// Store reads and writes the credential record at a fixed path.
type Store struct {
	path string
	log  *clog.Logger
}

// NewStore creates a Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		log:  clog.Default().WithPrefix("credentials"),
	}
}

// DefaultPath returns the per-user credential file path.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, credentialsDir, credentialsFile), nil
}

// Load reads the stored credentials. A missing file is not an error;
// it returns empty credentials so first-run commands can print guidance.
func (s *Store) Load() (Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("no credential file", "path", s.path)
			return Credentials{}, nil
		}
		return Credentials{}, fmt.Errorf("failed to read credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("failed to parse credentials: %w", err)
	}

	return creds, nil
}

// Save rewrites the credential record in full.
func (s *Store) Save(creds Credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}

	s.log.Debug("credentials saved", "path", s.path)
	return nil
}
