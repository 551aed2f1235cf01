package config

import (
	"errors"
	"time"
)

// Config represents the complete bbcli configuration.
type Config struct {
	API APIConfig `toml:"api"`
	Git GitConfig `toml:"git"`
	PR  PRConfig  `toml:"pr"`
}

// Validate checks that all config values are valid.
// Returns an error describing the first invalid value found.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url cannot be empty")
	}
	if c.API.Timeout < 0 {
		return errors.New("api.timeout cannot be negative")
	}
	if c.API.MaxPages < 1 {
		return errors.New("api.max_pages must be at least 1")
	}
	if c.Git.Timeout < 0 {
		return errors.New("git.timeout cannot be negative")
	}
	if c.PR.DefaultDestination == "" {
		return errors.New("pr.default_destination cannot be empty")
	}
	return nil
}

// APIConfig configures access to the Bitbucket REST API.
type APIConfig struct {
	BaseURL  string        `toml:"base_url"`  // e.g., "https://api.bitbucket.org/2.0"
	Timeout  time.Duration `toml:"timeout"`   // Timeout for API requests (e.g., "30s")
	MaxPages int           `toml:"max_pages"` // Cap on pages followed per paginated listing
}

// GitConfig configures git command execution.
type GitConfig struct {
	Timeout time.Duration `toml:"timeout"` // Timeout for git metadata commands (e.g., "5s")
}

// PRConfig configures pull request creation.
type PRConfig struct {
	DefaultDestination string `toml:"default_destination"` // Destination branch offered by default
}
