package config

import "time"

// DefaultConfig returns sensible defaults for all configuration.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:  "https://api.bitbucket.org/2.0",
			Timeout:  30 * time.Second,
			MaxPages: 100,
		},
		Git: GitConfig{
			Timeout: 5 * time.Second,
		},
		PR: PRConfig{
			DefaultDestination: "master",
		},
	}
}
