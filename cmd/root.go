package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdelgad/bbcli/internal/bitbucket"
	"github.com/jdelgad/bbcli/internal/config"
	"github.com/jdelgad/bbcli/internal/credentials"
)

// Version is set at build time via ldflags.
var Version = "n/a"

var rootCmd = &cobra.Command{
	Use:   "bbcli",
	Short: "Bitbucket terminal client",
	Long: `bbcli works with Bitbucket Cloud from the terminal: list and clone
repositories, triage open pull requests, and draft a pull request from
the current branch's last commit.`,
}

func init() {
	rootCmd.Version = Version
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadSettings merges defaults with any .bbcli.toml files in the home and
// current directories.
func loadSettings() (config.Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get user home directory: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get current directory: %w", err)
	}

	loader := config.NewDefaultLoader()
	result, err := loader.Load(config.ConfigPaths(homeDir, cwd))
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return result.Config, nil
}

func credentialStore() (*credentials.Store, error) {
	path, err := credentials.DefaultPath()
	if err != nil {
		return nil, err
	}
	return credentials.NewStore(path), nil
}

// requireCredentials loads the stored credentials. When they are incomplete
// it prints guidance and reports ok=false so the command can stop without an
// error exit.
func requireCredentials(cmd *cobra.Command) (credentials.Credentials, bool, error) {
	store, err := credentialStore()
	if err != nil {
		return credentials.Credentials{}, false, err
	}

	creds, err := store.Load()
	if err != nil {
		return credentials.Credentials{}, false, err
	}

	if !creds.Complete() {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), `Please set your username and app password using "set-username" and "set-password"`)
		return credentials.Credentials{}, false, nil
	}

	return creds, true, nil
}

func newClient(cfg config.Config, creds credentials.Credentials) *bitbucket.Client {
	return bitbucket.NewClient(cfg.API.BaseURL, creds.Username, creds.AppPassword, cfg.API.Timeout, cfg.API.MaxPages)
}

// newEnvAPI builds the API client from settings and stored credentials.
// ok=false means credentials are incomplete and guidance was printed.
func newEnvAPI(cmd *cobra.Command) (bitbucket.API, config.Config, bool, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, config.Config{}, false, err
	}

	creds, ok, err := requireCredentials(cmd)
	if err != nil || !ok {
		return nil, cfg, false, err
	}

	return newClient(cfg, creds), cfg, true, nil
}

// fetchRepositories fetches every accessible repository behind a spinner.
// Failures here are fatal to the calling command.
func fetchRepositories(ctx context.Context, api bitbucket.API, p prompts) ([]bitbucket.Repository, error) {
	var repos []bitbucket.Repository
	err := p.spin("Fetching repositories...", func() error {
		var fetchErr error
		repos, fetchErr = api.ListRepositories(ctx)
		return fetchErr
	})
	return repos, err
}
