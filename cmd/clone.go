package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdelgad/bbcli/internal/bitbucket"
	"github.com/jdelgad/bbcli/internal/git"
	"github.com/jdelgad/bbcli/internal/repo"
	"github.com/jdelgad/bbcli/internal/ui"
)

var cloneCmd = &cobra.Command{
	Use:   "clone [searchTerm]",
	Short: "Clone a repository you have access to",
	Long: `Clone a repository you have access to.

The search term is matched case-insensitively against repository names.
A single match clones immediately; multiple matches present a menu.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClone,
}

func init() {
	rootCmd.AddCommand(cloneCmd)
}

func runClone(cmd *cobra.Command, args []string) error {
	return runCloneWithDeps(cmd, args, nil)
}

// cloneDeps holds injectable dependencies for testing.
type cloneDeps struct {
	api     bitbucket.API
	git     git.Git
	prompts prompts
}

func runCloneWithDeps(cmd *cobra.Command, args []string, deps *cloneDeps) error {
	var api bitbucket.API
	var gitClient git.Git
	p := defaultPrompts()

	if deps != nil {
		api = deps.api
		gitClient = deps.git
		p = deps.prompts
	} else {
		envAPI, cfg, ok, err := newEnvAPI(cmd)
		if err != nil || !ok {
			return err
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		api = envAPI
		gitClient = git.New(cwd, cfg.Git.Timeout)
	}

	searchTerm := ""
	if len(args) == 1 {
		searchTerm = args[0]
	}

	repos, err := fetchRepositories(cmd.Context(), api, p)
	if err != nil {
		return fmt.Errorf("failed to fetch repositories: %w", err)
	}

	matches := repo.FilterByName(repos, searchTerm)

	var chosen bitbucket.Repository
	switch len(matches) {
	case 0:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No repositories found with that name.")
		return err
	case 1:
		chosen = matches[0]
	default:
		options := make([]ui.Option, len(matches))
		for i, r := range matches {
			options[i] = ui.Option{Label: r.Name, Detail: r.CloneURL}
		}

		idx, err := p.selectOption("Choose a repository to clone:", options)
		if err != nil {
			if errors.Is(err, ui.ErrCanceled) {
				return nil
			}
			return err
		}
		chosen = matches[idx]
	}

	return cloneRepository(cmd, gitClient, chosen)
}

// cloneRepository runs git clone in the current directory. A failed clone is
// reported, not escalated; the process still exits normally.
func cloneRepository(cmd *cobra.Command, gitClient git.Git, r bitbucket.Repository) error {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cloning repository from %s...\n", r.CloneURL)
	if err := gitClient.Clone(r.CloneURL); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Failed to clone repository: %v\n", err)
		return nil
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), "Repository cloned successfully!")
	return err
}
