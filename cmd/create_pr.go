package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdelgad/bbcli/internal/bitbucket"
	"github.com/jdelgad/bbcli/internal/config"
	"github.com/jdelgad/bbcli/internal/git"
	"github.com/jdelgad/bbcli/internal/naming"
	"github.com/jdelgad/bbcli/internal/ui"
)

var createPRCmd = &cobra.Command{
	Use:   "create-pr",
	Short: "Create a pull request from the current branch",
	Long: `Create a pull request for the current branch.

The title is composed from the branch name and the last commit message,
and the target repository is parsed from the origin remote URL.`,
	Args: cobra.NoArgs,
	RunE: runCreatePR,
}

func init() {
	rootCmd.AddCommand(createPRCmd)
}

func runCreatePR(cmd *cobra.Command, _ []string) error {
	return runCreatePRWithDeps(cmd, nil, nil)
}

// createPRDeps holds injectable dependencies for testing.
type createPRDeps struct {
	api     bitbucket.API
	git     git.Git
	prompts prompts
}

func runCreatePRWithDeps(cmd *cobra.Command, deps *createPRDeps, cfg *config.Config) error {
	var api bitbucket.API
	var gitClient git.Git
	p := defaultPrompts()
	loadedCfg := config.DefaultConfig()

	if deps != nil {
		api = deps.api
		gitClient = deps.git
		p = deps.prompts
		if cfg != nil {
			loadedCfg = *cfg
		}
	} else {
		envAPI, envCfg, ok, err := newEnvAPI(cmd)
		if err != nil || !ok {
			return err
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		api = envAPI
		loadedCfg = envCfg
		gitClient = git.New(cwd, envCfg.Git.Timeout)
	}

	branch, err := gitClient.CurrentBranch()
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return nil
	}

	message, err := gitClient.LastCommitMessage()
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return nil
	}

	remoteURL, err := gitClient.RemoteURL("origin")
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return nil
	}

	remote, err := naming.ParseRemoteURL(remoteURL)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v: %s\n", err, remoteURL)
		return nil
	}

	destination, err := p.input("Enter the destination branch:", loadedCfg.PR.DefaultDestination)
	if err != nil {
		if errors.Is(err, ui.ErrCanceled) {
			return nil
		}
		return err
	}

	title := composeTitle(branch, message)

	pr, err := api.CreatePullRequest(cmd.Context(), remote.Workspace, remote.Slug, title, branch, destination)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Failed to create pull request: %v\n", err)
		return nil
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created pull request #%d: %s\n", pr.ID, pr.Title)
	return err
}

// composeTitle builds the pull request title as "<branch>: <commit message>".
func composeTitle(branch, commitMessage string) string {
	return fmt.Sprintf("%s: %s", branch, commitMessage)
}
