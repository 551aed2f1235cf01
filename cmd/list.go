package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdelgad/bbcli/internal/bitbucket"
	"github.com/jdelgad/bbcli/internal/repo"
)

var (
	listFilterFlag         string
	listBranchFlag         string
	listCommaSeparatedFlag bool
	listSlugOnlyFlag       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all repositories you have access to",
	Long: `List all repositories you have access to.

By default, outputs a formatted table with repository, owner and clone URL.

With --branch, keeps only repositories where that branch exists. Each
candidate is probed with one API call, so large listings take a while.

With --comma-separated, outputs a flat comma-joined list of full names
(or slugs with --slug-only) suitable for scripting.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFilterFlag, "filter", "", "Filter repositories by name")
	listCmd.Flags().StringVar(&listBranchFlag, "branch", "", "Keep only repositories where this branch exists")
	listCmd.Flags().BoolVar(&listCommaSeparatedFlag, "comma-separated", false, "Output a comma-separated list instead of a table")
	listCmd.Flags().BoolVar(&listSlugOnlyFlag, "slug-only", false, "With --comma-separated, output slugs instead of full names")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	return runListWithDeps(cmd, nil)
}

// listDeps holds injectable dependencies for testing.
type listDeps struct {
	api     bitbucket.API
	prompts prompts
}

func runListWithDeps(cmd *cobra.Command, deps *listDeps) error {
	var api bitbucket.API
	p := defaultPrompts()

	if deps != nil {
		api = deps.api
		p = deps.prompts
	} else {
		envAPI, _, ok, err := newEnvAPI(cmd)
		if err != nil || !ok {
			return err
		}
		api = envAPI
	}

	ctx := cmd.Context()

	repos, err := fetchRepositories(ctx, api, p)
	if err != nil {
		return fmt.Errorf("failed to fetch repositories: %w", err)
	}

	repos = repo.FilterByName(repos, listFilterFlag)

	if listBranchFlag != "" {
		repos = repo.FilterByBranch(ctx, repos, listBranchFlag, spinningBranchChecker(api, p))
	}

	if listCommaSeparatedFlag {
		return repo.RenderList(cmd.OutOrStdout(), repos, listSlugOnlyFlag)
	}
	return repo.RenderTable(cmd.OutOrStdout(), repos)
}

// spinningBranchChecker wraps the API branch probe with a per-repository
// spinner, matching the sequential one-call-per-repository behavior.
func spinningBranchChecker(api bitbucket.API, p prompts) repo.BranchChecker {
	return func(ctx context.Context, workspace, slug, branch string) (bool, error) {
		var exists bool
		message := fmt.Sprintf("Checking if branch %q exists in %s/%s", branch, workspace, slug)
		err := p.spin(message, func() error {
			var checkErr error
			exists, checkErr = api.BranchExists(ctx, workspace, slug, branch)
			return checkErr
		})
		return exists, err
	}
}
