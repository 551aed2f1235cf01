package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jdelgad/bbcli/internal/bitbucket"
	"github.com/jdelgad/bbcli/internal/repo"
	"github.com/jdelgad/bbcli/internal/ui"
)

var listPRsFilterFlag string

var listPRsCmd = &cobra.Command{
	Use:   "list-prs",
	Short: "List open pull requests and act on them",
	Long: `List open pull requests for a repository in a selected workspace.

Walks through workspace, repository, pull request and action selection.
Available actions: approve, decline, merge, unapprove.`,
	Args: cobra.NoArgs,
	RunE: runListPRs,
}

func init() {
	listPRsCmd.Flags().StringVar(&listPRsFilterFlag, "filter", "", "Filter repositories by name")
	rootCmd.AddCommand(listPRsCmd)
}

// prAction is one entry of the action menu, binding the label to the API
// call and its result messages.
type prAction struct {
	label   string
	success string
	failure string
	run     func(ctx context.Context, api bitbucket.API, workspace, slug string, id int) error
}

func prActions() []prAction {
	return []prAction{
		{
			label:   "Approve",
			success: "Pull request approved.",
			failure: "Failed to approve pull request",
			run: func(ctx context.Context, api bitbucket.API, ws, slug string, id int) error {
				return api.ApprovePullRequest(ctx, ws, slug, id)
			},
		},
		{
			label:   "Decline",
			success: "Pull request declined.",
			failure: "Failed to decline pull request",
			run: func(ctx context.Context, api bitbucket.API, ws, slug string, id int) error {
				return api.DeclinePullRequest(ctx, ws, slug, id)
			},
		},
		{
			label:   "Merge",
			success: "Pull request merged.",
			failure: "Failed to merge pull request",
			run: func(ctx context.Context, api bitbucket.API, ws, slug string, id int) error {
				return api.MergePullRequest(ctx, ws, slug, id)
			},
		},
		{
			label:   "Unapprove",
			success: "Pull request unapproved.",
			failure: "Failed to unapprove pull request",
			run: func(ctx context.Context, api bitbucket.API, ws, slug string, id int) error {
				return api.UnapprovePullRequest(ctx, ws, slug, id)
			},
		},
	}
}

func runListPRs(cmd *cobra.Command, _ []string) error {
	return runListPRsWithDeps(cmd, nil)
}

// listPRsDeps holds injectable dependencies for testing.
type listPRsDeps struct {
	api     bitbucket.API
	prompts prompts
}

func runListPRsWithDeps(cmd *cobra.Command, deps *listPRsDeps) error {
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

	workspaces := bitbucket.Workspaces(repos)
	if len(workspaces) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "You don't have access to any workspaces.")
		return err
	}

	wsOptions := make([]ui.Option, len(workspaces))
	for i, ws := range workspaces {
		wsOptions[i] = ui.Option{Label: ws}
	}
	wsIdx, err := p.selectOption("Select a workspace:", wsOptions)
	if err != nil {
		if errors.Is(err, ui.ErrCanceled) {
			return nil
		}
		return err
	}

	candidates := workspaceRepositories(repo.FilterByName(repos, listPRsFilterFlag), workspaces[wsIdx])
	if len(candidates) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No repositories found in this workspace.")
		return err
	}

	repoOptions := make([]ui.Option, len(candidates))
	for i, r := range candidates {
		repoOptions[i] = ui.Option{Label: r.Name, Detail: r.Slug}
	}
	repoIdx, err := p.selectOption("Select a repository:", repoOptions)
	if err != nil {
		if errors.Is(err, ui.ErrCanceled) {
			return nil
		}
		return err
	}
	selected := candidates[repoIdx]

	var prs []bitbucket.PullRequest
	err = p.spin("Fetching open pull requests...", func() error {
		var fetchErr error
		prs, fetchErr = api.ListOpenPullRequests(ctx, selected.Workspace, selected.Slug)
		return fetchErr
	})
	if err != nil {
		if errors.Is(err, ui.ErrCanceled) {
			return nil
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return nil
	}

	if len(prs) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No open pull requests.")
		return err
	}

	prIdx, err := p.selectOption("Select a pull request to interact with:", pullRequestOptions(prs))
	if err != nil {
		if errors.Is(err, ui.ErrCanceled) {
			return nil
		}
		return err
	}
	pr := prs[prIdx]

	actions := prActions()
	actionOptions := make([]ui.Option, len(actions))
	for i, a := range actions {
		actionOptions[i] = ui.Option{Label: a.label}
	}
	actionIdx, err := p.selectOption("Choose an action for the pull request:", actionOptions)
	if err != nil {
		if errors.Is(err, ui.ErrCanceled) {
			return nil
		}
		return err
	}

	action := actions[actionIdx]
	if err := action.run(ctx, api, selected.Workspace, selected.Slug, pr.ID); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", action.failure, err)
		return nil
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), action.success)
	return err
}

// workspaceRepositories keeps the repositories owned by the given workspace.
func workspaceRepositories(repos []bitbucket.Repository, workspace string) []bitbucket.Repository {
	var matched []bitbucket.Repository
	for _, r := range repos {
		if r.Workspace == workspace {
			matched = append(matched, r)
		}
	}
	return matched
}

// pullRequestOptions builds menu entries like "Fix login - Jane Doe (updated 2 days ago)".
func pullRequestOptions(prs []bitbucket.PullRequest) []ui.Option {
	options := make([]ui.Option, len(prs))
	for i, pr := range prs {
		detail := ""
		if !pr.UpdatedOn.IsZero() {
			detail = "updated " + humanize.Time(pr.UpdatedOn)
		}
		options[i] = ui.Option{
			Label:  fmt.Sprintf("%s - %s", pr.Title, pr.Author),
			Detail: detail,
		}
	}
	return options
}
