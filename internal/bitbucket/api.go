package bitbucket

import "context"

// API is the surface of the REST client the commands depend on.
type API interface {

	// ListRepositories returns every repository the authenticated user is a
	// member of, across all pages, in provider order.
	ListRepositories(ctx context.Context) ([]Repository, error)

	// ListOpenPullRequests returns the open pull requests for a repository.
	ListOpenPullRequests(ctx context.Context, workspace, slug string) ([]PullRequest, error)

	// ApprovePullRequest approves a pull request.
	ApprovePullRequest(ctx context.Context, workspace, slug string, id int) error

	// UnapprovePullRequest withdraws an approval from a pull request.
	UnapprovePullRequest(ctx context.Context, workspace, slug string, id int) error

	// DeclinePullRequest declines a pull request.
	DeclinePullRequest(ctx context.Context, workspace, slug string, id int) error

	// MergePullRequest merges a pull request.
	MergePullRequest(ctx context.Context, workspace, slug string, id int) error

	// CreatePullRequest opens a pull request from source to destination and
	// returns the created pull request.
	CreatePullRequest(ctx context.Context, workspace, slug, title, source, destination string) (PullRequest, error)

	// BranchExists reports whether a branch exists in a repository.
	BranchExists(ctx context.Context, workspace, slug, branch string) (bool, error)
}

var _ API = &Client{}
