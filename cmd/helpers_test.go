package cmd

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/spf13/cobra"

	"github.com/jdelgad/bbcli/internal/bitbucket"
	"github.com/jdelgad/bbcli/internal/git"
	"github.com/jdelgad/bbcli/internal/ui"
)

// fakeAPI is a scripted REST client for command tests.
type fakeAPI struct {
	repos    []bitbucket.Repository
	reposErr error

	prs    []bitbucket.PullRequest
	prsErr error

	actionErr error
	actions   []string

	created   []string
	createErr error

	branches map[string]bool
}

var _ bitbucket.API = &fakeAPI{}

func (f *fakeAPI) ListRepositories(context.Context) ([]bitbucket.Repository, error) {
	return f.repos, f.reposErr
}

func (f *fakeAPI) ListOpenPullRequests(_ context.Context, workspace, slug string) ([]bitbucket.PullRequest, error) {
	return f.prs, f.prsErr
}

func (f *fakeAPI) ApprovePullRequest(_ context.Context, workspace, slug string, id int) error {
	f.actions = append(f.actions, fmt.Sprintf("approve %s/%s#%d", workspace, slug, id))
	return f.actionErr
}

func (f *fakeAPI) UnapprovePullRequest(_ context.Context, workspace, slug string, id int) error {
	f.actions = append(f.actions, fmt.Sprintf("unapprove %s/%s#%d", workspace, slug, id))
	return f.actionErr
}

func (f *fakeAPI) DeclinePullRequest(_ context.Context, workspace, slug string, id int) error {
	f.actions = append(f.actions, fmt.Sprintf("decline %s/%s#%d", workspace, slug, id))
	return f.actionErr
}

func (f *fakeAPI) MergePullRequest(_ context.Context, workspace, slug string, id int) error {
	f.actions = append(f.actions, fmt.Sprintf("merge %s/%s#%d", workspace, slug, id))
	return f.actionErr
}

func (f *fakeAPI) CreatePullRequest(_ context.Context, workspace, slug, title, source, destination string) (bitbucket.PullRequest, error) {
	f.created = append(f.created, fmt.Sprintf("%s|%s|%s|%s|%s", workspace, slug, title, source, destination))
	if f.createErr != nil {
		return bitbucket.PullRequest{}, f.createErr
	}
	return bitbucket.PullRequest{ID: 42, Title: title}, nil
}

func (f *fakeAPI) BranchExists(_ context.Context, workspace, slug, branch string) (bool, error) {
	return f.branches[slug], nil
}

// fakeGit is a scripted git bridge for command tests.
type fakeGit struct {
	branch    string
	message   string
	remoteURL string
	cloneErr  error
	cloned    []string
}

var _ git.Git = &fakeGit{}

func (f *fakeGit) CurrentBranch() (string, error)     { return f.branch, nil }
func (f *fakeGit) LastCommitMessage() (string, error) { return f.message, nil }
func (f *fakeGit) RemoteURL(string) (string, error)   { return f.remoteURL, nil }

func (f *fakeGit) Clone(url string) error {
	f.cloned = append(f.cloned, url)
	return f.cloneErr
}

// promptScript answers select prompts from a fixed queue and fails the test
// on any prompt beyond the scripted ones. Text input returns the default and
// spinners run their work inline.
type promptScript struct {
	t          *testing.T
	selections []int
	titles     []string
	optionLens []int
}

func (s *promptScript) prompts() prompts {
	return prompts{
		selectOption: func(title string, options []ui.Option) (int, error) {
			if len(s.selections) == 0 {
				s.t.Fatalf("unexpected prompt: %s", title)
			}
			s.titles = append(s.titles, title)
			s.optionLens = append(s.optionLens, len(options))
			idx := s.selections[0]
			s.selections = s.selections[1:]
			return idx, nil
		},
		input: func(title, defaultValue string) (string, error) {
			s.titles = append(s.titles, title)
			return defaultValue, nil
		},
		spin: func(_ string, fn func() error) error {
			return fn()
		},
	}
}

// newTestCommand returns a command wired to buffers instead of the terminal.
func newTestCommand(t *testing.T) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	return cmd, &out, &errOut
}
