package repo

import (
	"context"
	"strings"

	clog "github.com/charmbracelet/log"

	"github.com/jdelgad/bbcli/internal/bitbucket"
)

// BranchChecker probes whether a branch exists in a repository.
type BranchChecker func(ctx context.Context, workspace, slug, branch string) (bool, error)

// FilterByName keeps repositories whose display name contains the substring,
// case-insensitively. An empty substring matches everything.
func FilterByName(repos []bitbucket.Repository, substring string) []bitbucket.Repository {
	if substring == "" {
		return repos
	}

	needle := strings.ToLower(substring)
	var matched []bitbucket.Repository
	for _, r := range repos {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			matched = append(matched, r)
		}
	}
	return matched
}

// FilterByBranch keeps repositories where the branch exists. Probes are
// sequential, in listed order. A failed probe skips the repository rather
// than aborting the listing.
func FilterByBranch(ctx context.Context, repos []bitbucket.Repository, branch string, check BranchChecker) []bitbucket.Repository {
	log := clog.Default().WithPrefix("repo")

	var matched []bitbucket.Repository
	for _, r := range repos {
		exists, err := check(ctx, r.Workspace, r.Slug, branch)
		if err != nil {
			log.Warn("branch check failed", "repository", r.FullName, "branch", branch, "error", err)
			continue
		}
		if exists {
			matched = append(matched, r)
		}
	}
	return matched
}
