package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdelgad/bbcli/internal/bitbucket"
)

func namedRepos(names ...string) []bitbucket.Repository {
	repos := make([]bitbucket.Repository, len(names))
	for i, n := range names {
		repos[i] = bitbucket.Repository{Name: n}
	}
	return repos
}

func TestFilterByName(t *testing.T) {
	repos := namedRepos("Acme / billing-service", "Acme / billing-ui", "Acme / other")

	tests := []struct {
		name      string
		substring string
		want      []string
	}{
		{
			name:      "substring match",
			substring: "billing",
			want:      []string{"Acme / billing-service", "Acme / billing-ui"},
		},
		{
			name:      "case insensitive",
			substring: "BILLING",
			want:      []string{"Acme / billing-service", "Acme / billing-ui"},
		},
		{
			name:      "no match",
			substring: "payments",
			want:      nil,
		},
		{
			name:      "exact name",
			substring: "acme / other",
			want:      []string{"Acme / other"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByName(repos, tt.substring)

			var names []string
			for _, r := range got {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestFilterByName_EmptySubstringIsIdentity(t *testing.T) {
	repos := namedRepos("Acme / billing-service", "Acme / other")
	assert.Equal(t, repos, FilterByName(repos, ""))
}

func TestFilterByBranch(t *testing.T) {
	repos := []bitbucket.Repository{
		{Name: "Acme / a", Workspace: "acme", Slug: "a", FullName: "acme/a"},
		{Name: "Acme / b", Workspace: "acme", Slug: "b", FullName: "acme/b"},
		{Name: "Acme / c", Workspace: "acme", Slug: "c", FullName: "acme/c"},
	}

	var probed []string
	checker := func(_ context.Context, workspace, slug, branch string) (bool, error) {
		probed = append(probed, slug)
		assert.Equal(t, "release", branch)
		return slug == "b", nil
	}

	got := FilterByBranch(context.Background(), repos, "release", checker)

	assert.Equal(t, []string{"a", "b", "c"}, probed, "probes issued sequentially in listed order")
	assert.Len(t, got, 1)
	assert.Equal(t, "Acme / b", got[0].Name)
}

func TestFilterByBranch_ProbeErrorSkipsRepository(t *testing.T) {
	repos := []bitbucket.Repository{
		{Name: "Acme / a", Slug: "a"},
		{Name: "Acme / b", Slug: "b"},
	}

	checker := func(_ context.Context, _, slug, _ string) (bool, error) {
		if slug == "a" {
			return false, errors.New("boom")
		}
		return true, nil
	}

	got := FilterByBranch(context.Background(), repos, "release", checker)

	assert.Len(t, got, 1)
	assert.Equal(t, "Acme / b", got[0].Name)
}
