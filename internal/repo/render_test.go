package repo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelgad/bbcli/internal/bitbucket"
)

func sampleRepos() []bitbucket.Repository {
	return []bitbucket.Repository{
		{
			Name:     "Acme / billing-service",
			Slug:     "billing-service",
			FullName: "acme/billing-service",
			CloneURL: "https://bitbucket.org/acme/billing-service.git",
		},
		{
			Name:     "Globex / other",
			Slug:     "other",
			FullName: "globex/other",
			CloneURL: "https://bitbucket.org/globex/other.git",
		},
	}
}

func TestRenderList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, sampleRepos(), false))
	assert.Equal(t, "acme/billing-service,globex/other\n", buf.String())
}

func TestRenderList_SlugOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, sampleRepos(), true))
	assert.Equal(t, "billing-service,other\n", buf.String())
}

func TestRenderList_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, nil, false))
	assert.Equal(t, "\n", buf.String())
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, sampleRepos()))

	out := buf.String()
	assert.Contains(t, out, "Repository")
	assert.Contains(t, out, "Owner")
	assert.Contains(t, out, "URL")
	assert.Contains(t, out, "billing-service")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "https://bitbucket.org/globex/other.git")
}

func TestRenderTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, nil))
	assert.Equal(t, "No repositories found.\n", buf.String())
}

func TestRenderTable_RowCountMatchesInput(t *testing.T) {
	repos := []bitbucket.Repository{
		{Name: "Acme / billing-service", CloneURL: "https://bitbucket.org/acme/billing-service.git"},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, repos))

	assert.Equal(t, 1, strings.Count(buf.String(), "billing-service"))
	assert.NotContains(t, buf.String(), "other")
}

func TestSplitDisplayName(t *testing.T) {
	tests := []struct {
		name      string
		display   string
		wantOwner string
		wantName  string
	}{
		{name: "standard display name", display: "Acme / billing-service", wantOwner: "Acme", wantName: "billing-service"},
		{name: "no separator", display: "billing-service", wantOwner: "", wantName: "billing-service"},
		{name: "name containing slash", display: "Acme / some / thing", wantOwner: "Acme", wantName: "some / thing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, name := splitDisplayName(tt.display)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantName, name)
		})
	}
}
