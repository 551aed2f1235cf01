package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		name          string
		url           string
		wantWorkspace string
		wantSlug      string
	}{
		{
			name:          "ssh remote with git suffix",
			url:           "git@example.com:teamx/reponame.git",
			wantWorkspace: "teamx",
			wantSlug:      "reponame",
		},
		{
			name:          "ssh remote without git suffix",
			url:           "git@bitbucket.org:acme/billing-service",
			wantWorkspace: "acme",
			wantSlug:      "billing-service",
		},
		{
			name:          "https remote with git suffix",
			url:           "https://bitbucket.org/teamx/reponame.git",
			wantWorkspace: "teamx",
			wantSlug:      "reponame",
		},
		{
			name:          "https remote without git suffix",
			url:           "https://bitbucket.org/acme/billing-ui",
			wantWorkspace: "acme",
			wantSlug:      "billing-ui",
		},
		{
			name:          "https remote with embedded username",
			url:           "https://jane@bitbucket.org/acme/billing-ui.git",
			wantWorkspace: "acme",
			wantSlug:      "billing-ui",
		},
		{
			name:          "trailing slash",
			url:           "https://bitbucket.org/acme/billing-ui/",
			wantWorkspace: "acme",
			wantSlug:      "billing-ui",
		},
		{
			name:          "surrounding whitespace",
			url:           "  git@example.com:teamx/reponame.git\n",
			wantWorkspace: "teamx",
			wantSlug:      "reponame",
		},
		{
			name:          "dot in repository name",
			url:           "git@bitbucket.org:acme/my.site.git",
			wantWorkspace: "acme",
			wantSlug:      "my.site",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remote, err := ParseRemoteURL(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.wantWorkspace, remote.Workspace)
			assert.Equal(t, tt.wantSlug, remote.Slug)
		})
	}
}

func TestParseRemoteURL_Invalid(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "empty string", url: ""},
		{name: "whitespace only", url: "   "},
		{name: "no path segments", url: "reponame"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRemoteURL(tt.url)
			assert.ErrorIs(t, err, ErrInvalidRemoteURL)
		})
	}
}
