package naming

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidRemoteURL indicates a remote URL that does not end in
// "<workspace>/<repository>".
var ErrInvalidRemoteURL = errors.New("invalid remote URL")

// Remote identifies a repository on the provider.
type Remote struct {
	Workspace string
	Slug      string
}

// remotePattern matches the last two path segments of a remote URL, before
// an optional ".git" suffix. Covers both SSH (git@host:ws/repo.git) and
// HTTPS (https://host/ws/repo.git) forms.
var remotePattern = regexp.MustCompile(`[:/]([^/:]+)/([^/:]+?)(?:\.git)?/?$`)

// ParseRemoteURL extracts the workspace and repository slug from a git
// remote URL.
func ParseRemoteURL(rawURL string) (Remote, error) {
	trimmed := strings.TrimSpace(rawURL)

	match := remotePattern.FindStringSubmatch(trimmed)
	if match == nil {
		return Remote{}, ErrInvalidRemoteURL
	}

	return Remote{
		Workspace: match[1],
		Slug:      match[2],
	}, nil
}
