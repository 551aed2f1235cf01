package bitbucket

import (
	"fmt"
	"time"
)

// Repository is a normalized Bitbucket repository record.
type Repository struct {
	Name      string // display name, "<owner> / <repo>"
	Slug      string
	Workspace string
	FullName  string // "<workspace>/<slug>"
	CloneURL  string // https clone URL
}

// PullRequest is a normalized Bitbucket pull request record.
type PullRequest struct {
	ID        int
	Title     string
	Author    string // author display name
	State     string // OPEN, MERGED or DECLINED
	UpdatedOn time.Time
}

// cloneLink is one entry of a repository's links.clone array.
type cloneLink struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// repoRecord is the wire shape of a repository as returned by the API.
type repoRecord struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	FullName string `json:"full_name"`
	Owner    struct {
		DisplayName string `json:"display_name"`
		Username    string `json:"username"`
	} `json:"owner"`
	Links struct {
		Clone []cloneLink `json:"clone"`
	} `json:"links"`
}

// prRecord is the wire shape of a pull request as returned by the API.
type prRecord struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	State  string `json:"state"`
	Author struct {
		DisplayName string `json:"display_name"`
	} `json:"author"`
	UpdatedOn time.Time `json:"updated_on"`
}

// normalizeRepository maps a raw repository record into a Repository.
// A repository without an https clone link is an error, never an empty URL.
func normalizeRepository(raw repoRecord) (Repository, error) {
	cloneURL := ""
	for _, link := range raw.Links.Clone {
		if link.Name == "https" {
			cloneURL = link.Href
			break
		}
	}

	fullName := raw.FullName
	if fullName == "" {
		fullName = raw.Owner.Username + "/" + raw.Slug
	}

	if cloneURL == "" {
		return Repository{}, fmt.Errorf("%s: %w", fullName, ErrMissingCloneLink)
	}

	return Repository{
		Name:      raw.Owner.DisplayName + " / " + raw.Name,
		Slug:      raw.Slug,
		Workspace: raw.Owner.Username,
		FullName:  fullName,
		CloneURL:  cloneURL,
	}, nil
}

// normalizePullRequest maps a raw pull request record into a PullRequest.
func normalizePullRequest(raw prRecord) PullRequest {
	return PullRequest{
		ID:        raw.ID,
		Title:     raw.Title,
		Author:    raw.Author.DisplayName,
		State:     raw.State,
		UpdatedOn: raw.UpdatedOn,
	}
}

// Workspaces returns the distinct workspace slugs across the given
// repositories, in first-seen order.
func Workspaces(repos []Repository) []string {
	seen := make(map[string]bool)
	var workspaces []string
	for _, r := range repos {
		if !seen[r.Workspace] {
			seen[r.Workspace] = true
			workspaces = append(workspaces, r.Workspace)
		}
	}
	return workspaces
}
