package bitbucket

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
)

// DefaultBaseURL is the Bitbucket Cloud API base URL.
const DefaultBaseURL = "https://api.bitbucket.org/2.0"

var (
	// ErrMissingCloneLink indicates a repository record without an
	// https-named clone link.
	ErrMissingCloneLink = errors.New("no https clone link")

	// ErrTooManyPages indicates the pagination cursor did not terminate
	// within the configured page cap.
	ErrTooManyPages = errors.New("pagination exceeded the maximum page count")
)

// APIError is a non-2xx response from the API. Body carries the provider's
// response body verbatim when present.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("bitbucket api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("bitbucket api: status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the Bitbucket Cloud REST API using basic auth with a
// username / app password pair. All calls are sequential and unretried;
// failures surface immediately.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	username    string
	appPassword string
	maxPages    int
	log         *clog.Logger
}

// NewClient creates a Client. An empty baseURL selects Bitbucket Cloud.
func NewClient(baseURL, username, appPassword string, timeout time.Duration, maxPages int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		username:    username,
		appPassword: appPassword,
		maxPages:    maxPages,
		log:         clog.Default().WithPrefix("bitbucket"),
	}
}

func (c *Client) apiURL(path string) string {
	return c.baseURL + path
}

// do performs an authenticated request and returns the response body.
// Non-2xx responses are returned as *APIError.
func (c *Client) do(ctx context.Context, method, rawURL string, body io.Reader) ([]byte, error) {
	c.log.Debug("api request", "method", method, "url", rawURL)

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(c.username, c.appPassword)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("api request failed", "method", method, "url", rawURL, "status", resp.StatusCode)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	return respBody, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	body, err := c.do(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// page is one page of a paginated listing.
type page struct {
	Values []json.RawMessage `json:"values"`
	Next   string            `json:"next"`
}

// fetchAllPages follows the next cursor from startURL until exhausted,
// concatenating values in provider order. The page cap guards against a
// cyclic next cursor.
func (c *Client) fetchAllPages(ctx context.Context, startURL string) ([]json.RawMessage, error) {
	var values []json.RawMessage

	nextURL := startURL
	for pages := 0; nextURL != ""; pages++ {
		if pages >= c.maxPages {
			return nil, fmt.Errorf("%w (%d)", ErrTooManyPages, c.maxPages)
		}

		var p page
		if err := c.getJSON(ctx, nextURL, &p); err != nil {
			return nil, err
		}

		values = append(values, p.Values...)
		nextURL = p.Next
	}

	return values, nil
}

// ListRepositories returns every repository the authenticated user is a
// member of, across all pages, in provider order.
func (c *Client) ListRepositories(ctx context.Context) ([]Repository, error) {
	raws, err := c.fetchAllPages(ctx, c.apiURL("/repositories?role=member"))
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	repos := make([]Repository, 0, len(raws))
	for _, raw := range raws {
		var record repoRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("failed to decode repository: %w", err)
		}
		repo, err := normalizeRepository(record)
		if err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}

	return repos, nil
}

// ListOpenPullRequests returns the open pull requests for a repository.
func (c *Client) ListOpenPullRequests(ctx context.Context, workspace, slug string) ([]PullRequest, error) {
	var result struct {
		Values []prRecord `json:"values"`
	}

	path := fmt.Sprintf("/repositories/%s/%s/pullrequests?state=OPEN", workspace, slug)
	if err := c.getJSON(ctx, c.apiURL(path), &result); err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}

	prs := make([]PullRequest, 0, len(result.Values))
	for _, raw := range result.Values {
		prs = append(prs, normalizePullRequest(raw))
	}
	return prs, nil
}

// ApprovePullRequest approves a pull request.
func (c *Client) ApprovePullRequest(ctx context.Context, workspace, slug string, id int) error {
	path := fmt.Sprintf("/repositories/%s/%s/pullrequests/%d/approve", workspace, slug, id)
	_, err := c.do(ctx, http.MethodPost, c.apiURL(path), nil)
	return err
}

// UnapprovePullRequest withdraws an approval from a pull request.
func (c *Client) UnapprovePullRequest(ctx context.Context, workspace, slug string, id int) error {
	path := fmt.Sprintf("/repositories/%s/%s/pullrequests/%d/approve", workspace, slug, id)
	_, err := c.do(ctx, http.MethodDelete, c.apiURL(path), nil)
	return err
}

// DeclinePullRequest declines a pull request.
func (c *Client) DeclinePullRequest(ctx context.Context, workspace, slug string, id int) error {
	path := fmt.Sprintf("/repositories/%s/%s/pullrequests/%d/decline", workspace, slug, id)
	_, err := c.do(ctx, http.MethodPost, c.apiURL(path), nil)
	return err
}

// MergePullRequest merges a pull request.
func (c *Client) MergePullRequest(ctx context.Context, workspace, slug string, id int) error {
	path := fmt.Sprintf("/repositories/%s/%s/pullrequests/%d/merge", workspace, slug, id)
	_, err := c.do(ctx, http.MethodPost, c.apiURL(path), nil)
	return err
}

// CreatePullRequest opens a pull request from source to destination.
func (c *Client) CreatePullRequest(ctx context.Context, workspace, slug, title, source, destination string) (PullRequest, error) {
	type branchRef struct {
		Branch struct {
			Name string `json:"name"`
		} `json:"branch"`
	}
	var payload struct {
		Title       string    `json:"title"`
		Source      branchRef `json:"source"`
		Destination branchRef `json:"destination"`
	}
	payload.Title = title
	payload.Source.Branch.Name = source
	payload.Destination.Branch.Name = destination

	body, err := json.Marshal(payload)
	if err != nil {
		return PullRequest{}, fmt.Errorf("failed to marshal pull request: %w", err)
	}

	path := fmt.Sprintf("/repositories/%s/%s/pullrequests", workspace, slug)
	respBody, err := c.do(ctx, http.MethodPost, c.apiURL(path), bytes.NewReader(body))
	if err != nil {
		return PullRequest{}, err
	}

	var record prRecord
	if err := json.Unmarshal(respBody, &record); err != nil {
		return PullRequest{}, fmt.Errorf("failed to decode created pull request: %w", err)
	}
	return normalizePullRequest(record), nil
}

// BranchExists probes whether a branch exists in a repository.
func (c *Client) BranchExists(ctx context.Context, workspace, slug, branch string) (bool, error) {
	path := fmt.Sprintf("/repositories/%s/%s/refs/branches/%s", workspace, slug, url.PathEscape(branch))
	_, err := c.do(ctx, http.MethodGet, c.apiURL(path), nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
