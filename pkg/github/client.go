package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

const (
	defaultAPIBaseURL = "https://api.github.com"
	defaultRawBaseURL = "https://raw.githubusercontent.com"

	acceptHeader = "application/vnd.github.v3+json"
)

// Config holds the connection settings for a repository-scoped client.
type Config struct {
	Owner string
	Repo  string
	Token string // optional; anonymous reads work without it

	// Overridable in tests.
	APIBaseURL string
	RawBaseURL string
}

// Client is the HTTP wrapper for the GitHub REST API, scoped to a single
// repository. It holds no state between calls.
type Client struct {
	apiBase    string
	rawBase    string
	owner      string
	repo       string
	token      string
	httpClient *http.Client
}

// NewClient creates a new GitHub client for one owner/repo pair.
// When a token is configured the underlying transport injects it as a
// Bearer credential via oauth2.
func NewClient(cfg Config) *Client {
	apiBase := cfg.APIBaseURL
	if apiBase == "" {
		apiBase = defaultAPIBaseURL
	}
	rawBase := cfg.RawBaseURL
	if rawBase == "" {
		rawBase = defaultRawBaseURL
	}

	httpClient := &http.Client{}
	if cfg.Token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient = oauth2.NewClient(context.Background(), src)
	}

	return &Client{
		apiBase:    apiBase,
		rawBase:    rawBase,
		owner:      cfg.Owner,
		repo:       cfg.Repo,
		token:      cfg.Token,
		httpClient: httpClient,
	}
}

// WithToken returns a client presenting the given credential instead of
// the service token. The derived client keeps the repository scope and
// base URLs; only the transport changes. An empty or identical token
// returns the receiver unchanged.
func (c *Client) WithToken(token string) *Client {
	if token == "" || token == c.token {
		return c
	}
	derived := *c
	derived.token = token
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	derived.httpClient = oauth2.NewClient(context.Background(), src)
	return &derived
}

// repoURL builds an API URL under /repos/{owner}/{repo}.
func (c *Client) repoURL(format string, args ...any) string {
	return fmt.Sprintf("%s/repos/%s/%s", c.apiBase, c.owner, c.repo) + fmt.Sprintf(format, args...)
}

// doJSON executes a request with a JSON body (when body is non-nil) and
// decodes the 2xx response into out (when out is non-nil). Non-2xx responses
// become a *RemoteError carrying the API's message when decodable.
func (c *Client) doJSON(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call github API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newRemoteError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode github response: %w", err)
		}
	}
	return nil
}
