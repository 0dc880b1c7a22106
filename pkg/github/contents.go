package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// FetchRawDocument fetches a repository file as plain text from the
// raw-content host (main branch).
func (c *Client) FetchRawDocument(ctx context.Context, path string) (string, error) {
	u := fmt.Sprintf("%s/%s/%s/main/%s", c.rawBase, c.owner, c.repo, strings.TrimPrefix(path, "/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build raw content request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch raw content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", newRemoteError(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read raw content: %w", err)
	}
	return string(raw), nil
}

// FetchContents fetches a repository file through the contents API and
// decodes its base64 payload.
func (c *Client) FetchContents(ctx context.Context, path string) (string, error) {
	var out struct {
		Content  string `json:"content"`
		Encoding string `json:"encoding"`
	}
	u := c.repoURL("/contents/%s", strings.TrimPrefix(path, "/"))
	if err := c.doJSON(ctx, http.MethodGet, u, nil, &out); err != nil {
		return "", err
	}

	if out.Encoding != "base64" {
		return out.Content, nil
	}

	// The API wraps base64 at 60 columns; strip the newlines first.
	compact := strings.ReplaceAll(out.Content, "\n", "")
	decoded, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return "", fmt.Errorf("failed to decode contents payload: %w", err)
	}
	return string(decoded), nil
}

// FetchDocument fetches a repository file, preferring the raw-content
// host and falling back to the contents API. Both paths must stay
// supported: the storage layer behind a deployment may change.
func (c *Client) FetchDocument(ctx context.Context, path string) (string, error) {
	text, err := c.FetchRawDocument(ctx, path)
	if err == nil {
		return text, nil
	}
	return c.FetchContents(ctx, path)
}

// FileHTMLURL returns the web URL of a repository file on the main branch.
func (c *Client) FileHTMLURL(path string) string {
	return fmt.Sprintf("https://github.com/%s/%s/blob/main/%s", c.owner, c.repo, strings.TrimPrefix(path, "/"))
}
