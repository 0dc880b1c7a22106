package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ValidateToken checks a personal access token against GET /user and
// returns the token owner's profile on success. A non-2xx response means
// the token is invalid or expired.
func (c *Client) ValidateToken(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBase+"/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build user request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Authorization", "Bearer "+token)

	// Bypass the client-level token: the credential under test must be
	// the one presented, not the service's own.
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call github user API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newRemoteError(resp)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user response: %w", err)
	}
	return &user, nil
}
