package github

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// RemoteError is a non-success response from the GitHub API.
// Callers must not assume any retry happened underneath.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("github API error %d: %s", e.StatusCode, e.Message)
}

// AsRemoteError unwraps err into a *RemoteError when possible.
func AsRemoteError(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// newRemoteError reads the response body and extracts the API's
// "message" field when the body is the standard GitHub error JSON.
func newRemoteError(resp *http.Response) *RemoteError {
	raw, _ := io.ReadAll(resp.Body)

	var apiErr struct {
		Message string `json:"message"`
	}
	msg := string(raw)
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
		msg = apiErr.Message
	}

	return &RemoteError{StatusCode: resp.StatusCode, Message: msg}
}
