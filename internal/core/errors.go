package core

import (
	"errors"
	"fmt"

	"github.com/google/go-github/v82/github"
)

// NoCredentialsError indicates no token was available from any source
type NoCredentialsError struct{}

func (e *NoCredentialsError) Error() string {
	return "no GitHub token available (pass --token or set GITHUB_TOKEN)"
}

// InvalidPathError indicates a malformed owner/name argument. It is raised
// locally, before any request is issued.
type InvalidPathError struct {
	Input string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid repository path %q (expected owner/name)", e.Input)
}

// NotFoundError indicates the remote answered 404 for a repository
type NotFoundError struct {
	Owner string
	Repo  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("repository %s/%s not found", e.Owner, e.Repo)
}

// APIError carries a non-2xx status and the remote's message
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("GitHub API error: %d", e.Status)
	}

	return fmt.Sprintf("GitHub API error: %d - %s", e.Status, e.Body)
}

// TransportError wraps network-level failures (DNS, timeout, connection reset)
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// classifyAPIError converts go-github failures into the local taxonomy:
// any HTTP error response becomes an APIError carrying the status, anything
// else is a TransportError. 404-as-NotFoundError is decided by the caller,
// since only repository lookups distinguish it.
func classifyAPIError(operation string, err error) error {
	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return &APIError{Status: errResp.Response.StatusCode, Body: errResp.Message}
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return &APIError{Status: rateErr.Response.StatusCode, Body: rateErr.Message}
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return &APIError{Status: abuseErr.Response.StatusCode, Body: abuseErr.Message}
	}

	return &TransportError{Operation: operation, Err: err}
}
