package core

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cli/oauth"
	"github.com/google/go-github/v82/github"
)

// deviceFlowScopes are requested during the browser device flow
var deviceFlowScopes = []string{"repo"}

// DeviceFlowResult contains the outcome of a completed device flow
type DeviceFlowResult struct {
	Token    string
	Username string
}

// RunDeviceFlow executes the OAuth device flow against github.com and
// verifies the resulting token. displayCode, when set, is called with the
// one-time code and verification URL the user must visit.
func RunDeviceFlow(ctx context.Context, displayCode func(code, verificationURL string)) (*DeviceFlowResult, error) {
	host, err := oauth.NewGitHubHost("https://github.com")
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub host: %w", err)
	}

	flow := &oauth.Flow{
		Host:   host,
		Scopes: deviceFlowScopes,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	if displayCode != nil {
		flow.DisplayCode = func(code, verificationURL string) error {
			displayCode(code, verificationURL)

			return nil
		}
	}

	accessToken, err := flow.DetectFlow()
	if err != nil {
		return nil, fmt.Errorf("OAuth flow failed: %w", err)
	}

	client := github.NewClient(nil).WithAuthToken(accessToken.Token)

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, classifyAPIError("verify token", err)
	}

	return &DeviceFlowResult{
		Token:    accessToken.Token,
		Username: user.GetLogin(),
	}, nil
}

// ValidateToken checks whether the session's token is still accepted.
// A 401 is reported as invalid without error; other failures propagate.
func ValidateToken(ctx context.Context, session *Session) (bool, string, error) {
	client, err := NewGitHubClient(ctx, session)
	if err != nil {
		return false, "", err
	}

	user, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return false, "", nil
		}

		return false, "", classifyAPIError("validate token", err)
	}

	return true, user.GetLogin(), nil
}
