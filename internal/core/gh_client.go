package core

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v82/github"
	"golang.org/x/oauth2"

	"github.com/inovacc/gitai/internal/application"
	"github.com/inovacc/gitai/internal/model"
)

// NewGitHubClient creates a GitHub API client bound to the session's base
// URL and token. An empty token yields an unauthenticated client, which the
// remote rate-limits at a much lower ceiling.
func NewGitHubClient(ctx context.Context, session *Session) (*github.Client, error) {
	var httpClient *http.Client

	if session.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: session.Token})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(httpClient)
	client.UserAgent = application.UserAgent

	if session.APIBaseURL != "" && session.APIBaseURL != model.DefaultAPIBaseURL {
		base := session.APIBaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}

		parsed, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("invalid API base URL %q: %w", session.APIBaseURL, err)
		}

		client.BaseURL = parsed
	}

	return client, nil
}
