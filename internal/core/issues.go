package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/go-github/v82/github"
)

// Issue represents a GitHub issue with essential fields
type Issue struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	State     string    `json:"state"`
	Body      string    `json:"body,omitempty"`
	Labels    []string  `json:"labels,omitempty"`
	Author    string    `json:"author"`
	Comments  int       `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	URL       string    `json:"url"`
}

// IssuesData contains a repository's issue listing with summary counts
type IssuesData struct {
	Repository  string    `json:"repository"`
	FetchedAt   time.Time `json:"fetched_at"`
	TotalCount  int       `json:"total_count"`
	OpenCount   int       `json:"open_count"`
	ClosedCount int       `json:"closed_count"`
	Issues      []Issue   `json:"issues"`
}

// ListIssuesOptions configures the issue listing
type ListIssuesOptions struct {
	// State filters issues: open, closed, all (default: open)
	State string

	Logger *slog.Logger
}

var validIssueStates = map[string]bool{
	"open":   true,
	"closed": true,
	"all":    true,
}

// ListIssues returns a repository's issues, remote-sorted by last update,
// newest first. Only the first page is fetched. Pull requests, which the
// issues endpoint also returns, are filtered out.
func ListIssues(ctx context.Context, session *Session, owner, name string, opts ListIssuesOptions) (*IssuesData, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	state := opts.State
	if state == "" {
		state = "open"
	}

	if !validIssueStates[state] {
		return nil, fmt.Errorf("invalid issue state %q (expected open, closed, or all)", state)
	}

	client, err := NewGitHubClient(ctx, session)
	if err != nil {
		return nil, err
	}

	opt := &github.IssueListByRepoOptions{
		State:     state,
		Sort:      "updated",
		Direction: "desc",
	}

	logger.Debug("listing issues",
		slog.String("repo", RepoFullName(owner, name)),
		slog.String("state", state),
	)

	ghIssues, _, err := client.Issues.ListByRepo(ctx, owner, name, opt)
	if err != nil {
		return nil, classifyAPIError("list issues", err)
	}

	issues := make([]*github.Issue, 0, len(ghIssues))

	for _, issue := range ghIssues {
		if issue.IsPullRequest() {
			continue
		}

		issues = append(issues, issue)
	}

	return convertIssues(RepoFullName(owner, name), issues), nil
}

// CreateIssueOptions configures issue creation
type CreateIssueOptions struct {
	Title  string
	Body   string
	Labels []string
	Logger *slog.Logger
}

// CreatedIssue represents the result of creating an issue
type CreatedIssue struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateIssue creates a new issue in the specified repository
func CreateIssue(ctx context.Context, session *Session, owner, name string, opts CreateIssueOptions) (*CreatedIssue, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if !session.Authenticated() {
		return nil, &NoCredentialsError{}
	}

	if opts.Title == "" {
		return nil, fmt.Errorf("issue title is required")
	}

	client, err := NewGitHubClient(ctx, session)
	if err != nil {
		return nil, err
	}

	req := &github.IssueRequest{
		Title: github.Ptr(opts.Title),
	}

	if opts.Body != "" {
		req.Body = github.Ptr(opts.Body)
	}

	if len(opts.Labels) > 0 {
		req.Labels = &opts.Labels
	}

	logger.Debug("creating issue",
		slog.String("repo", RepoFullName(owner, name)),
		slog.String("title", opts.Title),
	)

	issue, _, err := client.Issues.Create(ctx, owner, name, req)
	if err != nil {
		return nil, classifyAPIError("create issue", err)
	}

	return &CreatedIssue{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		URL:       issue.GetHTMLURL(),
		State:     issue.GetState(),
		CreatedAt: issue.GetCreatedAt().Time,
	}, nil
}

// convertIssues maps go-github issues to the local value objects
func convertIssues(repoName string, ghIssues []*github.Issue) *IssuesData {
	issues := make([]Issue, 0, len(ghIssues))
	openCount := 0
	closedCount := 0

	for _, gi := range ghIssues {
		issue := Issue{
			Number:    gi.GetNumber(),
			Title:     gi.GetTitle(),
			State:     gi.GetState(),
			Body:      gi.GetBody(),
			Author:    gi.GetUser().GetLogin(),
			Comments:  gi.GetComments(),
			CreatedAt: gi.GetCreatedAt().Time,
			UpdatedAt: gi.GetUpdatedAt().Time,
			URL:       gi.GetHTMLURL(),
		}

		for _, label := range gi.Labels {
			issue.Labels = append(issue.Labels, label.GetName())
		}

		issues = append(issues, issue)

		if gi.GetState() == "open" {
			openCount++
		} else {
			closedCount++
		}
	}

	return &IssuesData{
		Repository:  repoName,
		FetchedAt:   time.Now(),
		TotalCount:  len(issues),
		OpenCount:   openCount,
		ClosedCount: closedCount,
		Issues:      issues,
	}
}
