package core

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/go-github/v82/github"
)

// Commit is a read-only projection of a remote commit record
type Commit struct {
	SHA     string    `json:"sha"`
	Message string    `json:"message"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
	URL     string    `json:"url"`
}

// ListCommitsOptions configures the commit listing
type ListCommitsOptions struct {
	// Branch selects the ref to walk (default: main)
	Branch string

	// Limit caps the number of commits in the single request (default: 10)
	Limit int

	Logger *slog.Logger
}

const (
	defaultCommitBranch = "main"
	defaultCommitLimit  = 10
)

// ListCommits returns the most recent commits of a branch, newest first.
// One request is issued with per_page set to the limit.
func ListCommits(ctx context.Context, session *Session, owner, name string, opts ListCommitsOptions) ([]Commit, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	branch := opts.Branch
	if branch == "" {
		branch = defaultCommitBranch
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultCommitLimit
	}

	client, err := NewGitHubClient(ctx, session)
	if err != nil {
		return nil, err
	}

	opt := &github.CommitsListOptions{
		SHA: branch,
		ListOptions: github.ListOptions{
			PerPage: limit,
		},
	}

	logger.Debug("listing commits",
		slog.String("repo", RepoFullName(owner, name)),
		slog.String("branch", branch),
		slog.Int("limit", limit),
	)

	ghCommits, _, err := client.Repositories.ListCommits(ctx, owner, name, opt)
	if err != nil {
		return nil, classifyAPIError("list commits", err)
	}

	commits := make([]Commit, 0, len(ghCommits))

	for _, c := range ghCommits {
		commits = append(commits, Commit{
			SHA:     c.GetSHA(),
			Message: c.GetCommit().GetMessage(),
			Author:  c.GetCommit().GetAuthor().GetName(),
			Date:    c.GetCommit().GetAuthor().GetDate().Time,
			URL:     c.GetHTMLURL(),
		})
	}

	return commits, nil
}
