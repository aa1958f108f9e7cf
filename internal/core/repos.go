package core

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/go-github/v82/github"
)

// Repository is a read-only projection of the remote repository record
type Repository struct {
	FullName      string    `json:"full_name"`
	Name          string    `json:"name"`
	Owner         string    `json:"owner"`
	Description   string    `json:"description,omitempty"`
	Private       bool      `json:"private"`
	Fork          bool      `json:"fork"`
	Stars         int       `json:"stars"`
	Forks         int       `json:"forks"`
	Watchers      int       `json:"watchers"`
	OpenIssues    int       `json:"open_issues"`
	Language      string    `json:"language,omitempty"`
	DefaultBranch string    `json:"default_branch,omitempty"`
	Homepage      string    `json:"homepage,omitempty"`
	URL           string    `json:"url"`
	CloneURL      string    `json:"clone_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ListReposOptions configures the repository listing
type ListReposOptions struct {
	IncludePrivate bool
	Logger         *slog.Logger
}

// reposPageSize is the page size used while walking the listing
const reposPageSize = 100

// ListUserRepos fetches the authenticated user's repositories, following
// page cursors until the first empty page. The remote's "updated desc"
// ordering is preserved across pages. On a failed page the repositories
// collected so far are returned together with the error, so callers can
// still render a partial listing.
func ListUserRepos(ctx context.Context, session *Session, opts ListReposOptions) ([]Repository, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if !session.Authenticated() {
		return nil, &NoCredentialsError{}
	}

	client, err := NewGitHubClient(ctx, session)
	if err != nil {
		return nil, err
	}

	visibility := "public"
	if opts.IncludePrivate {
		visibility = "all"
	}

	opt := &github.RepositoryListByAuthenticatedUserOptions{
		Visibility: visibility,
		Sort:       "updated",
		Direction:  "desc",
		ListOptions: github.ListOptions{
			Page:    1,
			PerPage: reposPageSize,
		},
	}

	var all []Repository

	for {
		repos, _, err := client.Repositories.ListByAuthenticatedUser(ctx, opt)
		if err != nil {
			// Abandon further pages, keep what was collected.
			return all, classifyAPIError("list repositories", err)
		}

		if len(repos) == 0 {
			break
		}

		for _, r := range repos {
			all = append(all, convertRepository(r))
		}

		logger.Debug("fetched repository page",
			slog.Int("page", opt.Page),
			slog.Int("count", len(repos)),
		)

		opt.Page++
	}

	return all, nil
}

// GetRepoInfo fetches a single repository. A 404 is reported as a
// NotFoundError, distinguishable from other API failures.
func GetRepoInfo(ctx context.Context, session *Session, owner, name string) (Repository, error) {
	client, err := NewGitHubClient(ctx, session)
	if err != nil {
		return Repository{}, err
	}

	repo, resp, err := client.Repositories.Get(ctx, owner, name)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return Repository{}, &NotFoundError{Owner: owner, Repo: name}
		}

		return Repository{}, classifyAPIError("get repository", err)
	}

	return convertRepository(repo), nil
}

// CreateRepoOptions configures repository creation
type CreateRepoOptions struct {
	Name        string
	Description string
	Private     bool
	Logger      *slog.Logger
}

// CreateRepository creates a repository for the authenticated user. The
// remote initializes it with a default branch and README.
func CreateRepository(ctx context.Context, session *Session, opts CreateRepoOptions) (Repository, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if !session.Authenticated() {
		return Repository{}, &NoCredentialsError{}
	}

	if opts.Name == "" {
		return Repository{}, fmt.Errorf("repository name is required")
	}

	client, err := NewGitHubClient(ctx, session)
	if err != nil {
		return Repository{}, err
	}

	req := &github.Repository{
		Name:        github.Ptr(opts.Name),
		Description: github.Ptr(opts.Description),
		Private:     github.Ptr(opts.Private),
		AutoInit:    github.Ptr(true),
	}

	logger.Debug("creating repository",
		slog.String("name", opts.Name),
		slog.Bool("private", opts.Private),
	)

	repo, _, err := client.Repositories.Create(ctx, "", req)
	if err != nil {
		return Repository{}, classifyAPIError("create repository", err)
	}

	return convertRepository(repo), nil
}

// convertRepository maps the go-github record to the local value object
func convertRepository(r *github.Repository) Repository {
	return Repository{
		FullName:      r.GetFullName(),
		Name:          r.GetName(),
		Owner:         r.GetOwner().GetLogin(),
		Description:   r.GetDescription(),
		Private:       r.GetPrivate(),
		Fork:          r.GetFork(),
		Stars:         r.GetStargazersCount(),
		Forks:         r.GetForksCount(),
		Watchers:      r.GetWatchersCount(),
		OpenIssues:    r.GetOpenIssuesCount(),
		Language:      r.GetLanguage(),
		DefaultBranch: r.GetDefaultBranch(),
		Homepage:      r.GetHomepage(),
		URL:           r.GetHTMLURL(),
		CloneURL:      r.GetCloneURL(),
		CreatedAt:     r.GetCreatedAt().Time,
		UpdatedAt:     r.GetUpdatedAt().Time,
	}
}
