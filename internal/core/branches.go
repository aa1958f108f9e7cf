package core

import (
	"context"

	"github.com/google/go-github/v82/github"
)

// Branch is a read-only projection of a remote branch record
type Branch struct {
	Name      string `json:"name"`
	SHA       string `json:"sha"`
	Protected bool   `json:"protected"`
}

// ListBranches returns the branches of a repository. Only the first page
// is fetched; repositories with more branches than one page holds are
// truncated.
func ListBranches(ctx context.Context, session *Session, owner, name string) ([]Branch, error) {
	client, err := NewGitHubClient(ctx, session)
	if err != nil {
		return nil, err
	}

	ghBranches, _, err := client.Repositories.ListBranches(ctx, owner, name, &github.BranchListOptions{})
	if err != nil {
		return nil, classifyAPIError("list branches", err)
	}

	branches := make([]Branch, 0, len(ghBranches))

	for _, b := range ghBranches {
		branches = append(branches, Branch{
			Name:      b.GetName(),
			SHA:       b.GetCommit().GetSHA(),
			Protected: b.GetProtected(),
		})
	}

	return branches, nil
}
