package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inovacc/gitai/internal/core"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List your repositories",
	Long: `List the authenticated user's repositories, ordered by last
update. All pages are fetched.

Examples:
  gitai repos                  # All repositories, private included
  gitai repos --public-only    # Public repositories only
  gitai repos --json           # Machine-readable output`,
	RunE: runRepos,
}

func init() {
	rootCmd.AddCommand(reposCmd)

	reposCmd.Flags().String("token", "", "GitHub token (default: GITHUB_TOKEN)")
	reposCmd.Flags().Bool("public-only", false, "Show only public repositories")
	reposCmd.Flags().Bool("json", false, "Output as JSON")
}

func runRepos(cmd *cobra.Command, args []string) error {
	tokenFlag, _ := cmd.Flags().GetString("token")
	publicOnly, _ := cmd.Flags().GetBool("public-only")
	jsonOut, _ := cmd.Flags().GetBool("json")

	logger := newLogger(jsonOut)
	session := newSession(tokenFlag, logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), listTimeout)
	defer cancel()

	if !jsonOut {
		_, _ = fmt.Fprintln(os.Stderr, "Fetching repositories...")
	}

	repos, err := core.ListUserRepos(ctx, session, core.ListReposOptions{
		IncludePrivate: !publicOnly,
		Logger:         logger,
	})
	if err != nil {
		reportError("Failed to fetch repositories", err)

		if len(repos) == 0 {
			return nil
		}

		// Render the pages that did arrive.
	}

	if jsonOut {
		return outputJSON(repos)
	}

	if len(repos) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No repositories found.")

		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "📁 Your GitHub repositories (%d):\n\n", len(repos))

	for _, repo := range repos {
		visibility := "🌐 Public"
		if repo.Private {
			visibility = "🔒 Private"
		}

		_, _ = fmt.Fprintf(os.Stdout, "  📂 %s\n", repo.FullName)
		_, _ = fmt.Fprintf(os.Stdout, "     %s | ⭐ %d stars | Updated: %s\n",
			visibility, repo.Stars, repo.UpdatedAt.Format("2006-01-02"))

		if repo.Description != "" {
			_, _ = fmt.Fprintf(os.Stdout, "     📝 %s\n", truncate(repo.Description, 100))
		}

		_, _ = fmt.Fprintf(os.Stdout, "     🔗 %s\n\n", repo.URL)
	}

	return nil
}
