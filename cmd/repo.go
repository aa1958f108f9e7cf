package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inovacc/gitai/internal/core"
)

var repoCmd = &cobra.Command{
	Use:   "repo <owner/name>",
	Short: "Show repository details",
	Long: `Show detailed information about a repository.

Examples:
  gitai repo golang/go
  gitai repo golang/go --json`,
	Args: cobra.ExactArgs(1),
	RunE: runRepo,
}

func init() {
	rootCmd.AddCommand(repoCmd)

	repoCmd.Flags().String("token", "", "GitHub token (default: GITHUB_TOKEN)")
	repoCmd.Flags().Bool("json", false, "Output as JSON")
}

func runRepo(cmd *cobra.Command, args []string) error {
	tokenFlag, _ := cmd.Flags().GetString("token")
	jsonOut, _ := cmd.Flags().GetBool("json")

	owner, name, err := core.ParseRepoPath(args[0])
	if err != nil {
		reportError("Invalid repository", err)

		return nil
	}

	logger := newLogger(jsonOut)
	session := newSession(tokenFlag, logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	repo, err := core.GetRepoInfo(ctx, session, owner, name)
	if err != nil {
		var notFound *core.NotFoundError
		if errors.As(err, &notFound) {
			reportError("Repository not found", err)
		} else {
			reportError("Failed to fetch repository info", err)
		}

		return nil
	}

	if jsonOut {
		return outputJSON(repo)
	}

	_, _ = fmt.Fprintf(os.Stdout, "📂 Repository: %s\n", repo.FullName)

	description := repo.Description
	if description == "" {
		description = "No description"
	}

	_, _ = fmt.Fprintf(os.Stdout, "📝 Description: %s\n", description)

	visibility := "Public"
	if repo.Private {
		visibility = "Private"
	}

	_, _ = fmt.Fprintf(os.Stdout, "🌐 Visibility: %s\n", visibility)
	_, _ = fmt.Fprintf(os.Stdout, "⭐ Stars: %d\n", repo.Stars)
	_, _ = fmt.Fprintf(os.Stdout, "🍴 Forks: %d\n", repo.Forks)
	_, _ = fmt.Fprintf(os.Stdout, "👁️  Watchers: %d\n", repo.Watchers)
	_, _ = fmt.Fprintf(os.Stdout, "🐛 Open Issues: %d\n", repo.OpenIssues)
	_, _ = fmt.Fprintf(os.Stdout, "📅 Created: %s\n", repo.CreatedAt.Format("2006-01-02"))
	_, _ = fmt.Fprintf(os.Stdout, "🔄 Updated: %s\n", repo.UpdatedAt.Format("2006-01-02"))

	language := repo.Language
	if language == "" {
		language = "Not specified"
	}

	_, _ = fmt.Fprintf(os.Stdout, "💻 Language: %s\n", language)
	_, _ = fmt.Fprintf(os.Stdout, "🔗 URL: %s\n", repo.URL)

	if repo.Homepage != "" {
		_, _ = fmt.Fprintf(os.Stdout, "🏠 Homepage: %s\n", repo.Homepage)
	}

	return nil
}
