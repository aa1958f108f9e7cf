package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inovacc/gitai/internal/core"
)

var commitsCmd = &cobra.Command{
	Use:   "commits [owner/name] [branch]",
	Short: "List recent commits",
	Long: `List the most recent commits of a branch, newest first.

The repository is auto-detected from the current directory when no
owner/name argument is given; the branch defaults to main.

Examples:
  gitai commits golang/go
  gitai commits golang/go release-branch.go1.24
  gitai commits --limit 5     # Inside a checkout`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCommits,
}

func init() {
	rootCmd.AddCommand(commitsCmd)

	addCommonFlags(commitsCmd.Flags())

	commitsCmd.Flags().Int("limit", 10, "Number of commits to show")
}

func runCommits(cmd *cobra.Command, args []string) error {
	flags := extractCommonFlags(cmd)
	limit, _ := cmd.Flags().GetInt("limit")

	// The repository argument carries a slash; a bare argument is a branch.
	var repoArgs []string

	var branch string

	for _, arg := range args {
		if strings.Contains(arg, "/") && len(repoArgs) == 0 {
			repoArgs = append(repoArgs, arg)

			continue
		}

		if branch == "" {
			branch = arg
		}
	}

	owner, name, err := resolveRepoArg(repoArgs, flags.Repo,
		"Specify a repository with: gitai commits owner/name [branch]")
	if err != nil {
		reportError("Invalid repository", err)

		return nil
	}

	logger := newLogger(flags.JSON)
	session := newSession(flags.Token, logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	commits, err := core.ListCommits(ctx, session, owner, name, core.ListCommitsOptions{
		Branch: branch,
		Limit:  limit,
		Logger: logger,
	})
	if err != nil {
		reportError("Failed to fetch commits", err)

		return nil
	}

	if flags.JSON {
		return outputJSON(commits)
	}

	if branch == "" {
		branch = "main"
	}

	if len(commits) == 0 {
		_, _ = fmt.Fprintf(os.Stdout, "No commits found on %s.\n", branch)

		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "📝 Recent commits for %s (%s branch):\n\n",
		core.RepoFullName(owner, name), branch)

	for _, commit := range commits {
		sha := commit.SHA
		if len(sha) > 8 {
			sha = sha[:8]
		}

		subject, _, _ := strings.Cut(commit.Message, "\n")

		_, _ = fmt.Fprintf(os.Stdout, "  🔸 %s - %s\n", sha, subject)
		_, _ = fmt.Fprintf(os.Stdout, "     👤 %s on %s\n\n",
			commit.Author, commit.Date.Format("2006-01-02"))
	}

	return nil
}
