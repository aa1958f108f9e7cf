package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inovacc/gitai/internal/core"
)

var issuesCmd = &cobra.Command{
	Use:   "issues [owner/name]",
	Short: "List repository issues",
	Long: `List the issues of a repository, sorted by last update.

By default open issues are listed; use --state to change that. The
repository is auto-detected from the current directory when no
argument is given.

Examples:
  gitai issues golang/go
  gitai issues golang/go --state closed
  gitai issues --state all     # Inside a checkout`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIssues,
}

var createIssueCmd = &cobra.Command{
	Use:   "create-issue <owner/name> <title> [body]",
	Short: "Create a new issue",
	Long: `Create a new issue in a repository.

Examples:
  gitai create-issue me/project "Bug report"
  gitai create-issue me/project "Bug report" "Steps to reproduce..."
  gitai create-issue me/project "Bug report" --labels bug,urgent`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runCreateIssue,
}

func init() {
	rootCmd.AddCommand(issuesCmd)
	rootCmd.AddCommand(createIssueCmd)

	addCommonFlags(issuesCmd.Flags())
	issuesCmd.Flags().String("state", "open", "Issue state: open, closed, all")

	createIssueCmd.Flags().String("token", "", "GitHub token (default: GITHUB_TOKEN)")
	createIssueCmd.Flags().StringSlice("labels", nil, "Labels to add (comma-separated)")
	createIssueCmd.Flags().Bool("json", false, "Output as JSON")
}

func runIssues(cmd *cobra.Command, args []string) error {
	flags := extractCommonFlags(cmd)
	state, _ := cmd.Flags().GetString("state")

	owner, name, err := resolveRepoArg(args, flags.Repo,
		"Specify a repository with: gitai issues owner/name")
	if err != nil {
		reportError("Invalid repository", err)

		return nil
	}

	logger := newLogger(flags.JSON)
	session := newSession(flags.Token, logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	issues, err := core.ListIssues(ctx, session, owner, name, core.ListIssuesOptions{
		State:  state,
		Logger: logger,
	})
	if err != nil {
		reportError("Failed to fetch issues", err)

		return nil
	}

	if flags.JSON {
		return outputJSON(issues)
	}

	if issues.TotalCount == 0 {
		_, _ = fmt.Fprintf(os.Stdout, "No %s issues found.\n", state)

		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "🐛 Issues for %s (%d total, %d open, %d closed):\n\n",
		issues.Repository, issues.TotalCount, issues.OpenCount, issues.ClosedCount)

	for _, issue := range issues.Issues {
		stateIcon := "🟢"
		if issue.State == "closed" {
			stateIcon = "🟣"
		}

		labels := "No labels"
		if len(issue.Labels) > 0 {
			labels = strings.Join(issue.Labels, ", ")
		}

		_, _ = fmt.Fprintf(os.Stdout, "  %s #%d - %s\n", stateIcon, issue.Number, issue.Title)
		_, _ = fmt.Fprintf(os.Stdout, "     👤 %s | 📅 opened %s | 🏷️  %s\n",
			issue.Author, formatAge(issue.CreatedAt), labels)
		_, _ = fmt.Fprintf(os.Stdout, "     🔗 %s\n\n", issue.URL)
	}

	return nil
}

func runCreateIssue(cmd *cobra.Command, args []string) error {
	tokenFlag, _ := cmd.Flags().GetString("token")
	labels, _ := cmd.Flags().GetStringSlice("labels")
	jsonOut, _ := cmd.Flags().GetBool("json")

	owner, name, err := core.ParseRepoPath(args[0])
	if err != nil {
		reportError("Invalid repository", err)

		return nil
	}

	title := args[1]

	var body string
	if len(args) > 2 {
		body = args[2]
	}

	logger := newLogger(jsonOut)
	session := newSession(tokenFlag, logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	created, err := core.CreateIssue(ctx, session, owner, name, core.CreateIssueOptions{
		Title:  title,
		Body:   body,
		Labels: labels,
		Logger: logger,
	})
	if err != nil {
		reportError("Failed to create issue", err)

		return nil
	}

	if jsonOut {
		return outputJSON(created)
	}

	_, _ = fmt.Fprintln(os.Stdout, "🎉 Issue created successfully!")
	_, _ = fmt.Fprintf(os.Stdout, "✅ #%d: %s\n", created.Number, created.Title)
	_, _ = fmt.Fprintf(os.Stdout, "🔗 URL: %s\n", created.URL)

	return nil
}
