package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inovacc/gitai/internal/core"
)

var branchesCmd = &cobra.Command{
	Use:   "branches [owner/name]",
	Short: "List repository branches",
	Long: `List the branches of a repository.

The repository is auto-detected from the current directory when no
argument is given.

Examples:
  gitai branches golang/go
  gitai branches               # Inside a checkout
  gitai branches --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBranches,
}

func init() {
	rootCmd.AddCommand(branchesCmd)

	addCommonFlags(branchesCmd.Flags())
}

func runBranches(cmd *cobra.Command, args []string) error {
	flags := extractCommonFlags(cmd)

	owner, name, err := resolveRepoArg(args, flags.Repo,
		"Specify a repository with: gitai branches owner/name")
	if err != nil {
		reportError("Invalid repository", err)

		return nil
	}

	logger := newLogger(flags.JSON)
	session := newSession(flags.Token, logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	branches, err := core.ListBranches(ctx, session, owner, name)
	if err != nil {
		reportError("Failed to fetch branches", err)

		return nil
	}

	if flags.JSON {
		return outputJSON(branches)
	}

	if len(branches) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No branches found.")

		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "🌿 Branches for %s:\n\n", core.RepoFullName(owner, name))

	for _, branch := range branches {
		icon := "🌿"
		if branch.Protected {
			icon = "🔒"
		}

		_, _ = fmt.Fprintf(os.Stdout, "  %s %s\n", icon, branch.Name)

		if len(branch.SHA) >= 8 {
			_, _ = fmt.Fprintf(os.Stdout, "     📝 Latest commit: %s\n", branch.SHA[:8])
		}

		_, _ = fmt.Fprintln(os.Stdout)
	}

	return nil
}
