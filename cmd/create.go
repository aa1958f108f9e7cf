package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inovacc/gitai/internal/core"
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new repository",
	Long: `Create a new repository for the authenticated user. The remote
initializes it with a default branch and README.

Examples:
  gitai create my-project
  gitai create my-project --description "Experiments" --private`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().String("token", "", "GitHub token (default: GITHUB_TOKEN)")
	createCmd.Flags().String("description", "", "Repository description")
	createCmd.Flags().Bool("private", false, "Make repository private")
	createCmd.Flags().Bool("json", false, "Output as JSON")
}

func runCreate(cmd *cobra.Command, args []string) error {
	tokenFlag, _ := cmd.Flags().GetString("token")
	description, _ := cmd.Flags().GetString("description")
	private, _ := cmd.Flags().GetBool("private")
	jsonOut, _ := cmd.Flags().GetBool("json")

	logger := newLogger(jsonOut)
	session := newSession(tokenFlag, logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	repo, err := core.CreateRepository(ctx, session, core.CreateRepoOptions{
		Name:        args[0],
		Description: description,
		Private:     private,
		Logger:      logger,
	})
	if err != nil {
		reportError("Failed to create repository", err)

		return nil
	}

	if jsonOut {
		return outputJSON(repo)
	}

	_, _ = fmt.Fprintln(os.Stdout, "🎉 Repository created successfully!")
	_, _ = fmt.Fprintf(os.Stdout, "🔗 URL: %s\n", repo.URL)
	_, _ = fmt.Fprintf(os.Stdout, "📋 Clone URL: %s\n", repo.CloneURL)

	return nil
}
