package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inovacc/gitai/internal/application"
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A GitHub automation CLI",
	Long: `Gitai is a command-line wrapper around the GitHub REST API.
It authenticates with a personal access token and lists or creates
repositories, branches, commits, and issues.

Authentication:
  Uses a GitHub token from (in priority order):
  1. --token flag
  2. GITHUB_TOKEN environment variable
  3. Interactive prompt (gitai auth, terminal only)`,
	Version:       application.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Only authentication failures exit non-zero;
// resource command failures are reported inside their handlers and the
// process still exits 0.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}
