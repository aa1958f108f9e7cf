package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inovacc/gitai/internal/core"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	Long: `Show the current session: the persisted username, the API base
URL, and whether the available token is still accepted by GitHub.

Examples:
  gitai status
  gitai status --json`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().String("token", "", "GitHub token (default: GITHUB_TOKEN)")
	statusCmd.Flags().Bool("json", false, "Output as JSON")
}

// sessionStatus is the machine-readable status report
type sessionStatus struct {
	Username   string `json:"username,omitempty"`
	APIBaseURL string `json:"api_base_url"`
	HasToken   bool   `json:"has_token"`
	TokenValid bool   `json:"token_valid"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	tokenFlag, _ := cmd.Flags().GetString("token")
	jsonOut, _ := cmd.Flags().GetBool("json")

	logger := newLogger(jsonOut)
	session := newSession(tokenFlag, logger)

	status := sessionStatus{
		Username:   session.Username,
		APIBaseURL: session.APIBaseURL,
		HasToken:   session.Authenticated(),
	}

	if session.Authenticated() {
		ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
		defer cancel()

		valid, login, err := core.ValidateToken(ctx, session)
		if err != nil {
			reportError("Could not verify token", err)
		} else {
			status.TokenValid = valid

			if login != "" {
				status.Username = login
			}
		}
	}

	if jsonOut {
		return outputJSON(status)
	}

	if !status.HasToken {
		_, _ = fmt.Fprintln(os.Stdout, "🔸 Not authenticated (pass --token, set GITHUB_TOKEN, or run: gitai auth)")

		if status.Username != "" {
			_, _ = fmt.Fprintf(os.Stdout, "   Last authenticated as: %s\n", status.Username)
		}

		return nil
	}

	if status.TokenValid {
		_, _ = fmt.Fprintf(os.Stdout, "✅ Token valid for %s\n", status.Username)
	} else {
		_, _ = fmt.Fprintln(os.Stdout, "❌ Token is no longer valid, run: gitai auth")
	}

	_, _ = fmt.Fprintf(os.Stdout, "🌐 API: %s\n", status.APIBaseURL)

	return nil
}
