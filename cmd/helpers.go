package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/inovacc/gitai/internal/core"
)

const (
	// commandTimeout bounds a single API call
	commandTimeout = 30 * time.Second

	// listTimeout covers the paginated repository listing
	listTimeout = 2 * time.Minute
)

// addCommonFlags adds flags shared by the resource subcommands
func addCommonFlags(flags *pflag.FlagSet) {
	flags.String("token", "", "GitHub token (default: GITHUB_TOKEN)")
	flags.String("repo", "", "Repository (owner/name)")
	flags.Bool("json", false, "Output as JSON")
}

// commonFlags holds flags shared by the resource subcommands
type commonFlags struct {
	Token string
	Repo  string
	JSON  bool
}

// extractCommonFlags extracts the shared flags from a cobra command
func extractCommonFlags(cmd *cobra.Command) commonFlags {
	token, _ := cmd.Flags().GetString("token")
	repo, _ := cmd.Flags().GetString("repo")
	jsonOut, _ := cmd.Flags().GetBool("json")

	return commonFlags{
		Token: token,
		Repo:  repo,
		JSON:  jsonOut,
	}
}

// outputJSON encodes data as indented JSON to stdout
func outputJSON(data any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(data)
}

// newLogger creates a logger for command handlers.
// Uses a JSON handler when JSON output is enabled, text otherwise.
func newLogger(jsonOutput bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if jsonOutput {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// newSession builds the per-command session: defaults, persisted metadata,
// and whatever token is available. A missing token is not an error here;
// operations that need one fail with a NoCredentialsError.
func newSession(tokenFlag string, logger *slog.Logger) *core.Session {
	session := core.NewSession()
	session.LoadPersisted(logger)

	if token, _, err := core.ResolveToken(tokenFlag); err == nil {
		session.Token = token
	}

	return session
}

// reportError renders a command failure to the console without failing
// the process
func reportError(message string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "❌ %s: %v\n", message, err)
}

// resolveRepoArg picks owner/name from the positional argument, the --repo
// flag, or the current directory's origin remote
func resolveRepoArg(args []string, repoFlag, usageHint string) (owner, name string, err error) {
	var repoArg string
	if len(args) > 0 {
		repoArg = args[0]
	}

	owner, name, err = core.DetectRepository(repoArg, repoFlag)
	if err != nil {
		return "", "", fmt.Errorf("could not determine repository: %w\n\n%s", err, usageHint)
	}

	return owner, name, nil
}

// truncate shortens s to at most max runes, appending an ellipsis
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max-1]) + "…"
}

// formatAge formats a time as a human-readable age string
func formatAge(t time.Time) string {
	d := time.Since(t)

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		mins := int(d.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}

		return fmt.Sprintf("%d minutes ago", mins)
	case d < 24*time.Hour:
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour ago"
		}

		return fmt.Sprintf("%d hours ago", hours)
	case d < 30*24*time.Hour:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}

		return fmt.Sprintf("%d days ago", days)
	case d < 365*24*time.Hour:
		months := int(d.Hours() / 24 / 30)
		if months == 1 {
			return "1 month ago"
		}

		return fmt.Sprintf("%d months ago", months)
	default:
		years := int(d.Hours() / 24 / 365)
		if years == 1 {
			return "1 year ago"
		}

		return fmt.Sprintf("%d years ago", years)
	}
}
