package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inovacc/gitai/internal/core"
)

// deviceFlowTimeout leaves the user enough time to authorize in the browser
const deviceFlowTimeout = 5 * time.Minute

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate with GitHub",
	Long: `Authenticate with a GitHub personal access token.

Token sources, in priority order:
  1. --token flag
  2. GITHUB_TOKEN environment variable
  3. Interactive prompt (terminal only)

Use --web to authorize through the browser device flow instead.

The token is verified against the current-user endpoint and kept in
memory only; the config file stores just your username and the API
base URL.

Examples:
  gitai auth --token ghp_xxxx
  GITHUB_TOKEN=ghp_xxxx gitai auth
  gitai auth --web`,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)

	authCmd.Flags().String("token", "", "GitHub personal access token")
	authCmd.Flags().Bool("web", false, "Authenticate with the browser device flow")
}

// runAuth is the one handler whose failure exits non-zero: no later
// command can succeed without credentials.
func runAuth(cmd *cobra.Command, args []string) error {
	tokenFlag, _ := cmd.Flags().GetString("token")
	web, _ := cmd.Flags().GetBool("web")

	logger := newLogger(false)

	session := core.NewSession()
	session.LoadPersisted(logger)

	timeout := commandTimeout
	if web {
		timeout = deviceFlowTimeout
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	if web {
		result, err := core.RunDeviceFlow(ctx, func(code, verificationURL string) {
			_, _ = fmt.Fprintf(os.Stderr, "First copy your one-time code: %s\n", code)
			_, _ = fmt.Fprintf(os.Stderr, "Then open %s to authorize\n", verificationURL)
		})
		if err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}

		tokenFlag = result.Token
	}

	token, _, err := core.ResolveToken(tokenFlag)
	if err != nil {
		var noCreds *core.NoCredentialsError
		if !errors.As(err, &noCreds) {
			return err
		}

		token, err = promptToken()
		if err != nil {
			return &core.NoCredentialsError{}
		}
	}

	if err := session.Authenticate(ctx, token, logger); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "✅ Successfully authenticated as %s\n", session.Username)
	_, _ = fmt.Fprintln(os.Stdout, "🎉 You can now use all gitai commands.")

	return nil
}

// promptToken reads a token from the terminal without echoing it. Outside
// a terminal there is nothing to prompt, so the caller falls back to the
// no-credentials failure.
func promptToken() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal")
	}

	_, _ = fmt.Fprint(os.Stderr, "Enter your GitHub Personal Access Token: ")

	raw, err := term.ReadPassword(fd)

	_, _ = fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", err
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", fmt.Errorf("empty token")
	}

	return token, nil
}
