package core

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/inovacc/gitai/internal/application"
	"github.com/inovacc/gitai/internal/model"
)

// EnvGitHubToken is consulted when no explicit token is supplied
const EnvGitHubToken = "GITHUB_TOKEN"

// TokenSource indicates where the token was found
type TokenSource string

const (
	TokenSourceFlag TokenSource = "flag"
	TokenSourceEnv  TokenSource = "GITHUB_TOKEN"
	TokenSourceNone TokenSource = "none"
)

// Session holds the authentication state for one process run. The token
// lives in memory only; persisting writes just the username and base URL.
type Session struct {
	Token      string
	Username   string
	APIBaseURL string
	ConfigPath string
}

// NewSession returns a Session with default base URL and config location
func NewSession() *Session {
	cfg := model.DefaultConfig()

	return &Session{
		APIBaseURL: cfg.APIBaseURL,
		ConfigPath: application.ConfigFilePath(),
	}
}

// Authenticated reports whether a token has been adopted
func (s *Session) Authenticated() bool {
	return s.Token != ""
}

// ResolveToken finds a GitHub token without touching the network.
// Priority order:
//  1. explicit value (from the --token flag)
//  2. GITHUB_TOKEN environment variable
//
// Returns a NoCredentialsError when neither yields a token.
func ResolveToken(explicit string) (string, TokenSource, error) {
	if explicit != "" {
		return explicit, TokenSourceFlag, nil
	}

	if token := os.Getenv(EnvGitHubToken); token != "" {
		return token, TokenSourceEnv, nil
	}

	return "", TokenSourceNone, &NoCredentialsError{}
}

// LoadPersisted restores the non-secret settings from the config file.
// A missing or malformed file is not an error: it is logged as a warning
// and the defaults stay in place.
func (s *Session) LoadPersisted(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(s.ConfigPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("could not load config",
				slog.String("path", s.ConfigPath),
				slog.String("error", err.Error()),
			)
		}

		return
	}

	var cfg model.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		logger.Warn("could not parse config, keeping defaults",
			slog.String("path", s.ConfigPath),
			slog.String("error", err.Error()),
		)

		return
	}

	if cfg.Username != "" {
		s.Username = cfg.Username
	}

	if cfg.APIBaseURL != "" {
		s.APIBaseURL = cfg.APIBaseURL
	}
}

// persist writes the non-secret session fields to the config file. The
// token is deliberately excluded. Write failures are warnings only and
// never affect the command outcome.
func (s *Session) persist(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	cfg := model.Config{
		Username:   s.Username,
		APIBaseURL: s.APIBaseURL,
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err == nil {
		err = os.WriteFile(s.ConfigPath, data, 0o600)
	}

	if err != nil {
		logger.Warn("could not save config",
			slog.String("path", s.ConfigPath),
			slog.String("error", err.Error()),
		)
	}
}

// Authenticate adopts the given token (falling back to the environment)
// and verifies it against the current-user endpoint. On success the login
// name is stored on the session and the non-secret settings are persisted.
func (s *Session) Authenticate(ctx context.Context, token string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	resolved, source, err := ResolveToken(token)
	if err != nil {
		return err
	}

	s.Token = resolved

	client, err := NewGitHubClient(ctx, s)
	if err != nil {
		return err
	}

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		s.Token = ""

		return classifyAPIError("authenticate", err)
	}

	s.Username = user.GetLogin()

	logger.Debug("authenticated",
		slog.String("username", s.Username),
		slog.String("token_source", string(source)),
	)

	s.persist(logger)

	return nil
}
