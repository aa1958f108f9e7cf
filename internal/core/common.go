package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// ParseRepoPath splits an "owner/name" token. Malformed input (no slash,
// extra slashes, empty halves) is rejected locally with an InvalidPathError
// and never reaches the network.
func ParseRepoPath(input string) (owner, name string, err error) {
	parts := strings.Split(strings.TrimSpace(input), "/")
	if len(parts) != 2 {
		return "", "", &InvalidPathError{Input: input}
	}

	owner = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if owner == "" || name == "" {
		return "", "", &InvalidPathError{Input: input}
	}

	return owner, name, nil
}

// DetectRepository resolves the target repository.
// Priority:
//  1. Explicit argument (owner/name format)
//  2. --repo flag value
//  3. Current directory's git config (remote origin)
func DetectRepository(arg, repoFlag string) (owner, name string, err error) {
	if arg != "" {
		return ParseRepoPath(arg)
	}

	if repoFlag != "" {
		return ParseRepoPath(repoFlag)
	}

	return detectFromCurrentDir()
}

// detectFromCurrentDir reads .git/config in the working directory and
// extracts owner/name from the origin remote
func detectFromCurrentDir() (owner, name string, err error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", "", fmt.Errorf("failed to get current directory: %w", err)
	}

	configFile := filepath.Join(cwd, ".git", "config")

	cfg, err := ini.Load(configFile)
	if err != nil {
		return "", "", fmt.Errorf("not a git repository (no readable .git/config)")
	}

	section, err := cfg.GetSection(`remote "origin"`)
	if err != nil {
		return "", "", fmt.Errorf("no origin remote found in git config")
	}

	originURL := section.Key("url").String()
	if originURL == "" {
		return "", "", fmt.Errorf("no origin remote found in git config")
	}

	return ownerRepoFromRemote(originURL)
}

// ownerRepoFromRemote extracts owner/name from https or scp-like GitHub
// remote URLs, e.g. https://github.com/owner/name.git or
// git@github.com:owner/name.git
func ownerRepoFromRemote(remote string) (owner, name string, err error) {
	s := strings.TrimSuffix(strings.TrimSpace(remote), ".git")
	s = strings.Replace(s, "git@github.com:", "https://github.com/", 1)

	idx := strings.Index(s, "github.com/")
	if idx < 0 {
		return "", "", fmt.Errorf("origin is not a GitHub remote: %s", remote)
	}

	path := strings.Trim(s[idx+len("github.com/"):], "/")

	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid GitHub remote URL: %s", remote)
	}

	return parts[0], parts[1], nil
}

// RepoFullName returns the "owner/name" form
func RepoFullName(owner, name string) string {
	return fmt.Sprintf("%s/%s", owner, name)
}
