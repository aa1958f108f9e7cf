package core

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
)

// newTestSession returns an authenticated session aimed at a fake server,
// with the config file redirected into the test's temp directory.
func newTestSession(t *testing.T, server *httptest.Server) *Session {
	t.Helper()

	return &Session{
		Token:      "test-token",
		APIBaseURL: server.URL,
		ConfigPath: filepath.Join(t.TempDir(), "config.json"),
	}
}
