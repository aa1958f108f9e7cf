package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeIssueStore backs a minimal issues endpoint: GET filters by state,
// POST appends and assigns the next number.
type fakeIssueStore struct {
	issues []map[string]any
}

func (s *fakeIssueStore) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.Method {
		case http.MethodGet:
			state := r.URL.Query().Get("state")

			filtered := make([]map[string]any, 0, len(s.issues))

			for _, issue := range s.issues {
				if state == "all" || issue["state"] == state {
					filtered = append(filtered, issue)
				}
			}

			require.NoError(t, json.NewEncoder(w).Encode(filtered))
		case http.MethodPost:
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

			number := len(s.issues) + 1
			issue := map[string]any{
				"number":     number,
				"title":      req["title"],
				"state":      "open",
				"user":       map[string]any{"login": "me"},
				"html_url":   fmt.Sprintf("https://github.com/me/project/issues/%d", number),
				"created_at": "2024-05-01T10:00:00Z",
				"updated_at": "2024-05-01T10:00:00Z",
			}

			if body, ok := req["body"]; ok {
				issue["body"] = body
			}

			if labels, ok := req["labels"].([]any); ok {
				named := make([]map[string]any, 0, len(labels))
				for _, l := range labels {
					named = append(named, map[string]any{"name": l})
				}

				issue["labels"] = named
			}

			s.issues = append(s.issues, issue)

			w.WriteHeader(http.StatusCreated)
			require.NoError(t, json.NewEncoder(w).Encode(issue))
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}

func TestListIssues(t *testing.T) {
	store := &fakeIssueStore{
		issues: []map[string]any{
			{
				"number": 2, "title": "Crash on startup", "state": "open",
				"user":     map[string]any{"login": "alice"},
				"labels":   []map[string]any{{"name": "bug"}, {"name": "urgent"}},
				"html_url": "https://github.com/me/project/issues/2",
			},
			{
				"number": 1, "title": "Typo in README", "state": "closed",
				"user":     map[string]any{"login": "bob"},
				"html_url": "https://github.com/me/project/issues/1",
			},
		},
	}

	srv := httptest.NewServer(store.handler(t))
	defer srv.Close()

	session := newTestSession(t, srv)

	t.Run("default state open", func(t *testing.T) {
		data, err := ListIssues(context.Background(), session, "me", "project", ListIssuesOptions{})
		require.NoError(t, err)
		require.Equal(t, "me/project", data.Repository)
		require.Equal(t, 1, data.TotalCount)
		require.Equal(t, 1, data.OpenCount)
		require.Zero(t, data.ClosedCount)
		require.Equal(t, "Crash on startup", data.Issues[0].Title)
		require.Equal(t, []string{"bug", "urgent"}, data.Issues[0].Labels)
		require.Equal(t, "alice", data.Issues[0].Author)
	})

	t.Run("state all counts both", func(t *testing.T) {
		data, err := ListIssues(context.Background(), session, "me", "project", ListIssuesOptions{State: "all"})
		require.NoError(t, err)
		require.Equal(t, 2, data.TotalCount)
		require.Equal(t, 1, data.OpenCount)
		require.Equal(t, 1, data.ClosedCount)
	})
}

func TestListIssues_FiltersPullRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"number": 3, "title": "Real issue", "state": "open", "user": {"login": "alice"}},
			{
				"number": 4, "title": "A pull request", "state": "open",
				"user": {"login": "bob"},
				"pull_request": {"url": "https://api.github.com/repos/me/project/pulls/4"}
			}
		]`))
	}))
	defer srv.Close()

	session := newTestSession(t, srv)

	data, err := ListIssues(context.Background(), session, "me", "project", ListIssuesOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, data.TotalCount)
	require.Equal(t, "Real issue", data.Issues[0].Title)
}

func TestListIssues_InvalidState(t *testing.T) {
	var hits atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	session := newTestSession(t, srv)

	_, err := ListIssues(context.Background(), session, "me", "project", ListIssuesOptions{State: "merged"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid issue state")
	require.Zero(t, hits.Load(), "an invalid state must be rejected locally")
}

func TestCreateIssue_ThenListed(t *testing.T) {
	store := &fakeIssueStore{}

	srv := httptest.NewServer(store.handler(t))
	defer srv.Close()

	session := newTestSession(t, srv)

	created, err := CreateIssue(context.Background(), session, "me", "project", CreateIssueOptions{
		Title:  "New bug report",
		Body:   "Steps to reproduce...",
		Labels: []string{"bug"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, created.Number)
	require.Equal(t, "New bug report", created.Title)
	require.Equal(t, "open", created.State)
	require.Equal(t, "https://github.com/me/project/issues/1", created.URL)

	data, err := ListIssues(context.Background(), session, "me", "project", ListIssuesOptions{State: "all"})
	require.NoError(t, err)
	require.Equal(t, 1, data.TotalCount)
	require.Equal(t, created.Number, data.Issues[0].Number)
	require.Equal(t, created.Title, data.Issues[0].Title)
	require.Equal(t, []string{"bug"}, data.Issues[0].Labels)
}

func TestCreateIssue_Validation(t *testing.T) {
	var hits atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	t.Run("unauthenticated", func(t *testing.T) {
		session := newTestSession(t, srv)
		session.Token = ""

		var noCreds *NoCredentialsError

		_, err := CreateIssue(context.Background(), session, "me", "project", CreateIssueOptions{Title: "x"})
		require.Error(t, err)
		require.True(t, errors.As(err, &noCreds), "want NoCredentialsError, got %T", err)
	})

	t.Run("missing title", func(t *testing.T) {
		session := newTestSession(t, srv)

		_, err := CreateIssue(context.Background(), session, "me", "project", CreateIssueOptions{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "title is required")
	})

	require.Zero(t, hits.Load(), "validation failures must not reach the server")
}
