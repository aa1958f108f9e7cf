package core

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListBranches(t *testing.T) {
	var hits atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)

		require.Equal(t, "/repos/golang/go/branches", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name": "master", "protected": true, "commit": {"sha": "abc123def4567890"}},
			{"name": "dev.boringcrypto", "protected": false, "commit": {"sha": "0123456789abcdef"}}
		]`))
	}))
	defer srv.Close()

	session := newTestSession(t, srv)

	branches, err := ListBranches(context.Background(), session, "golang", "go")
	require.NoError(t, err)
	require.Len(t, branches, 2)

	require.Equal(t, "master", branches[0].Name)
	require.True(t, branches[0].Protected)
	require.Equal(t, "abc123def4567890", branches[0].SHA)

	require.Equal(t, "dev.boringcrypto", branches[1].Name)
	require.False(t, branches[1].Protected)

	// Only the first page is fetched.
	require.Equal(t, int64(1), hits.Load())
}

func TestListBranches_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "Must have push access"}`))
	}))
	defer srv.Close()

	session := newTestSession(t, srv)

	var apiErr *APIError

	branches, err := ListBranches(context.Background(), session, "me", "locked")
	require.Error(t, err)
	require.Nil(t, branches)
	require.True(t, errors.As(err, &apiErr), "want APIError, got %T", err)
	require.Equal(t, http.StatusForbidden, apiErr.Status)
	require.Contains(t, apiErr.Body, "push access")
}
