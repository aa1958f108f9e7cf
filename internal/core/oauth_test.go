package core

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateToken(t *testing.T) {
	t.Run("accepted token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/user", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"login": "octocat"}`))
		}))
		defer srv.Close()

		valid, login, err := ValidateToken(context.Background(), newTestSession(t, srv))
		require.NoError(t, err)
		require.True(t, valid)
		require.Equal(t, "octocat", login)
	})

	t.Run("revoked token is not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message": "Bad credentials"}`))
		}))
		defer srv.Close()

		valid, login, err := ValidateToken(context.Background(), newTestSession(t, srv))
		require.NoError(t, err)
		require.False(t, valid)
		require.Empty(t, login)
	})

	t.Run("server failure propagates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message": "boom"}`))
		}))
		defer srv.Close()

		var apiErr *APIError

		valid, _, err := ValidateToken(context.Background(), newTestSession(t, srv))
		require.Error(t, err)
		require.False(t, valid)
		require.True(t, errors.As(err, &apiErr), "want APIError, got %T", err)
	})
}
