package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	require.Empty(t, cfg.Username)
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := Config{
		Username:   "octocat",
		APIBaseURL: "https://ghe.example.com/api/v3",
	}

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.JSONEq(t, `{"username":"octocat","api_base_url":"https://ghe.example.com/api/v3"}`, string(data))

	var got Config
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, cfg, got)
}
