package model

// Config holds the non-secret settings persisted between runs. The access
// token is kept in memory only and must never appear here.
type Config struct {
	// Username is the login of the last successfully authenticated user
	Username string `json:"username"`

	// APIBaseURL is the GitHub REST API endpoint
	APIBaseURL string `json:"api_base_url"`
}

// DefaultAPIBaseURL is the public GitHub REST API endpoint.
const DefaultAPIBaseURL = "https://api.github.com"

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		APIBaseURL: DefaultAPIBaseURL,
	}
}
