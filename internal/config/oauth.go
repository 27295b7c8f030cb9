package config

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"
)

// SuggestionConfig describes the external move-suggestion provider.
type SuggestionConfig struct {
	Enabled  bool
	Endpoint string
	APIKey   string
	Model    string // used when no model row is active
	Timeout  time.Duration
	CacheTTL time.Duration
	OAuth    *clientcredentials.Config // nil when the provider uses a static key
}

func LoadSuggestionConfig() *SuggestionConfig {
	cfg := &SuggestionConfig{
		Enabled:  GetEnvAsBool("SUGGESTION_ENABLED", false),
		Endpoint: GetEnv("SUGGESTION_ENDPOINT", ""),
		APIKey:   GetEnv("SUGGESTION_API_KEY", ""),
		Model:    GetEnv("SUGGESTION_MODEL", "gpt-4o-mini"),
		Timeout:  GetEnvAsDuration("SUGGESTION_TIMEOUT_MS", 4*time.Second, time.Millisecond),
		CacheTTL: GetEnvAsDuration("SUGGESTION_CACHE_TTL_MINUTES", 60*time.Minute, time.Minute),
	}

	tokenURL := GetEnv("SUGGESTION_TOKEN_URL", "")
	clientID := GetEnv("SUGGESTION_CLIENT_ID", "")
	clientSecret := GetEnv("SUGGESTION_CLIENT_SECRET", "")
	if tokenURL != "" && clientID != "" {
		var scopes []string
		if s := GetEnv("SUGGESTION_SCOPES", ""); s != "" {
			scopes = strings.Split(s, ",")
		}
		cfg.OAuth = &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			Scopes:       scopes,
		}
	}

	if cfg.Endpoint == "" {
		cfg.Enabled = false
	}
	return cfg
}

// HTTPClient returns a client that authenticates with client credentials
// when configured, and a plain client with the request timeout otherwise.
func (c *SuggestionConfig) HTTPClient(ctx context.Context) *http.Client {
	if c.OAuth == nil {
		return &http.Client{Timeout: c.Timeout}
	}
	client := c.OAuth.Client(ctx)
	client.Timeout = c.Timeout
	return client
}
