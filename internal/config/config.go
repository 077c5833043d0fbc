// Package config loads the Google OAuth credentials the server uses to
// reach the Tasks API. Credentials are read once at startup from the
// environment (optionally seeded from an env file) and the resulting
// Config is treated as immutable.
package config

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// TasksScope is the OAuth scope required for full task list access.
const TasksScope = "https://www.googleapis.com/auth/tasks"

// Config holds pre-provisioned OAuth credentials. The server performs no
// authorization handshake; the refresh token must already exist.
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	AccessToken  string
}

// Load reads credentials from the environment. When envFile is non-empty it
// is loaded first and missing files are an error; otherwise a .env file in
// the working directory is loaded if present.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else {
		// Best effort: a missing .env is fine, the environment may
		// already carry the credentials.
		_ = godotenv.Load()
	}

	cfg := Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RefreshToken: os.Getenv("GOOGLE_REFRESH_TOKEN"),
		AccessToken:  os.Getenv("GOOGLE_ACCESS_TOKEN"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the required credential fields are set.
func (c Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("GOOGLE_CLIENT_ID is required")
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("GOOGLE_CLIENT_SECRET is required")
	}
	if c.RefreshToken == "" {
		return fmt.Errorf("GOOGLE_REFRESH_TOKEN is required")
	}
	return nil
}

// TokenSource returns an oauth2 token source that refreshes the access
// token transparently using the stored refresh token.
func (c Config) TokenSource(ctx context.Context) oauth2.TokenSource {
	oauthConfig := &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{TasksScope},
	}

	token := &oauth2.Token{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		TokenType:    "Bearer",
		// Expire immediately so the first use refreshes against the
		// refresh token even when a stale access token was provided.
		Expiry: time.Unix(1, 0),
	}

	return oauthConfig.TokenSource(ctx, token)
}

// HTTPClient returns an HTTP client that authenticates requests with the
// configured credentials.
func (c Config) HTTPClient(ctx context.Context) *http.Client {
	return oauth2.NewClient(ctx, c.TokenSource(ctx))
}
