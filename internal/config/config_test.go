package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setCredentialEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")
	t.Setenv("GOOGLE_REFRESH_TOKEN", "refresh-token")
	t.Setenv("GOOGLE_ACCESS_TOKEN", "")
}

func TestLoad_FromEnv(t *testing.T) {
	setCredentialEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ClientID != "client-id" {
		t.Errorf("expected ClientID 'client-id', got %q", cfg.ClientID)
	}
	if cfg.ClientSecret != "client-secret" {
		t.Errorf("expected ClientSecret 'client-secret', got %q", cfg.ClientSecret)
	}
	if cfg.RefreshToken != "refresh-token" {
		t.Errorf("expected RefreshToken 'refresh-token', got %q", cfg.RefreshToken)
	}
}

func TestLoad_FromEnvFile(t *testing.T) {
	// godotenv does not override variables that are already set, so make
	// sure they are unset (t.Setenv registers restoration on cleanup).
	for _, key := range []string{
		"GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET",
		"GOOGLE_REFRESH_TOKEN", "GOOGLE_ACCESS_TOKEN",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	envFile := filepath.Join(t.TempDir(), "creds.env")
	content := "GOOGLE_CLIENT_ID=file-id\n" +
		"GOOGLE_CLIENT_SECRET=file-secret\n" +
		"GOOGLE_REFRESH_TOKEN=file-refresh\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ClientID != "file-id" {
		t.Errorf("expected ClientID 'file-id', got %q", cfg.ClientID)
	}
	if cfg.RefreshToken != "file-refresh" {
		t.Errorf("expected RefreshToken 'file-refresh', got %q", cfg.RefreshToken)
	}
}

func TestLoad_MissingEnvFile(t *testing.T) {
	setCredentialEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err == nil {
		t.Fatal("expected error for missing env file")
	}
	if !strings.Contains(err.Error(), "failed to load env file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		errContains string
	}{
		{
			name: "valid",
			cfg: Config{
				ClientID:     "id",
				ClientSecret: "secret",
				RefreshToken: "refresh",
			},
		},
		{
			name:        "missing client id",
			cfg:         Config{ClientSecret: "secret", RefreshToken: "refresh"},
			errContains: "GOOGLE_CLIENT_ID",
		},
		{
			name:        "missing client secret",
			cfg:         Config{ClientID: "id", RefreshToken: "refresh"},
			errContains: "GOOGLE_CLIENT_SECRET",
		},
		{
			name:        "missing refresh token",
			cfg:         Config{ClientID: "id", ClientSecret: "secret"},
			errContains: "GOOGLE_REFRESH_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.errContains == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
			}
		})
	}
}

func TestTokenSource(t *testing.T) {
	cfg := Config{
		ClientID:     "id",
		ClientSecret: "secret",
		RefreshToken: "refresh",
	}

	ts := cfg.TokenSource(context.Background())
	if ts == nil {
		t.Fatal("expected non-nil token source")
	}
}
