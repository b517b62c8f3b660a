package api

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sendkit/resend-go/internal/apierrors"
)

func TestLoadEnvConfig_Defaults(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "re_env_key")
	t.Setenv("RESEND_BASE_URL", "")
	os.Unsetenv("RESEND_BASE_URL")

	cfg, err := LoadEnvConfig()
	if err != nil {
		t.Fatalf("LoadEnvConfig() error = %v", err)
	}
	if cfg.APIKey != "re_env_key" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.RateLimit != 9 {
		t.Errorf("RateLimit = %d, want 9", cfg.RateLimit)
	}
	if cfg.RateWindow != 1100*time.Millisecond {
		t.Errorf("RateWindow = %v, want 1.1s", cfg.RateWindow)
	}
}

func TestLoadEnvConfig_Overrides(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "re_env_key")
	t.Setenv("RESEND_BASE_URL", "http://localhost:8080")
	t.Setenv("RESEND_RATE_LIMIT", "2")
	t.Setenv("RESEND_RATE_WINDOW", "500ms")

	cfg, err := LoadEnvConfig()
	if err != nil {
		t.Fatalf("LoadEnvConfig() error = %v", err)
	}
	if cfg.BaseURL != "http://localhost:8080" || cfg.RateLimit != 2 || cfg.RateWindow != 500*time.Millisecond {
		t.Errorf("cfg = %+v", cfg)
	}

	applied := cfg.Apply(Config{UserAgent: "custom"})
	if applied.UserAgent != "custom" || applied.APIKey != "re_env_key" || applied.RateLimit != 2 {
		t.Errorf("Apply() = %+v", applied)
	}
}

func TestLoadEnvConfig_MissingKey(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "  ")

	_, err := LoadEnvConfig()
	if !errors.Is(err, apierrors.ErrMissingAPIKey) {
		t.Errorf("LoadEnvConfig() error = %v, want ErrMissingAPIKey", err)
	}
}

func TestLoadEnvConfig_InvalidValue(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "re_env_key")
	t.Setenv("RESEND_RATE_LIMIT", "nine")

	if _, err := LoadEnvConfig(); err == nil {
		t.Error("expected parse error for non-numeric rate limit")
	}
}

func TestLoadEnvConfig_ZeroRate(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"zero limit", "RESEND_RATE_LIMIT", "0"},
		{"negative limit", "RESEND_RATE_LIMIT", "-3"},
		{"zero window", "RESEND_RATE_WINDOW", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RESEND_API_KEY", "re_env_key")
			t.Setenv(tt.key, tt.value)

			if _, err := LoadEnvConfig(); err == nil {
				t.Errorf("LoadEnvConfig() with %s=%s should fail", tt.key, tt.value)
			}
		})
	}
}

func TestLoadEnvConfig_DotEnv(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "")
	os.Unsetenv("RESEND_API_KEY")
	t.Setenv("RESEND_RATE_LIMIT", "4")

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "RESEND_API_KEY=re_from_file\nRESEND_RATE_LIMIT=7\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("RESEND_API_KEY") })

	cfg, err := LoadEnvConfig(filepath.Join(dir, "missing.env"), path)
	if err != nil {
		t.Fatalf("LoadEnvConfig() error = %v", err)
	}
	if cfg.APIKey != "re_from_file" {
		t.Errorf("APIKey = %q, want re_from_file", cfg.APIKey)
	}
	if cfg.RateLimit != 4 {
		t.Errorf("RateLimit = %d, want 4 (environment wins over file)", cfg.RateLimit)
	}
}
