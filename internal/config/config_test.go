package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.NewsAPI.BaseURL != "https://newsapi.org/v2" {
		t.Errorf("unexpected default base URL: %s", cfg.NewsAPI.BaseURL)
	}
	if cfg.API.Port != "8080" {
		t.Errorf("unexpected default port: %s", cfg.API.Port)
	}
}

func TestLoadFile(t *testing.T) {
	content := `
newsapi:
  api_key: file-key
guardian:
  base_url: https://guardian.example
db_path: /tmp/test-news.db
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.NewsAPI.APIKey != "file-key" {
		t.Errorf("api_key = %q", cfg.NewsAPI.APIKey)
	}
	if cfg.Guardian.BaseURL != "https://guardian.example" {
		t.Errorf("guardian base_url = %q", cfg.Guardian.BaseURL)
	}
	// Unspecified fields keep their defaults.
	if cfg.NYTimes.BaseURL != "https://api.nytimes.com/svc" {
		t.Errorf("nytimes base_url lost its default: %q", cfg.NYTimes.BaseURL)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("NEWSAPI_KEY", "env-key")
	t.Setenv("API_PORT", "9999")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.NewsAPI.APIKey != "env-key" {
		t.Errorf("env override missed: %q", cfg.NewsAPI.APIKey)
	}
	if cfg.API.Port != "9999" {
		t.Errorf("env override missed: %q", cfg.API.Port)
	}
}
