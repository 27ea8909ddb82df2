package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"moviematch/internal/config"
)

func TestLoadMissingDefaultUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, path, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatalf("expected missing config file, resolved %s", path)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Reviews.FetchDelaySeconds < 1 {
		t.Fatalf("fetch delay floor not applied: %d", cfg.Reviews.FetchDelaySeconds)
	}
}

func TestLoadRejectsMissingExplicitPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "config.toml")
	if _, _, _, err := config.Load(missing); err == nil {
		t.Fatal("expected error for explicitly named missing config file")
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`data_dir = "` + filepath.Join(dir, "data") + `"`,
		`log_dir = "` + filepath.Join(dir, "logs") + `"`,
		`catalog_basics = "` + filepath.Join(dir, "basics.tsv") + `"`,
		`catalog_ratings = "` + filepath.Join(dir, "ratings.tsv") + `"`,
		"[reviews]",
		"fetch_delay_seconds = 0",
		`base_url = "https://reviews.example.com/"`,
		"[logging]",
		`level = "DEBUG"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level not lowercased: %q", cfg.Logging.Level)
	}
	if cfg.Reviews.BaseURL != "https://reviews.example.com" {
		t.Fatalf("base url not trimmed: %q", cfg.Reviews.BaseURL)
	}
	if cfg.Reviews.FetchDelaySeconds != 1 {
		t.Fatalf("expected fetch delay floor of 1, got %d", cfg.Reviews.FetchDelaySeconds)
	}
	if cfg.DatabasePath() != filepath.Join(dir, "data", "library.db") {
		t.Fatalf("unexpected database path: %s", cfg.DatabasePath())
	}
}

func TestLoadRejectsBadLogFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"yaml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for bad log format")
	}
}

func TestInferenceKeyFromEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MOVIEMATCH_INFERENCE_API_KEY", "env-secret")
	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Inference.APIKey != "env-secret" {
		t.Fatalf("expected api key from environment, got %q", cfg.Inference.APIKey)
	}
}

func TestCreateSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[reviews]") {
		t.Fatalf("sample missing reviews section: %q", string(data))
	}
}
