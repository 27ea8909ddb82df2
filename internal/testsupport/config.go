package testsupport

import (
	"path/filepath"
	"testing"

	"moviematch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.BasicsPath = filepath.Join(base, "basics.tsv")
	cfg.Paths.RatingsPath = filepath.Join(base, "ratings.tsv")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithFetchDelay overrides the review fetch delay on the test config.
func WithFetchDelay(seconds int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Reviews.FetchDelaySeconds = seconds
	}
}
