package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"moviematch/internal/classify"
	"moviematch/internal/config"
	"moviematch/internal/recommend"
	"moviematch/internal/reviews"
	"moviematch/internal/session"
	"moviematch/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	cfg := testsupport.NewConfig(t)
	testsupport.WriteCatalog(t, cfg, testsupport.SampleMovies()...)

	configPath := filepath.Join(homeDir, ".config", "moviematch", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()

	content := fmt.Sprintf(`[paths]
data_dir = %q
log_dir = %q
catalog_basics = %q
catalog_ratings = %q

[logging]
format = "console"
level = "info"
`, cfg.Paths.DataDir, cfg.Paths.LogDir, cfg.Paths.BasicsPath, cfg.Paths.RatingsPath)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
}

type stubTestFetcher map[string]string

func (s stubTestFetcher) Fetch(_ context.Context, entryID string) (string, error) {
	review, ok := s[entryID]
	if !ok {
		return "", reviews.ErrNotFound
	}
	return review, nil
}

func testSessionOptions() []session.Option {
	return []session.Option{
		session.WithFetcher(stubTestFetcher{
			"tt0068646": "A tragic crime saga about family and power.",
		}),
		session.WithEmotionClassifier(classify.NewLexicon()),
		session.WithSentimentClassifier(classify.NewLexicon()),
		session.WithEngineOptions(recommend.WithSleeper(func(time.Duration) {})),
	}
}

func runCLI(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()

	cmd := newRootCommandWithOptions(testSessionOptions()...)
	if configPath != "" {
		args = append(args, "--config", configPath)
	}
	cmd.SetArgs(args)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
