package classify_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"moviematch/internal/classify"
	"moviematch/internal/config"
	"moviematch/internal/logging"
)

func newTestClient(t *testing.T, handler http.Handler) *classify.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.Inference{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "test/emotion",
	}
	return classify.NewClient(cfg, logging.NewNop(),
		classify.WithHTTPClient(server.Client()),
		classify.WithSleeper(func(time.Duration) {}))
}

func TestClientEmotionRemote(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/test/emotion" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Write([]byte(`[[{"label":"sadness","score":0.91},{"label":"joy","score":0.05}]]`))
	}))

	if got := client.Emotion("such a sad story"); got != "sadness" {
		t.Fatalf("expected sadness, got %q", got)
	}
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[[{"label":"fear","score":0.8}]]`))
	}))

	if got := client.Emotion("terrifying"); got != "fear" {
		t.Fatalf("expected fear after retries, got %q", got)
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls.Load())
	}
}

func TestClientFallsBackToLexicon(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	// The endpoint always fails; classification must still answer via the
	// lexicon rather than erroring.
	if got := client.Emotion("a heartbreaking tragic ending"); got != "sadness" {
		t.Fatalf("expected lexicon fallback to sadness, got %q", got)
	}
}

func TestClientUnknownLabelNormalized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[[{"label":"ennui","score":0.99}]]`))
	}))

	if got := client.Emotion("whatever"); got != classify.EmotionUnknown {
		t.Fatalf("expected unknown for out-of-vocabulary label, got %q", got)
	}
}

func TestClientWithoutKeyUsesLexicon(t *testing.T) {
	client := classify.NewClient(config.Inference{}, logging.NewNop())
	if client.Enabled() {
		t.Fatal("client without api key must not be enabled")
	}
	if got := client.Emotion("hilarious and fun"); got != "joy" {
		t.Fatalf("expected lexicon joy, got %q", got)
	}
}

func TestClientEmptyTextUnknown(t *testing.T) {
	client := classify.NewClient(config.Inference{}, logging.NewNop())
	if got := client.Emotion("   "); got != classify.EmotionUnknown {
		t.Fatalf("expected unknown for empty text, got %q", got)
	}
}
