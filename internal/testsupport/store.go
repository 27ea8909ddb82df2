package testsupport

import (
	"context"
	"testing"

	"moviematch/internal/config"
	"moviematch/internal/library"
)

// MustOpenStore opens a library.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *library.Store {
	t.Helper()

	store, err := library.Open(cfg)
	if err != nil {
		t.Fatalf("library.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// AddWatched inserts a watched item for tests using the provided store.
func AddWatched(t testing.TB, store *library.Store, entryID, review, emotion string, sentiment library.Sentiment) {
	t.Helper()

	item := library.WatchedItem{
		EntryID:   entryID,
		Review:    review,
		Emotion:   emotion,
		Sentiment: sentiment,
	}
	if err := store.AddWatched(context.Background(), item); err != nil {
		t.Fatalf("store.AddWatched: %v", err)
	}
}
