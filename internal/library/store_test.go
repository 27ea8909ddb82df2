package library_test

import (
	"context"
	"errors"
	"testing"

	"moviematch/internal/library"
	"moviematch/internal/services"
	"moviematch/internal/testsupport"
)

func TestAddWatchedUpserts(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	testsupport.AddWatched(t, store, "tt0001", "great", "joy", library.SentimentLike)
	testsupport.AddWatched(t, store, "tt0002", "meh", "sadness", library.SentimentDislike)
	testsupport.AddWatched(t, store, "tt0001", "rewatched, even better", "love", library.SentimentLike)

	items, err := store.ListWatched(ctx)
	if err != nil {
		t.Fatalf("ListWatched: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 watched items, got %d", len(items))
	}
	if items[0].EntryID != "tt0001" || items[1].EntryID != "tt0002" {
		t.Fatalf("replacement must preserve creation order: %+v", items)
	}
	if items[0].Review != "rewatched, even better" || items[0].Emotion != "love" {
		t.Fatalf("latest review must win: %+v", items[0])
	}
}

func TestAddWatchLaterIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := store.AddWatchLater(ctx, "tt0003"); err != nil {
		t.Fatalf("AddWatchLater: %v", err)
	}
	if err := store.AddWatchLater(ctx, "tt0003"); err != nil {
		t.Fatalf("AddWatchLater repeat: %v", err)
	}

	items, err := store.ListWatchLater(ctx)
	if err != nil {
		t.Fatalf("ListWatchLater: %v", err)
	}
	if len(items) != 1 || items[0].EntryID != "tt0003" {
		t.Fatalf("expected exactly one tt0003, got %+v", items)
	}
}

func TestAddWatchLaterSkipsWatchedEntries(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	testsupport.AddWatched(t, store, "tt0004", "seen it", "joy", library.SentimentLike)
	if err := store.AddWatchLater(ctx, "tt0004"); err != nil {
		t.Fatalf("AddWatchLater: %v", err)
	}

	items, err := store.ListWatchLater(ctx)
	if err != nil {
		t.Fatalf("ListWatchLater: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("watched entries must not join watch later: %+v", items)
	}
}

func TestAddWatchedEvictsFromWatchLater(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := store.AddWatchLater(ctx, "tt0005"); err != nil {
		t.Fatalf("AddWatchLater: %v", err)
	}
	testsupport.AddWatched(t, store, "tt0005", "finally watched", "surprise", library.SentimentLike)

	queued, err := store.IsWatchLater(ctx, "tt0005")
	if err != nil {
		t.Fatalf("IsWatchLater: %v", err)
	}
	if queued {
		t.Fatal("watched entry must leave the watch-later list")
	}
}

func TestRemoveWatchLater(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := store.AddWatchLater(ctx, "tt0006"); err != nil {
		t.Fatalf("AddWatchLater: %v", err)
	}

	removed, err := store.RemoveWatchLater(ctx, "tt0006")
	if err != nil {
		t.Fatalf("RemoveWatchLater: %v", err)
	}
	if !removed {
		t.Fatal("expected removal to be reported")
	}

	removed, err = store.RemoveWatchLater(ctx, "tt0006")
	if err != nil {
		t.Fatalf("RemoveWatchLater repeat: %v", err)
	}
	if removed {
		t.Fatal("second removal must report absence")
	}
}

func TestPromoteToWatched(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := store.AddWatchLater(ctx, "tt0007"); err != nil {
		t.Fatalf("AddWatchLater: %v", err)
	}

	item := library.WatchedItem{
		EntryID:   "tt0007",
		Review:    "held up",
		Emotion:   "joy",
		Sentiment: library.SentimentLike,
	}
	if err := store.PromoteToWatched(ctx, item); err != nil {
		t.Fatalf("PromoteToWatched: %v", err)
	}

	queued, err := store.IsWatchLater(ctx, "tt0007")
	if err != nil {
		t.Fatalf("IsWatchLater: %v", err)
	}
	if queued {
		t.Fatal("promoted entry must leave watch later")
	}
	watched, err := store.IsWatched(ctx, "tt0007")
	if err != nil {
		t.Fatalf("IsWatched: %v", err)
	}
	if !watched {
		t.Fatal("promoted entry must be watched")
	}
}

func TestPromoteRequiresMembership(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	err := store.PromoteToWatched(context.Background(), library.WatchedItem{
		EntryID:   "tt0008",
		Review:    "never queued",
		Emotion:   "anger",
		Sentiment: library.SentimentDislike,
	})
	if !errors.Is(err, services.ErrNotInWatchLater) {
		t.Fatalf("expected not-in-watch-later error, got %v", err)
	}
}

func TestReplaceWatchedRebuildsWholesale(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	testsupport.AddWatched(t, store, "tt0009", "old entry", "sadness", library.SentimentDislike)

	replacement := []library.WatchedItem{
		{EntryID: "tt0010", Review: "first", Emotion: "joy", Sentiment: library.SentimentLike},
		{EntryID: "tt0011", Review: "second", Emotion: "fear", Sentiment: library.SentimentLike},
	}
	if err := store.ReplaceWatched(ctx, replacement); err != nil {
		t.Fatalf("ReplaceWatched: %v", err)
	}

	items, err := store.ListWatched(ctx)
	if err != nil {
		t.Fatalf("ListWatched: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items after rebuild, got %d", len(items))
	}
	if items[0].EntryID != "tt0010" || items[1].EntryID != "tt0011" {
		t.Fatalf("rebuild must preserve provided order: %+v", items)
	}
}
