package recommend

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"moviematch/internal/catalog"
	"moviematch/internal/classify"
	"moviematch/internal/library"
	"moviematch/internal/logging"
	"moviematch/internal/profile"
	"moviematch/internal/reviews"
)

// MaxRecommendations bounds every result list.
const MaxRecommendations = 3

// Quality gate: entries below either bar are never recommended, regardless
// of how well they match the profile.
const (
	MinRating = 6.5
	MinVotes  = 50000
)

// Recommendation is one scored catalog entry.
type Recommendation struct {
	Entry        catalog.Entry
	GenreOverlap int
	EmotionMatch bool
	YearMatch    bool
}

// Score is the ranking key: genre overlap plus one point each for an
// emotion and an era match.
func (r Recommendation) Score() int {
	score := r.GenreOverlap
	if r.EmotionMatch {
		score++
	}
	if r.YearMatch {
		score++
	}
	return score
}

// Engine filters and ranks catalog entries against a taste profile. The
// review fetcher and emotion classifier are injected so the engine stays
// testable with deterministic stubs.
type Engine struct {
	fetcher    reviews.Fetcher
	emotions   classify.EmotionClassifier
	logger     *slog.Logger
	fetchDelay time.Duration
	sleeper    func(time.Duration)
}

// Option customizes the engine.
type Option func(*Engine)

// WithSleeper overrides how the inter-fetch delay is waited out (useful for
// tests).
func WithSleeper(sleeper func(time.Duration)) Option {
	return func(e *Engine) {
		if sleeper != nil {
			e.sleeper = sleeper
		}
	}
}

// New constructs an engine. fetchDelay is the politeness floor between
// successive review fetches; values below one second are raised to it.
func New(fetcher reviews.Fetcher, emotions classify.EmotionClassifier, fetchDelay time.Duration, logger *slog.Logger, opts ...Option) *Engine {
	if fetchDelay < time.Second {
		fetchDelay = time.Second
	}
	engine := &Engine{
		fetcher:    fetcher,
		emotions:   emotions,
		logger:     logging.NewComponentLogger(logger, "recommend"),
		fetchDelay: fetchDelay,
		sleeper:    time.Sleep,
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Recommend produces up to MaxRecommendations entries matching the profile
// and queues each on the watch-later list. Entries already on either list
// are not candidates. An empty result is a valid outcome, not a failure.
func (e *Engine) Recommend(ctx context.Context, index *catalog.Index, prof *profile.Profile, store *library.Store) ([]Recommendation, error) {
	threshold := genreThreshold(prof)

	excluded, err := e.listedEntryIDs(ctx, store)
	if err != nil {
		return nil, err
	}

	var candidates []catalog.Entry
	cursor := index.Scan(func(entry catalog.Entry) bool {
		if entry.Rating <= MinRating || entry.Votes <= MinVotes {
			return false
		}
		if _, listed := excluded[entry.ID]; listed {
			return false
		}
		return entry.GenreOverlap(prof.TopGenres) >= threshold
	})
	for cursor.Next() {
		candidates = append(candidates, cursor.Entry())
	}

	scored := make([]Recommendation, 0, len(candidates))
	for i, entry := range candidates {
		if i > 0 {
			e.sleeper(e.fetchDelay)
		}
		scored = append(scored, Recommendation{
			Entry:        entry,
			GenreOverlap: entry.GenreOverlap(prof.TopGenres),
			EmotionMatch: e.emotionMatch(ctx, entry, prof),
			YearMatch:    profile.CategorizeYear(entry.Year) == prof.YearCategory,
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score() != b.Score() {
			return a.Score() > b.Score()
		}
		if a.Entry.Rating != b.Entry.Rating {
			return a.Entry.Rating > b.Entry.Rating
		}
		if a.Entry.Votes != b.Entry.Votes {
			return a.Entry.Votes > b.Entry.Votes
		}
		return a.Entry.ID < b.Entry.ID
	})

	if len(scored) > MaxRecommendations {
		scored = scored[:MaxRecommendations]
	}

	for _, rec := range scored {
		if err := store.AddWatchLater(ctx, rec.Entry.ID); err != nil {
			return nil, err
		}
	}

	e.logger.Info("recommendations generated",
		logging.Int("candidates", len(candidates)),
		logging.Int("returned", len(scored)))
	return scored, nil
}

// genreThreshold is the minimum required genre overlap. The bar tightens
// with profile breadth but never beyond two shared genres.
func genreThreshold(prof *profile.Profile) int {
	if len(prof.TopGenres) < 2 {
		return len(prof.TopGenres)
	}
	return 2
}

// emotionMatch fetches the entry's representative review and checks its
// emotion against the profile. Any fetch failure counts as a non-match,
// never an error.
func (e *Engine) emotionMatch(ctx context.Context, entry catalog.Entry, prof *profile.Profile) bool {
	if len(prof.TopEmotions) == 0 {
		return false
	}

	review, err := e.fetcher.Fetch(ctx, entry.ID)
	if err != nil {
		if !errors.Is(err, reviews.ErrNotFound) {
			e.logger.Warn("review fetch failed, scoring as non-match",
				logging.String("entry_id", entry.ID),
				logging.Error(err))
		}
		return false
	}

	emotion := e.emotions.Emotion(review)
	for _, preferred := range prof.TopEmotions {
		if emotion == preferred {
			return true
		}
	}
	return false
}

func (e *Engine) listedEntryIDs(ctx context.Context, store *library.Store) (map[string]struct{}, error) {
	excluded := make(map[string]struct{})
	watched, err := store.ListWatched(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range watched {
		excluded[item.EntryID] = struct{}{}
	}
	later, err := store.ListWatchLater(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range later {
		excluded[item.EntryID] = struct{}{}
	}
	return excluded, nil
}
