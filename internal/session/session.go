package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"moviematch/internal/catalog"
	"moviematch/internal/classify"
	"moviematch/internal/config"
	"moviematch/internal/library"
	"moviematch/internal/logging"
	"moviematch/internal/profile"
	"moviematch/internal/recommend"
	"moviematch/internal/resolve"
	"moviematch/internal/reviews"
)

// Session bundles the catalog index, library store, classifiers, and the
// recommendation engine behind a single handle and enforces single-instance
// access through a lock file.
type Session struct {
	cfg    *config.Config
	logger *slog.Logger

	index   *catalog.Index
	store   *library.Store
	engine  *recommend.Engine
	fetcher reviews.Fetcher

	emotions   classify.EmotionClassifier
	sentiments classify.SentimentClassifier

	lockPath string
	lock     *flock.Flock
}

// WatchedInput is one title-plus-review pair supplied by the user.
type WatchedInput struct {
	Entry  catalog.Entry
	Review string
}

// Option adjusts session construction, primarily for tests.
type Option func(*options)

type options struct {
	fetcher    reviews.Fetcher
	emotions   classify.EmotionClassifier
	sentiments classify.SentimentClassifier
	engineOpts []recommend.Option
}

// WithFetcher overrides the review fetcher.
func WithFetcher(fetcher reviews.Fetcher) Option {
	return func(o *options) {
		if fetcher != nil {
			o.fetcher = fetcher
		}
	}
}

// WithEmotionClassifier overrides the emotion classifier.
func WithEmotionClassifier(classifier classify.EmotionClassifier) Option {
	return func(o *options) {
		if classifier != nil {
			o.emotions = classifier
		}
	}
}

// WithSentimentClassifier overrides the sentiment classifier.
func WithSentimentClassifier(classifier classify.SentimentClassifier) Option {
	return func(o *options) {
		if classifier != nil {
			o.sentiments = classifier
		}
	}
}

// WithEngineOptions forwards options to the recommendation engine.
func WithEngineOptions(opts ...recommend.Option) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

// Open loads the catalog, opens the library store, and acquires the
// single-instance lock. The returned session must be closed.
func Open(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Session, error) {
	if cfg == nil {
		return nil, errors.New("session requires configuration")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("prepare data directories: %w", err)
	}

	lockPath := cfg.LockPath()
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return nil, errors.New("another moviematch instance is already running")
	}

	store, err := library.Open(cfg)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	index, err := catalog.Load(cfg.Paths.BasicsPath, cfg.Paths.RatingsPath, logger)
	if err != nil {
		_ = store.Close()
		_ = lock.Unlock()
		return nil, err
	}

	resolved := options{}
	for _, opt := range opts {
		opt(&resolved)
	}
	if resolved.fetcher == nil {
		resolved.fetcher = reviews.NewClient(cfg.Reviews)
	}
	if resolved.emotions == nil || resolved.sentiments == nil {
		client := classify.NewClient(cfg.Inference, logger)
		if resolved.emotions == nil {
			resolved.emotions = client
		}
		if resolved.sentiments == nil {
			resolved.sentiments = client
		}
	}

	fetchDelay := time.Duration(cfg.Reviews.FetchDelaySeconds) * time.Second
	engine := recommend.New(resolved.fetcher, resolved.emotions, fetchDelay, logger, resolved.engineOpts...)

	logger.Info("session opened",
		logging.Int("catalog_entries", index.Len()),
		logging.String("database", store.Path()),
		logging.String("lock", lockPath))

	return &Session{
		cfg:        cfg,
		logger:     logger,
		index:      index,
		store:      store,
		engine:     engine,
		fetcher:    resolved.fetcher,
		emotions:   resolved.emotions,
		sentiments: resolved.sentiments,
		lockPath:   lockPath,
		lock:       lock,
	}, nil
}

// Close releases the library store and the instance lock.
func (s *Session) Close() error {
	var firstErr error
	if s.store != nil {
		firstErr = s.store.Close()
		s.store = nil
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warn("failed to release instance lock", logging.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
		s.lock = nil
	}
	return firstErr
}

// Config returns the active configuration.
func (s *Session) Config() *config.Config { return s.cfg }

// Index returns the loaded catalog index.
func (s *Session) Index() *catalog.Index { return s.index }

// Store returns the library store.
func (s *Session) Store() *library.Store { return s.store }

// Search returns the catalog entries matching a title, ordered by year.
func (s *Session) Search(title string) ([]catalog.Entry, error) {
	return resolve.Candidates(s.index, title)
}

// Resolve picks one entry out of the candidates for a title. Selection is
// 1-based and ignored when the title is unambiguous.
func (s *Session) Resolve(title string, selection int) (catalog.Entry, error) {
	candidates, err := resolve.Candidates(s.index, title)
	if err != nil {
		return catalog.Entry{}, err
	}
	return resolve.Pick(candidates, selection)
}

// Review fetches the entry's representative review. Callers treat any
// failure, including reviews.ErrNotFound, as the review being unavailable.
func (s *Session) Review(ctx context.Context, entryID string) (string, error) {
	return s.fetcher.Fetch(ctx, entryID)
}

// RecordWatched classifies the user's review and stores the entry on the
// watched list, displacing any watch-later membership.
func (s *Session) RecordWatched(ctx context.Context, entry catalog.Entry, review string) (library.WatchedItem, error) {
	item := s.buildWatchedItem(entry.ID, review)
	if err := s.store.AddWatched(ctx, item); err != nil {
		return library.WatchedItem{}, err
	}
	s.logger.Info("watched entry recorded",
		logging.String("entry_id", entry.ID),
		logging.String("emotion", item.Emotion),
		logging.String("sentiment", string(item.Sentiment)))
	return item, nil
}

// RenewPreferences replaces the watched list wholesale with the given
// title-plus-review pairs, classifying each review.
func (s *Session) RenewPreferences(ctx context.Context, inputs []WatchedInput) error {
	items := make([]library.WatchedItem, 0, len(inputs))
	for _, input := range inputs {
		items = append(items, s.buildWatchedItem(input.Entry.ID, input.Review))
	}
	if err := s.store.ReplaceWatched(ctx, items); err != nil {
		return err
	}
	s.logger.Info("watched list renewed", logging.Int("entries", len(items)))
	return nil
}

// QueueWatchLater adds an entry to the watch-later list. Entries already on
// either list are left untouched.
func (s *Session) QueueWatchLater(ctx context.Context, entry catalog.Entry) error {
	return s.store.AddWatchLater(ctx, entry.ID)
}

// RemoveWatchLater drops an entry from the watch-later list and reports
// whether it was present.
func (s *Session) RemoveWatchLater(ctx context.Context, entryID string) (bool, error) {
	return s.store.RemoveWatchLater(ctx, entryID)
}

// PromoteWatched moves a watch-later entry onto the watched list with a
// freshly classified review.
func (s *Session) PromoteWatched(ctx context.Context, entryID, review string) (library.WatchedItem, error) {
	item := s.buildWatchedItem(entryID, review)
	if err := s.store.PromoteToWatched(ctx, item); err != nil {
		return library.WatchedItem{}, err
	}
	return item, nil
}

// Watched returns the watched list in insertion order.
func (s *Session) Watched(ctx context.Context) ([]library.WatchedItem, error) {
	return s.store.ListWatched(ctx)
}

// WatchLater returns the watch-later list in insertion order.
func (s *Session) WatchLater(ctx context.Context) ([]library.WatchLaterItem, error) {
	return s.store.ListWatchLater(ctx)
}

// Profile derives the taste profile from the current watched list.
func (s *Session) Profile(ctx context.Context) (*profile.Profile, error) {
	items, err := s.store.ListWatched(ctx)
	if err != nil {
		return nil, err
	}
	return profile.Derive(items, s.index)
}

// Recommend derives the taste profile and runs the recommendation engine.
// Results are queued on the watch-later list before they are returned.
func (s *Session) Recommend(ctx context.Context) ([]recommend.Recommendation, error) {
	prof, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.Recommend(ctx, s.index, prof, s.store)
}

func (s *Session) buildWatchedItem(entryID, review string) library.WatchedItem {
	review = strings.TrimSpace(review)
	item := library.WatchedItem{
		EntryID:   entryID,
		Review:    review,
		Emotion:   classify.EmotionUnknown,
		Sentiment: library.SentimentDislike,
	}
	if review == "" {
		return item
	}
	item.Emotion = s.emotions.Emotion(review)
	if s.sentiments.Sentiment(review) == classify.PolarityPositive {
		item.Sentiment = library.SentimentLike
	}
	return item
}
