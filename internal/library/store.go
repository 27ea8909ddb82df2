package library

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"moviematch/internal/config"
	"moviematch/internal/services"
)

// Store persists the watched and watch-later lists, backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the library database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// AddWatched appends a watched item. If the entry is already watched the
// existing item is replaced in place: latest review wins, creation order is
// preserved.
func (s *Store) AddWatched(ctx context.Context, item WatchedItem) error {
	item.EntryID = strings.TrimSpace(item.EntryID)
	if item.EntryID == "" {
		return fmt.Errorf("entry id is required")
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO watched (entry_id, review, emotion, sentiment, created_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(entry_id) DO UPDATE SET
             review = excluded.review,
             emotion = excluded.emotion,
             sentiment = excluded.sentiment`,
		item.EntryID, item.Review, item.Emotion, string(item.Sentiment),
		item.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("add watched: %w", err)
	}

	// A watched entry has no business staying queued for later.
	if _, err := s.db.ExecContext(ctx, `DELETE FROM watch_later WHERE entry_id = ?`, item.EntryID); err != nil {
		return fmt.Errorf("drop watch later duplicate: %w", err)
	}
	return nil
}

// ReplaceWatched rebuilds the watched list wholesale, in the order provided.
// Used by preference renewal, which replaces the entire watched set.
func (s *Store) ReplaceWatched(ctx context.Context, items []WatchedItem) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM watched`); err != nil {
		return fmt.Errorf("clear watched: %w", err)
	}

	base := time.Now().UTC()
	for i, item := range items {
		item.EntryID = strings.TrimSpace(item.EntryID)
		if item.EntryID == "" {
			return fmt.Errorf("entry id is required at position %d", i)
		}
		createdAt := item.CreatedAt
		if createdAt.IsZero() {
			// Spread timestamps so creation order survives the rebuild.
			createdAt = base.Add(time.Duration(i) * time.Microsecond)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO watched (entry_id, review, emotion, sentiment, created_at)
             VALUES (?, ?, ?, ?, ?)
             ON CONFLICT(entry_id) DO UPDATE SET
                 review = excluded.review,
                 emotion = excluded.emotion,
                 sentiment = excluded.sentiment`,
			item.EntryID, item.Review, item.Emotion, string(item.Sentiment),
			createdAt.Format(time.RFC3339Nano)); err != nil {
			return fmt.Errorf("insert watched %s: %w", item.EntryID, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM watch_later WHERE entry_id = ?`, item.EntryID); err != nil {
			return fmt.Errorf("drop watch later duplicate: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace tx: %w", err)
	}
	return nil
}

// ListWatched returns watched items in creation order.
func (s *Store) ListWatched(ctx context.Context) ([]WatchedItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT entry_id, review, emotion, sentiment, created_at
         FROM watched ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("list watched: %w", err)
	}
	defer rows.Close()

	var items []WatchedItem
	for rows.Next() {
		var item WatchedItem
		var sentiment, createdAt string
		if err := rows.Scan(&item.EntryID, &item.Review, &item.Emotion, &sentiment, &createdAt); err != nil {
			return nil, fmt.Errorf("scan watched row: %w", err)
		}
		item.Sentiment = Sentiment(sentiment)
		item.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		items = append(items, item)
	}
	return items, rows.Err()
}

// IsWatched reports whether the entry is in the watched list.
func (s *Store) IsWatched(ctx context.Context, entryID string) (bool, error) {
	return s.exists(ctx, "watched", entryID)
}

// AddWatchLater appends an entry to the watch-later list. Adding an entry
// already present in either list is a no-op.
func (s *Store) AddWatchLater(ctx context.Context, entryID string) error {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return fmt.Errorf("entry id is required")
	}

	watched, err := s.IsWatched(ctx, entryID)
	if err != nil {
		return err
	}
	if watched {
		return nil
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO watch_later (entry_id, created_at) VALUES (?, ?)
         ON CONFLICT(entry_id) DO NOTHING`,
		entryID, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("add watch later: %w", err)
	}
	return nil
}

// ListWatchLater returns watch-later items in creation order.
func (s *Store) ListWatchLater(ctx context.Context) ([]WatchLaterItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT entry_id, created_at FROM watch_later ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("list watch later: %w", err)
	}
	defer rows.Close()

	var items []WatchLaterItem
	for rows.Next() {
		var item WatchLaterItem
		var createdAt string
		if err := rows.Scan(&item.EntryID, &createdAt); err != nil {
			return nil, fmt.Errorf("scan watch later row: %w", err)
		}
		item.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		items = append(items, item)
	}
	return items, rows.Err()
}

// IsWatchLater reports whether the entry is in the watch-later list.
func (s *Store) IsWatchLater(ctx context.Context, entryID string) (bool, error) {
	return s.exists(ctx, "watch_later", entryID)
}

// RemoveWatchLater deletes an entry from the watch-later list and reports
// whether anything was removed.
func (s *Store) RemoveWatchLater(ctx context.Context, entryID string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM watch_later WHERE entry_id = ?`, strings.TrimSpace(entryID))
	if err != nil {
		return false, fmt.Errorf("remove watch later: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove watch later: %w", err)
	}
	return affected > 0, nil
}

// PromoteToWatched moves an entry from watch-later to watched using the
// freshly supplied review. Fails with services.ErrNotInWatchLater when the
// entry is not queued.
func (s *Store) PromoteToWatched(ctx context.Context, item WatchedItem) error {
	present, err := s.IsWatchLater(ctx, item.EntryID)
	if err != nil {
		return err
	}
	if !present {
		return services.Wrap(services.ErrNotInWatchLater, "library", "promote", item.EntryID, nil)
	}
	return s.AddWatched(ctx, item)
}

func (s *Store) exists(ctx context.Context, table, entryID string) (bool, error) {
	var count int
	query := fmt.Sprintf(`SELECT COUNT(1) FROM %s WHERE entry_id = ?`, table)
	if err := s.db.QueryRowContext(ctx, query, strings.TrimSpace(entryID)).Scan(&count); err != nil {
		return false, fmt.Errorf("check %s membership: %w", table, err)
	}
	return count > 0, nil
}
