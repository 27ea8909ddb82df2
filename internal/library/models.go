package library

import "time"

// Sentiment is the polarity attached to a watched item's review.
type Sentiment string

const (
	SentimentLike    Sentiment = "like"
	SentimentDislike Sentiment = "dislike"
)

// WatchedItem annotates a catalog entry the user has seen. EntryID is a weak
// reference into the catalog; the item never owns catalog data.
type WatchedItem struct {
	EntryID   string
	Review    string
	Emotion   string
	Sentiment Sentiment
	CreatedAt time.Time
}

// WatchLaterItem marks a catalog entry held for later viewing.
type WatchLaterItem struct {
	EntryID   string
	CreatedAt time.Time
}
