package profile

import (
	"sort"

	"moviematch/internal/catalog"
	"moviematch/internal/classify"
	"moviematch/internal/library"
	"moviematch/internal/services"
)

// YearCategory buckets release years into coarse eras.
type YearCategory string

const (
	YearOld     YearCategory = "old"
	YearMiddle  YearCategory = "middle"
	YearNew     YearCategory = "new"
	YearVeryNew YearCategory = "very_new"
)

// bucketRank orders categories by recency for tie-breaking.
var bucketRank = map[YearCategory]int{
	YearOld:     0,
	YearMiddle:  1,
	YearNew:     2,
	YearVeryNew: 3,
}

// CategorizeYear maps a release year onto its era bucket.
func CategorizeYear(year int) YearCategory {
	switch {
	case year < 1980:
		return YearOld
	case year < 2000:
		return YearMiddle
	case year < 2015:
		return YearNew
	default:
		return YearVeryNew
	}
}

// Profile is the derived taste summary of a watched set. It is a pure
// function of the watched items and the catalog entries they reference:
// identical inputs always derive identical profiles.
type Profile struct {
	TopGenres    []string
	TopEmotions  []string
	YearCategory YearCategory
}

const (
	maxTopGenres   = 3
	maxTopEmotions = 2
)

// Derive computes the profile for the current watched set. Deriving from an
// empty set fails with services.ErrInsufficientData. Watched items whose
// entry id no longer resolves against the catalog contribute their emotion
// but no genres or year.
func Derive(items []library.WatchedItem, index *catalog.Index) (*Profile, error) {
	if len(items) == 0 {
		return nil, services.Wrap(services.ErrInsufficientData, "profile", "derive", "watched list is empty", nil)
	}

	genreCounter := newCounter()
	emotionCounter := newCounter()
	yearCounts := make(map[YearCategory]int)

	for _, item := range items {
		if emotion := classify.NormalizeEmotion(item.Emotion); emotion != classify.EmotionUnknown {
			emotionCounter.add(emotion)
		}
		entry, ok := index.FindByID(item.EntryID)
		if !ok {
			continue
		}
		for _, genre := range entry.Genres {
			genreCounter.add(genre)
		}
		yearCounts[CategorizeYear(entry.Year)]++
	}

	return &Profile{
		TopGenres:    genreCounter.top(maxTopGenres),
		TopEmotions:  emotionCounter.top(maxTopEmotions),
		YearCategory: pluralityBucket(yearCounts),
	}, nil
}

// pluralityBucket picks the category holding the most watched years,
// preferring the more recent bucket on ties. An empty count map (every
// watched id unresolvable) falls back to the newest bucket.
func pluralityBucket(counts map[YearCategory]int) YearCategory {
	best := YearVeryNew
	bestCount := 0
	for category, count := range counts {
		if count > bestCount || (count == bestCount && bucketRank[category] > bucketRank[best]) {
			best = category
			bestCount = count
		}
	}
	return best
}

// counter ranks labels by frequency with first-seen order as the tie-break.
type counter struct {
	counts    map[string]int
	firstSeen map[string]int
	order     int
}

func newCounter() *counter {
	return &counter{
		counts:    make(map[string]int),
		firstSeen: make(map[string]int),
	}
}

func (c *counter) add(label string) {
	if _, seen := c.counts[label]; !seen {
		c.firstSeen[label] = c.order
	}
	c.order++
	c.counts[label]++
}

func (c *counter) top(limit int) []string {
	labels := make([]string, 0, len(c.counts))
	for label := range c.counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		a, b := labels[i], labels[j]
		if c.counts[a] != c.counts[b] {
			return c.counts[a] > c.counts[b]
		}
		return c.firstSeen[a] < c.firstSeen[b]
	})
	if len(labels) > limit {
		labels = labels[:limit]
	}
	return labels
}
