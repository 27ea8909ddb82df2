package catalog

import (
	"strings"

	"moviematch/internal/textutil"
)

// Entry is one immutable catalog record: a movie joined with its rating data.
type Entry struct {
	ID     string
	Title  string
	Year   int
	Genres []string
	Rating float64
	Votes  int64
}

// HasGenre reports whether the entry carries the genre tag. Comparison uses
// the same case folding as title lookup.
func (e Entry) HasGenre(genre string) bool {
	for _, g := range e.Genres {
		if textutil.FoldEqual(g, genre) {
			return true
		}
	}
	return false
}

// GenreOverlap counts how many of the provided tags appear in the entry's
// genre set. Duplicate tags in the input are counted once.
func (e Entry) GenreOverlap(genres []string) int {
	overlap := 0
	seen := make(map[string]struct{}, len(genres))
	for _, genre := range genres {
		key := strings.ToLower(strings.TrimSpace(genre))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if e.HasGenre(key) {
			overlap++
		}
	}
	return overlap
}
