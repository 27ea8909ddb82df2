package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"moviematch/internal/logging"
	"moviematch/internal/services"
	"moviematch/internal/textutil"
)

// Index is the in-memory catalog: movie basics joined with rating data.
// It is built once at startup and read-only afterwards.
type Index struct {
	entries []Entry
	byID    map[string]int
	byTitle map[string][]int
}

// Load reads the basics and ratings TSV sources, joins them on the id column,
// and builds the index. Records present in only one source are dropped: an
// entry without rating data cannot be quality-gated. Unreadable sources and
// missing required columns fail with services.ErrCatalogLoad.
func Load(basicsPath, ratingsPath string, logger *slog.Logger) (*Index, error) {
	logger = logging.NewComponentLogger(logger, "catalog")

	ratings, err := loadRatings(ratingsPath)
	if err != nil {
		return nil, err
	}

	basicsFile, err := os.Open(basicsPath)
	if err != nil {
		return nil, services.Wrap(services.ErrCatalogLoad, "catalog", "load", "open basics source", err)
	}
	defer basicsFile.Close()

	reader := newTSVReader(basicsFile)
	header, err := reader.Read()
	if err != nil {
		return nil, services.Wrap(services.ErrCatalogLoad, "catalog", "load", "read basics header", err)
	}
	columns, err := requireColumns(header, "tconst", "originalTitle", "startYear", "genres")
	if err != nil {
		return nil, err
	}

	index := &Index{
		byID:    make(map[string]int),
		byTitle: make(map[string][]int),
	}

	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, services.Wrap(services.ErrCatalogLoad, "catalog", "load", "read basics row", err)
		}

		entry, ok := parseBasicsRow(record, columns)
		if !ok {
			skipped++
			continue
		}
		rating, ok := ratings[entry.ID]
		if !ok {
			continue
		}
		entry.Rating = rating.average
		entry.Votes = rating.votes

		index.add(entry)
	}

	if len(index.entries) == 0 {
		return nil, services.Wrap(services.ErrCatalogLoad, "catalog", "load", "no joinable records in sources", nil)
	}

	index.sortTitleBuckets()
	logger.Info("catalog loaded",
		logging.Int("entries", len(index.entries)),
		logging.Int("skipped_rows", skipped))
	return index, nil
}

// FindByID returns the entry with the given identifier.
func (ix *Index) FindByID(id string) (Entry, bool) {
	pos, ok := ix.byID[strings.TrimSpace(id)]
	if !ok {
		return Entry{}, false
	}
	return ix.entries[pos], true
}

// FindByTitle returns every entry whose title matches case-insensitively,
// ordered by year ascending so disambiguation prompts are stable.
func (ix *Index) FindByTitle(title string) []Entry {
	positions := ix.byTitle[textutil.NormalizeTitle(title)]
	matches := make([]Entry, 0, len(positions))
	for _, pos := range positions {
		matches = append(matches, ix.entries[pos])
	}
	return matches
}

// Len returns the number of indexed entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Scan returns a cursor over entries satisfying the predicate, in load order.
// A nil predicate matches everything. Each call starts a fresh pass.
func (ix *Index) Scan(predicate func(Entry) bool) *Cursor {
	return &Cursor{index: ix, predicate: predicate}
}

// Cursor iterates lazily over a filtered view of the index.
type Cursor struct {
	index     *Index
	predicate func(Entry) bool
	pos       int
	current   Entry
}

// Next advances to the next matching entry, reporting whether one exists.
func (c *Cursor) Next() bool {
	for c.pos < len(c.index.entries) {
		entry := c.index.entries[c.pos]
		c.pos++
		if c.predicate == nil || c.predicate(entry) {
			c.current = entry
			return true
		}
	}
	return false
}

// Entry returns the entry the cursor is positioned on. Only valid after a
// Next call that returned true.
func (c *Cursor) Entry() Entry {
	return c.current
}

func (ix *Index) add(entry Entry) {
	if _, exists := ix.byID[entry.ID]; exists {
		return
	}
	pos := len(ix.entries)
	ix.entries = append(ix.entries, entry)
	ix.byID[entry.ID] = pos
	key := textutil.NormalizeTitle(entry.Title)
	ix.byTitle[key] = append(ix.byTitle[key], pos)
}

func (ix *Index) sortTitleBuckets() {
	for _, positions := range ix.byTitle {
		sort.SliceStable(positions, func(i, j int) bool {
			a, b := ix.entries[positions[i]], ix.entries[positions[j]]
			if a.Year != b.Year {
				return a.Year < b.Year
			}
			return a.ID < b.ID
		})
	}
}

type ratingRow struct {
	average float64
	votes   int64
}

func loadRatings(path string) (map[string]ratingRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrCatalogLoad, "catalog", "load", "open ratings source", err)
	}
	defer file.Close()

	reader := newTSVReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, services.Wrap(services.ErrCatalogLoad, "catalog", "load", "read ratings header", err)
	}
	columns, err := requireColumns(header, "tconst", "averageRating", "numVotes")
	if err != nil {
		return nil, err
	}

	ratings := make(map[string]ratingRow)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, services.Wrap(services.ErrCatalogLoad, "catalog", "load", "read ratings row", err)
		}

		id := strings.TrimSpace(field(record, columns["tconst"]))
		if id == "" {
			continue
		}
		average, err := strconv.ParseFloat(strings.TrimSpace(field(record, columns["averageRating"])), 64)
		if err != nil {
			continue
		}
		votes, err := strconv.ParseInt(strings.TrimSpace(field(record, columns["numVotes"])), 10, 64)
		if err != nil || votes < 0 {
			continue
		}
		ratings[id] = ratingRow{average: average, votes: votes}
	}
	return ratings, nil
}

func parseBasicsRow(record []string, columns map[string]int) (Entry, bool) {
	id := strings.TrimSpace(field(record, columns["tconst"]))
	title := strings.TrimSpace(field(record, columns["originalTitle"]))
	if id == "" || title == "" {
		return Entry{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(field(record, columns["startYear"])))
	if err != nil {
		return Entry{}, false
	}
	return Entry{
		ID:     id,
		Title:  title,
		Year:   year,
		Genres: splitGenres(field(record, columns["genres"])),
	}, true
}

func splitGenres(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == `\N` {
		return nil
	}
	parts := strings.Split(raw, ",")
	genres := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			genres = append(genres, part)
		}
	}
	return genres
}

func newTSVReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	// IMDb dumps carry unescaped quotes inside titles.
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader
}

func requireColumns(header []string, names ...string) (map[string]int, error) {
	columns := make(map[string]int, len(names))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range names {
		if _, ok := columns[name]; !ok {
			return nil, services.Wrap(services.ErrCatalogLoad, "catalog", "load",
				fmt.Sprintf("missing required column %q", name), nil)
		}
	}
	return columns, nil
}

func field(record []string, pos int) string {
	if pos < 0 || pos >= len(record) {
		return ""
	}
	return record[pos]
}
