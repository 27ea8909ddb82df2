package testsupport

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"moviematch/internal/catalog"
	"moviematch/internal/config"
	"moviematch/internal/logging"
)

// Movie describes one catalog fixture row written to both TSV sources.
type Movie struct {
	ID     string
	Title  string
	Year   int
	Genres string
	Rating float64
	Votes  int64
}

// WriteCatalog writes basics and ratings fixtures for the provided movies to
// the paths the config points at.
func WriteCatalog(t testing.TB, cfg *config.Config, movies ...Movie) {
	t.Helper()

	var basics strings.Builder
	basics.WriteString("tconst\toriginalTitle\tstartYear\tgenres\n")
	var ratings strings.Builder
	ratings.WriteString("tconst\taverageRating\tnumVotes\n")

	for _, movie := range movies {
		fmt.Fprintf(&basics, "%s\t%s\t%d\t%s\n", movie.ID, movie.Title, movie.Year, movie.Genres)
		fmt.Fprintf(&ratings, "%s\t%.1f\t%d\n", movie.ID, movie.Rating, movie.Votes)
	}

	if err := os.WriteFile(cfg.Paths.BasicsPath, []byte(basics.String()), 0o644); err != nil {
		t.Fatalf("write basics fixture: %v", err)
	}
	if err := os.WriteFile(cfg.Paths.RatingsPath, []byte(ratings.String()), 0o644); err != nil {
		t.Fatalf("write ratings fixture: %v", err)
	}
}

// MustLoadCatalog writes the fixtures and loads the index.
func MustLoadCatalog(t testing.TB, cfg *config.Config, movies ...Movie) *catalog.Index {
	t.Helper()

	WriteCatalog(t, cfg, movies...)
	index, err := catalog.Load(cfg.Paths.BasicsPath, cfg.Paths.RatingsPath, logging.NewNop())
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	return index
}

// SampleMovies returns a small, well-known fixture set used across tests.
func SampleMovies() []Movie {
	return []Movie{
		{ID: "tt0068646", Title: "The Godfather", Year: 1972, Genres: "Crime,Drama", Rating: 9.2, Votes: 1800000},
		{ID: "tt0468569", Title: "The Dark Knight", Year: 2008, Genres: "Action,Crime,Drama", Rating: 9.0, Votes: 2500000},
		{ID: "tt0096895", Title: "Batman", Year: 1989, Genres: "Action,Adventure", Rating: 7.5, Votes: 400000},
		{ID: "tt1877830", Title: "Batman", Year: 2022, Genres: "Action,Crime,Drama", Rating: 7.8, Votes: 800000},
		{ID: "tt9999901", Title: "Low Rated", Year: 2020, Genres: "Drama", Rating: 5.0, Votes: 100000},
	}
}
