package resolve_test

import (
	"errors"
	"testing"

	"moviematch/internal/resolve"
	"moviematch/internal/services"
	"moviematch/internal/testsupport"
)

func TestCandidatesUnknownTitle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	index := testsupport.MustLoadCatalog(t, cfg, testsupport.SampleMovies()...)

	_, err := resolve.Candidates(index, "Not A Movie")
	if !errors.Is(err, services.ErrTitleNotFound) {
		t.Fatalf("expected title-not-found error, got %v", err)
	}
}

func TestCandidatesSingleMatchResolvesAutomatically(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	index := testsupport.MustLoadCatalog(t, cfg, testsupport.SampleMovies()...)

	candidates, err := resolve.Candidates(index, "the godfather")
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected single candidate, got %d", len(candidates))
	}

	// Selection value is irrelevant when only one candidate exists.
	entry, err := resolve.Pick(candidates, 99)
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if entry.ID != "tt0068646" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestPickDisambiguatesByIndex(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	index := testsupport.MustLoadCatalog(t, cfg, testsupport.SampleMovies()...)

	candidates, err := resolve.Candidates(index, "Batman")
	if err != nil {
		t.Fatalf("Candidates: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 Batman candidates, got %d", len(candidates))
	}

	entry, err := resolve.Pick(candidates, 2)
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if entry.Year != 2022 {
		t.Fatalf("selection 2 should be the 2022 entry, got %d", entry.Year)
	}

	if _, err := resolve.Pick(candidates, 3); !errors.Is(err, services.ErrSelectionOutOfRange) {
		t.Fatalf("expected selection-out-of-range error, got %v", err)
	}
	if _, err := resolve.Pick(candidates, 0); !errors.Is(err, services.ErrSelectionOutOfRange) {
		t.Fatalf("expected selection-out-of-range error for zero, got %v", err)
	}
}
