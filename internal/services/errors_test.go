package services_test

import (
	"errors"
	"strings"
	"testing"

	"moviematch/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	inner := errors.New("boom")
	err := services.Wrap(services.ErrTitleNotFound, "catalog", "find", "no match", inner)
	if !errors.Is(err, services.ErrTitleNotFound) {
		t.Fatalf("expected marker to survive wrapping: %v", err)
	}
	if !errors.Is(err, inner) {
		t.Fatalf("expected inner error to survive wrapping: %v", err)
	}
	if !strings.Contains(err.Error(), "catalog: find: no match") {
		t.Fatalf("unexpected detail: %v", err)
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("unexpected detail: %v", err)
	}
}

func TestRecoverable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"catalog load", services.Wrap(services.ErrCatalogLoad, "catalog", "load", "", nil), false},
		{"title not found", services.Wrap(services.ErrTitleNotFound, "catalog", "find", "", nil), true},
		{"selection", services.Wrap(services.ErrSelectionOutOfRange, "resolve", "pick", "", nil), true},
		{"insufficient data", services.Wrap(services.ErrInsufficientData, "profile", "derive", "", nil), true},
		{"not in watch later", services.Wrap(services.ErrNotInWatchLater, "library", "promote", "", nil), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := services.Recoverable(tc.err); got != tc.want {
				t.Fatalf("Recoverable(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
