package main

import (
	"errors"
	"testing"

	"moviematch/internal/services"
)

func TestExitCode(t *testing.T) {
	catalogErr := services.Wrap(services.ErrCatalogLoad, "catalog", "load", "basics.tsv", nil)
	if got := exitCode(catalogErr); got != 2 {
		t.Fatalf("catalog load failure: expected exit code 2, got %d", got)
	}
	if got := exitCode(services.Wrap(services.ErrTitleNotFound, "resolve", "lookup", "title", nil)); got != 1 {
		t.Fatalf("recoverable failure: expected exit code 1, got %d", got)
	}
	if got := exitCode(errors.New("flag parse")); got != 1 {
		t.Fatalf("plain error: expected exit code 1, got %d", got)
	}
}
