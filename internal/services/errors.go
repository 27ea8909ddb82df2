package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCatalogLoad marks a failure to read or parse the catalog sources.
	// Fatal: the process cannot operate without a catalog.
	ErrCatalogLoad = errors.New("catalog load error")
	// ErrTitleNotFound marks a title lookup that matched no catalog entry.
	ErrTitleNotFound = errors.New("title not found")
	// ErrSelectionOutOfRange marks a disambiguation index outside the
	// candidate count.
	ErrSelectionOutOfRange = errors.New("selection out of range")
	// ErrInsufficientData marks an operation that requires a non-empty
	// watched list.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrNotInWatchLater marks a removal or promotion of an entry the
	// watch-later list does not contain.
	ErrNotInWatchLater = errors.New("not in watch later list")
	// ErrTransient marks recoverable collaborator failures (network,
	// inference). These degrade output quality and are never fatal.
	ErrTransient = errors.New("transient failure")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Recoverable reports whether the interaction layer should re-prompt rather
// than abort. Catalog load failures are the only fatal class.
func Recoverable(err error) bool {
	if err == nil {
		return true
	}
	return !errors.Is(err, ErrCatalogLoad)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
