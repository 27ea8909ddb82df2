// Package resolve turns an ambiguous title into a single catalog entry.
// Resolution is a pure decision: multiple candidates require an explicit
// selection and a bad selection fails with a sentinel. Re-prompt looping
// belongs to the interaction layer, never to this package.
package resolve

import (
	"fmt"

	"moviematch/internal/catalog"
	"moviematch/internal/services"
)

// Candidates looks the title up and returns the matching entries ordered by
// year ascending. Zero matches fail with services.ErrTitleNotFound.
func Candidates(index *catalog.Index, title string) ([]catalog.Entry, error) {
	matches := index.FindByTitle(title)
	if len(matches) == 0 {
		return nil, services.Wrap(services.ErrTitleNotFound, "resolve", "lookup", title, nil)
	}
	return matches, nil
}

// Pick selects one candidate by 1-based index. A single candidate resolves
// automatically regardless of selection; out-of-range selections fail with
// services.ErrSelectionOutOfRange.
func Pick(candidates []catalog.Entry, selection int) (catalog.Entry, error) {
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	if selection < 1 || selection > len(candidates) {
		return catalog.Entry{}, services.Wrap(services.ErrSelectionOutOfRange, "resolve", "pick",
			fmt.Sprintf("selection %d of %d candidates", selection, len(candidates)), nil)
	}
	return candidates[selection-1], nil
}
