package textutil

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var (
	folder            = cases.Fold()
	whitespacePattern = regexp.MustCompile(`\s+`)
	tokenSplitPattern = regexp.MustCompile(`[^a-z0-9']+`)
)

// NormalizeTitle trims, collapses internal whitespace, and case-folds a title
// for use as a lookup key. Folding handles caseless comparison beyond ASCII.
func NormalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	title = whitespacePattern.ReplaceAllString(title, " ")
	return folder.String(title)
}

// FoldEqual reports whether two strings are equal under case folding.
func FoldEqual(a, b string) bool {
	return folder.String(strings.TrimSpace(a)) == folder.String(strings.TrimSpace(b))
}

// Tokenize splits free text into lowercase word tokens. Single-character
// tokens are dropped; apostrophes are kept so contractions survive intact.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	raw := tokenSplitPattern.Split(lowered, -1)
	terms := make([]string, 0, len(raw))
	for _, token := range raw {
		token = strings.Trim(token, "'")
		if len(token) < 2 {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}
