package textutil_test

import (
	"reflect"
	"testing"

	"moviematch/internal/textutil"
)

func TestNormalizeTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  The Godfather  ", "the godfather"},
		{"BATMAN", "batman"},
		{"La\tDolce   Vita", "la dolce vita"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := textutil.NormalizeTitle(tc.in); got != tc.want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFoldEqual(t *testing.T) {
	if !textutil.FoldEqual("Batman", " batman ") {
		t.Fatal("expected fold-equal titles to match")
	}
	if textutil.FoldEqual("Batman", "Batman Returns") {
		t.Fatal("expected distinct titles not to match")
	}
}

func TestTokenize(t *testing.T) {
	got := textutil.Tokenize("I LOVED it, truly didn't expect that!")
	want := []string{"loved", "it", "truly", "didn't", "expect", "that"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := textutil.Tokenize("  ?! "); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
}
