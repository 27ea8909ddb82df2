package classify_test

import (
	"testing"

	"moviematch/internal/classify"
)

func TestLexiconEmotion(t *testing.T) {
	lex := classify.NewLexicon()
	cases := []struct {
		name string
		text string
		want string
	}{
		{"joy", "hilarious and fun from start to finish", "joy"},
		{"sadness", "I cried, such a heartbreaking and tragic story", "sadness"},
		{"fear", "genuinely terrifying, pure creeping dread", "fear"},
		{"love", "a tender, heartwarming romantic story", "love"},
		{"surprise", "that twist was completely unexpected", "surprise"},
		{"no keywords", "the runtime is two hours", classify.EmotionUnknown},
		{"empty", "", classify.EmotionUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := lex.Emotion(tc.text); got != tc.want {
				t.Fatalf("Emotion(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestLexiconEmotionTieBreaksByVocabularyOrder(t *testing.T) {
	lex := classify.NewLexicon()
	// One joy keyword, one sadness keyword: joy is earlier in the vocabulary.
	if got := lex.Emotion("funny yet tragic"); got != "joy" {
		t.Fatalf("expected joy on tie, got %q", got)
	}
}

func TestLexiconSentiment(t *testing.T) {
	lex := classify.NewLexicon()
	cases := []struct {
		name string
		text string
		want classify.Polarity
	}{
		{"positive", "an excellent, gripping masterpiece", classify.PolarityPositive},
		{"negative", "boring and predictable, a waste", classify.PolarityNegative},
		{"mixed leans positive", "great acting despite a weak script, loved it", classify.PolarityPositive},
		{"tie defaults negative", "great but terrible", classify.PolarityNegative},
		{"neutral defaults negative", "it has a plot and actors", classify.PolarityNegative},
		{"empty defaults negative", "", classify.PolarityNegative},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := lex.Sentiment(tc.text); got != tc.want {
				t.Fatalf("Sentiment(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestLexiconDeterministic(t *testing.T) {
	lex := classify.NewLexicon()
	text := "a heartbreaking but beautiful film, loved every minute"
	first := lex.Emotion(text)
	for i := 0; i < 5; i++ {
		if got := lex.Emotion(text); got != first {
			t.Fatalf("classification drifted: %q then %q", first, got)
		}
	}
}
