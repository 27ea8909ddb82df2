package classify

import "strings"

// EmotionUnknown is the fail-closed label: classification errors and empty
// input degrade to it rather than propagating.
const EmotionUnknown = "unknown"

// EmotionVocabulary is the fixed label set, in canonical order. Tie-breaks
// across the codebase resolve toward the earlier label.
var EmotionVocabulary = []string{"joy", "sadness", "anger", "fear", "love", "surprise"}

// Polarity is a sentiment classification outcome.
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
)

// NormalizeEmotion maps a raw label onto the fixed vocabulary, falling back
// to EmotionUnknown for anything unrecognized.
func NormalizeEmotion(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	for _, known := range EmotionVocabulary {
		if label == known {
			return known
		}
	}
	return EmotionUnknown
}
