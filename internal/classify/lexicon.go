package classify

import (
	"moviematch/internal/textutil"
)

// Lexicon classifies text by keyword lookup. It is deterministic, needs no
// network, and always produces an answer.
type Lexicon struct{}

// NewLexicon returns the offline classifier.
func NewLexicon() *Lexicon {
	return &Lexicon{}
}

// emotionKeywords maps review vocabulary onto the fixed emotion labels.
var emotionKeywords = map[string]string{
	"happy": "joy", "fun": "joy", "delightful": "joy", "joy": "joy",
	"hilarious": "joy", "uplifting": "joy", "charming": "joy",
	"laughed": "joy", "funny": "joy", "cheerful": "joy", "feelgood": "joy",

	"sad": "sadness", "cried": "sadness", "tears": "sadness",
	"heartbreaking": "sadness", "tragic": "sadness", "depressing": "sadness",
	"melancholy": "sadness", "grief": "sadness", "mourning": "sadness",
	"devastating": "sadness", "sorrow": "sadness",

	"angry": "anger", "furious": "anger", "infuriating": "anger",
	"rage": "anger", "outrage": "anger", "hate": "anger",
	"annoying": "anger", "frustrating": "anger", "insulting": "anger",

	"scary": "fear", "terrifying": "fear", "frightening": "fear",
	"dread": "fear", "horror": "fear", "creepy": "fear",
	"chilling": "fear", "tense": "fear", "unsettling": "fear",
	"nightmare": "fear",

	"love": "love", "loved": "love", "romantic": "love",
	"touching": "love", "tender": "love", "heartwarming": "love",
	"beautiful": "love", "adore": "love", "moving": "love",

	"surprising": "surprise", "twist": "surprise", "unexpected": "surprise",
	"shocking": "surprise", "stunned": "surprise", "unpredictable": "surprise",
	"astonishing": "surprise", "jaw": "surprise",
}

var positiveWords = map[string]struct{}{
	"great": {}, "good": {}, "excellent": {}, "amazing": {}, "masterpiece": {},
	"wonderful": {}, "best": {}, "brilliant": {}, "perfect": {}, "loved": {},
	"love": {}, "favorite": {}, "fantastic": {}, "incredible": {},
	"beautiful": {}, "superb": {}, "enjoyed": {}, "stunning": {},
	"outstanding": {}, "compelling": {}, "gripping": {}, "captivating": {},
	"recommend": {}, "rewatch": {}, "flawless": {}, "unforgettable": {},
}

var negativeWords = map[string]struct{}{
	"bad": {}, "terrible": {}, "awful": {}, "boring": {}, "worst": {},
	"hated": {}, "hate": {}, "disappointing": {}, "disappointment": {},
	"dull": {}, "mess": {}, "waste": {}, "poor": {}, "weak": {},
	"mediocre": {}, "forgettable": {}, "predictable": {}, "overrated": {},
	"tedious": {}, "lifeless": {}, "unwatchable": {}, "pointless": {},
}

// Emotion returns the dominant emotion label for the text, or EmotionUnknown
// when no keyword hits. Ties resolve toward the earlier vocabulary label.
func (l *Lexicon) Emotion(text string) string {
	counts := make(map[string]int)
	for _, token := range textutil.Tokenize(text) {
		if label, ok := emotionKeywords[token]; ok {
			counts[label]++
		}
	}

	best := EmotionUnknown
	bestCount := 0
	for _, label := range EmotionVocabulary {
		if counts[label] > bestCount {
			best = label
			bestCount = counts[label]
		}
	}
	return best
}

// Sentiment scores the text against the polarity wordlists. A tie or a text
// with no polarity words classifies as negative; positive is never assumed.
func (l *Lexicon) Sentiment(text string) Polarity {
	score := 0
	for _, token := range textutil.Tokenize(text) {
		if _, ok := positiveWords[token]; ok {
			score++
		}
		if _, ok := negativeWords[token]; ok {
			score--
		}
	}
	if score > 0 {
		return PolarityPositive
	}
	return PolarityNegative
}
