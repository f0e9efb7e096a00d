package engine

import (
	"strings"
	"unicode"

	"github.com/brandpulse/brandpulse/internal/models"
)

// Sentiment score bounds
const (
	SentimentMin = -5.0
	SentimentMax = 5.0
)

// SentimentResult is the scored classification of one text
type SentimentResult struct {
	Score         float64
	Label         models.SentimentLabel
	PositiveWords []string
	NegativeWords []string
}

// Scorer classifies free text with a word-polarity lexicon. Scoring is
// deterministic: the same text always yields the same result.
type Scorer struct {
	lexicon           map[string]float64
	positiveThreshold float64
	negativeThreshold float64
	scale             float64
}

// ScorerOptions configures a Scorer
type ScorerOptions struct {
	// PositiveThreshold/NegativeThreshold bound the neutral band.
	PositiveThreshold float64
	NegativeThreshold float64
	// Scale multiplies the raw lexicon sum before clamping. The bulk
	// recalculation convention (identity) is the single normalization
	// used everywhere.
	Scale float64
	// Lexicon overrides the built-in word valences when non-nil.
	Lexicon map[string]float64
}

// NewScorer creates a scorer; zero options fall back to defaults
func NewScorer(opts ScorerOptions) *Scorer {
	if opts.PositiveThreshold == 0 {
		opts.PositiveThreshold = 1.5
	}
	if opts.NegativeThreshold == 0 {
		opts.NegativeThreshold = -1.5
	}
	if opts.Scale == 0 {
		opts.Scale = 1.0
	}
	lex := opts.Lexicon
	if lex == nil {
		lex = defaultLexicon
	}
	return &Scorer{
		lexicon:           lex,
		positiveThreshold: opts.PositiveThreshold,
		negativeThreshold: opts.NegativeThreshold,
		scale:             opts.Scale,
	}
}

// Score classifies text into a clamped score and three-way label.
// Empty or whitespace-only text scores zero without a lexicon pass.
func (s *Scorer) Score(text string) SentimentResult {
	if strings.TrimSpace(text) == "" {
		return SentimentResult{Label: models.SentimentNeutral}
	}

	var raw float64
	var positive, negative []string
	for _, word := range tokenize(text) {
		valence, ok := s.lexicon[word]
		if !ok {
			continue
		}
		raw += valence
		if valence > 0 {
			positive = append(positive, word)
		} else if valence < 0 {
			negative = append(negative, word)
		}
	}

	score := clamp(raw*s.scale, SentimentMin, SentimentMax)

	label := models.SentimentNeutral
	switch {
	case score >= s.positiveThreshold:
		label = models.SentimentPositive
	case score <= s.negativeThreshold:
		label = models.SentimentNegative
	}

	return SentimentResult{
		Score:         score,
		Label:         label,
		PositiveWords: positive,
		NegativeWords: negative,
	}
}

// tokenize lowercases and splits on anything that is not a letter,
// digit or apostrophe, so "Love!" and "love" hit the same lexicon key.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
