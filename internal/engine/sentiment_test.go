package engine

import (
	"math"
	"testing"

	"github.com/brandpulse/brandpulse/internal/models"
)

func TestScoreEmptyText(t *testing.T) {
	s := NewScorer(ScorerOptions{})

	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace", text: "   \t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.Score(tt.text)
			if res.Score != 0 {
				t.Errorf("Score = %v, want 0", res.Score)
			}
			if res.Label != models.SentimentNeutral {
				t.Errorf("Label = %q, want neutral", res.Label)
			}
			if len(res.PositiveWords) != 0 || len(res.NegativeWords) != 0 {
				t.Errorf("Expected empty word lists, got %v / %v", res.PositiveWords, res.NegativeWords)
			}
		})
	}
}

func TestScoreLabels(t *testing.T) {
	s := NewScorer(ScorerOptions{})

	tests := []struct {
		name  string
		text  string
		label models.SentimentLabel
	}{
		{name: "clearly positive", text: "I love this store", label: models.SentimentPositive},
		{name: "clearly negative", text: "terrible quality, never again", label: models.SentimentNegative},
		{name: "weakly positive is neutral", text: "good", label: models.SentimentNeutral},
		{name: "no lexicon words", text: "the quarterly shipment arrived on a Tuesday", label: models.SentimentNeutral},
		{name: "punctuation and case ignored", text: "LOVE!!! This. Is. AMAZING?!", label: models.SentimentPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := s.Score(tt.text)
			if res.Label != tt.label {
				t.Errorf("Score(%q) label = %q (score %v), want %q", tt.text, res.Label, res.Score, tt.label)
			}
		})
	}
}

func TestScoreClampSaturates(t *testing.T) {
	s := NewScorer(ScorerOptions{})

	// raw score well past +5 must saturate at the boundary
	res := s.Score("amazing amazing amazing amazing amazing")
	if res.Score != SentimentMax {
		t.Errorf("Score = %v, want saturated %v", res.Score, SentimentMax)
	}
	if res.Label != models.SentimentPositive {
		t.Errorf("Label = %q, want positive", res.Label)
	}

	res = s.Score("terrible horrible awful worst disgusting")
	if res.Score != SentimentMin {
		t.Errorf("Score = %v, want saturated %v", res.Score, SentimentMin)
	}
	if res.Label != models.SentimentNegative {
		t.Errorf("Label = %q, want negative", res.Label)
	}
}

func TestScoreMatchedWordLists(t *testing.T) {
	s := NewScorer(ScorerOptions{})

	res := s.Score("I love the quality but the shipping was terrible")
	if len(res.PositiveWords) != 2 {
		t.Fatalf("PositiveWords = %v, want [love quality]", res.PositiveWords)
	}
	if res.PositiveWords[0] != "love" || res.PositiveWords[1] != "quality" {
		t.Errorf("PositiveWords = %v, want [love quality]", res.PositiveWords)
	}
	if len(res.NegativeWords) != 1 || res.NegativeWords[0] != "terrible" {
		t.Errorf("NegativeWords = %v, want [terrible]", res.NegativeWords)
	}

	// love(3) + quality(2) + terrible(-4) = 1
	if math.Abs(res.Score-1.0) > 1e-9 {
		t.Errorf("Score = %v, want 1.0", res.Score)
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := NewScorer(ScorerOptions{})
	const text = "gorgeous new spring collection, love it"

	first := s.Score(text)
	for i := 0; i < 10; i++ {
		again := s.Score(text)
		if again.Score != first.Score || again.Label != first.Label {
			t.Fatalf("Run %d diverged: %+v vs %+v", i, again, first)
		}
	}
}

func TestScoreCustomScale(t *testing.T) {
	// halving scale pulls a borderline-positive text into neutral
	s := NewScorer(ScorerOptions{Scale: 0.5})

	res := s.Score("love") // raw 3, scaled 1.5... still >= 1.5
	if res.Label != models.SentimentPositive {
		t.Errorf("Label = %q (score %v), want positive at exactly the threshold", res.Label, res.Score)
	}

	res = s.Score("great") // raw 2, scaled 1.0
	if res.Label != models.SentimentNeutral {
		t.Errorf("Label = %q (score %v), want neutral", res.Label, res.Score)
	}
}
