package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"

	"github.com/vadim/engage-metric/internal/domain/engagement/entity"
)

// VADER compound score thresholds for the free-text fallback
const (
	positiveThreshold = 0.20
	negativeThreshold = -0.20
)

// Normalize maps a free-text sentiment label to a canonical category.
// Matching is case-insensitive and tolerates abbreviated labels ("pos",
// "POSITIVO", "muito positivo" all match). Anything unrecognized, including
// the empty string, is neutral: the sheet is filled by humans and automation
// alike, and a lenient default keeps the pipeline from ever rejecting a row.
func Normalize(label string) entity.Sentiment {
	s, _ := match(label)
	return s
}

func match(label string) (entity.Sentiment, bool) {
	s := strings.ToLower(label)
	switch {
	case strings.Contains(s, "pos"):
		return entity.SentimentPositive, true
	case strings.Contains(s, "neu"):
		return entity.SentimentNeutral, true
	case strings.Contains(s, "neg"):
		return entity.SentimentNegative, true
	}
	return entity.SentimentNeutral, false
}

// Normalizer classifies interactions. By default it only normalizes the
// label column; with the text fallback enabled it scores the comment text
// with VADER when the label yields no match.
type Normalizer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// New creates a label-only normalizer
func New() *Normalizer {
	return &Normalizer{}
}

// NewWithTextFallback creates a normalizer that falls back to VADER scoring
// of the comment text for unrecognized labels
func NewWithTextFallback() *Normalizer {
	return &Normalizer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Classify resolves the sentiment for one row: label first, then the text
// fallback when enabled, then the neutral default.
func (n *Normalizer) Classify(label, text string) entity.Sentiment {
	if s, ok := match(label); ok {
		return s
	}

	if n.analyzer != nil && text != "" {
		score := n.analyzer.PolarityScores(text).Compound
		switch {
		case score >= positiveThreshold:
			return entity.SentimentPositive
		case score <= negativeThreshold:
			return entity.SentimentNegative
		}
	}

	return entity.SentimentNeutral
}
