package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vadim/engage-metric/internal/domain/engagement/entity"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  entity.Sentiment
	}{
		{"full label", "positivo", entity.SentimentPositive},
		{"uppercase", "POSITIVO", entity.SentimentPositive},
		{"english", "Positive", entity.SentimentPositive},
		{"three letter prefix", "pos", entity.SentimentPositive},
		{"embedded", "muito positivo", entity.SentimentPositive},
		{"neutral", "neutro", entity.SentimentNeutral},
		{"neutral prefix", "NEU", entity.SentimentNeutral},
		{"negative", "negativo", entity.SentimentNegative},
		{"negative prefix", "neg", entity.SentimentNegative},
		{"empty", "", entity.SentimentNeutral},
		{"garbage", "???", entity.SentimentNeutral},
		{"unrelated word", "ótimo", entity.SentimentNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.label))
		})
	}
}

func TestClassifyWithoutFallback(t *testing.T) {
	n := New()

	// Unrecognized labels stay neutral no matter how charged the text is
	assert.Equal(t, entity.SentimentNeutral, n.Classify("", "I love this, amazing work, wonderful!"))
	assert.Equal(t, entity.SentimentNeutral, n.Classify("???", "terrible, horrible, I hate it"))

	// A recognized label always wins
	assert.Equal(t, entity.SentimentNegative, n.Classify("negativo", "I love this"))
}

func TestClassifyWithTextFallback(t *testing.T) {
	n := NewWithTextFallback()

	assert.Equal(t, entity.SentimentPositive, n.Classify("", "I love this, amazing work, wonderful!"))
	assert.Equal(t, entity.SentimentNegative, n.Classify("", "terrible, horrible, I hate it"))
	assert.Equal(t, entity.SentimentNeutral, n.Classify("", "the post was published on monday"))

	// Label still takes precedence over the text
	assert.Equal(t, entity.SentimentNegative, n.Classify("negativo", "I love this, amazing!"))
}
