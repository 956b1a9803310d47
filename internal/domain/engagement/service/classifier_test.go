package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vadim/engage-metric/internal/domain/engagement/entity"
	"github.com/vadim/engage-metric/internal/domain/engagement/sentiment"
)

func TestIndexHeader(t *testing.T) {
	h := IndexHeader([]string{" Sentimento ", "CONTEUDO_DO_COMENTARIO", "data"})

	assert.Equal(t, 0, h.Lookup(ColSentiment))
	assert.Equal(t, 1, h.Lookup(ColCommentText))
	assert.Equal(t, 2, h.Lookup(ColDate))
	assert.Equal(t, -1, h.Lookup(ColUsername))
	assert.Equal(t, -1, h.Lookup("tipo_de_publicação")) // exact match only, no fuzz
}

func TestCell(t *testing.T) {
	row := []string{"a", "b"}

	assert.Equal(t, "a", Cell(row, 0))
	assert.Equal(t, "", Cell(row, -1))
	assert.Equal(t, "", Cell(row, 2))
	assert.Equal(t, "", Cell(nil, 0))
}

func TestClassifyComment(t *testing.T) {
	svc := New(sentiment.New(), Config{})
	h := IndexHeader([]string{ColSentiment, ColCommentText, ColUsername, ColPublicationType, ColDate, ColTime})

	t.Run("full row", func(t *testing.T) {
		item := svc.classifyComment(h, []string{"positivo", "Amei!", "joao", "feed", "2024-01-01", "10:00"})

		assert.Equal(t, entity.Interaction{
			Username:  "joao",
			Text:      "Amei!",
			Date:      "2024-01-01",
			Time:      "10:00",
			Sentiment: entity.SentimentPositive,
			Type:      entity.PublicationFeed,
		}, item)
	})

	t.Run("short row degrades to empty strings", func(t *testing.T) {
		item := svc.classifyComment(h, []string{"neg"})

		assert.Equal(t, entity.SentimentNegative, item.Sentiment)
		assert.Empty(t, item.Username)
		assert.Empty(t, item.Date)
		assert.Empty(t, string(item.Type))
	})

	t.Run("empty row is neutral", func(t *testing.T) {
		item := svc.classifyComment(h, nil)
		assert.Equal(t, entity.SentimentNeutral, item.Sentiment)
	})
}

func TestClassifyMention(t *testing.T) {
	svc := New(sentiment.New(), Config{})
	h := IndexHeader([]string{ColSentiment, ColReplyText, ColDate, ColStoryUsername})

	item := svc.classifyMention(h, []string{"neutro", "Obrigado pela menção!", "2024-01-02", "maria"})

	assert.Equal(t, entity.PublicationStory, item.Type)
	assert.Equal(t, "maria", item.Username)
	assert.Equal(t, "Obrigado pela menção!", item.Text)
	assert.Equal(t, entity.SentimentNeutral, item.Sentiment)
}
