package service

import (
	"strings"

	"github.com/vadim/engage-metric/internal/domain/engagement/entity"
)

// Column names as they appear in the spreadsheet header rows
const (
	ColSentiment       = "sentimento"
	ColCommentText     = "conteudo_do_comentario"
	ColUsername        = "username_do_lead"
	ColPublicationType = "tipo_de_publicacao"
	ColDate            = "data"
	ColTime            = "hora"
	ColLeadID          = "id_do_lead"
	ColReplyText       = "resposta_ia"
	ColStoryUsername   = "username (quando já tivermos salvo)"
)

// Header maps trimmed, lowercased column names to their index
type Header map[string]int

// IndexHeader builds a Header from a raw header row. Lookup is an exact
// match after trimming and lowercasing, no fuzzy matching.
func IndexHeader(row []string) Header {
	h := make(Header, len(row))
	for i, name := range row {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, ok := h[name]; !ok {
			h[name] = i
		}
	}
	return h
}

// Lookup returns the column index for name, or -1 when absent
func (h Header) Lookup(name string) int {
	if i, ok := h[name]; ok {
		return i
	}
	return -1
}

// Cell reads a cell by index. Reads at -1 or past the row's length yield the
// empty string, never a panic: data rows are routinely shorter than the
// header.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// classifyComment turns one comments-sheet row into an interaction record
func (s *Service) classifyComment(h Header, row []string) entity.Interaction {
	return entity.Interaction{
		Username:  Cell(row, h.Lookup(ColUsername)),
		Text:      Cell(row, h.Lookup(ColCommentText)),
		Date:      Cell(row, h.Lookup(ColDate)),
		Time:      Cell(row, h.Lookup(ColTime)),
		Sentiment: s.norm.Classify(Cell(row, h.Lookup(ColSentiment)), Cell(row, h.Lookup(ColCommentText))),
		Type:      entity.PublicationType(strings.ToUpper(Cell(row, h.Lookup(ColPublicationType)))),
	}
}

// classifyMention turns one mentions-sheet row into an interaction record.
// The sheet has no type column; everything in it is a story mention, and the
// text is the AI-generated reply.
func (s *Service) classifyMention(h Header, row []string) entity.Interaction {
	return entity.Interaction{
		Username:  Cell(row, h.Lookup(ColStoryUsername)),
		Text:      Cell(row, h.Lookup(ColReplyText)),
		Date:      Cell(row, h.Lookup(ColDate)),
		Time:      Cell(row, h.Lookup(ColTime)),
		Sentiment: s.norm.Classify(Cell(row, h.Lookup(ColSentiment)), Cell(row, h.Lookup(ColReplyText))),
		Type:      entity.PublicationStory,
	}
}
