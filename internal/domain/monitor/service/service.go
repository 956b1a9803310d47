package service

import (
	"math"
	"strings"
	"time"

	engagement "github.com/vadim/engage-metric/internal/domain/engagement/entity"
	engagementsvc "github.com/vadim/engage-metric/internal/domain/engagement/service"
	"github.com/vadim/engage-metric/internal/domain/engagement/sentiment"
	"github.com/vadim/engage-metric/internal/domain/monitor/entity"
)

const lastEngagementLayout = "02/01/2006"

// Service resolves a free-text query against the comments sheet into one
// user's interaction history. It reuses the same sentiment normalizer as the
// dashboard pipeline so both surfaces classify a row identically.
type Service struct {
	norm *sentiment.Normalizer
	loc  *time.Location
}

// New creates a lookup service
func New(norm *sentiment.Normalizer, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{norm: norm, loc: loc}
}

// Lookup matches rows against the query and aggregates the result. Query
// dispatch: leading "@" matches the username case-insensitively with the
// "@" stripped; a query containing "." matches the username exactly;
// anything else matches the lead-id column.
func (s *Service) Lookup(query string, rows [][]string) *entity.LookupResult {
	if len(rows) < 2 {
		return &entity.LookupResult{Found: false}
	}

	h := engagementsvc.IndexHeader(rows[0])
	idxUser := h.Lookup(engagementsvc.ColUsername)
	idxLead := h.Lookup(engagementsvc.ColLeadID)
	idxType := h.Lookup(engagementsvc.ColPublicationType)
	idxText := h.Lookup(engagementsvc.ColCommentText)
	idxSent := h.Lookup(engagementsvc.ColSentiment)
	idxDate := h.Lookup(engagementsvc.ColDate)
	idxTime := h.Lookup(engagementsvc.ColTime)

	matches := func(row []string) bool {
		username := engagementsvc.Cell(row, idxUser)
		switch {
		case strings.HasPrefix(query, "@"):
			return strings.EqualFold(username, strings.TrimPrefix(query, "@"))
		case strings.Contains(query, "."):
			return username == query
		default:
			return engagementsvc.Cell(row, idxLead) == query
		}
	}

	var (
		interactions []entity.Interaction
		counts       engagement.SentimentCounts
		username     string
		lastSeen     time.Time
		lastOK       bool
	)

	for _, row := range rows[1:] {
		if !matches(row) {
			continue
		}

		text := engagementsvc.Cell(row, idxText)
		sent := s.norm.Classify(engagementsvc.Cell(row, idxSent), text)
		counts.Add(sent)

		date := engagementsvc.Cell(row, idxDate)
		if t, ok := engagement.ParseDate(date, s.loc); ok && (!lastOK || t.After(lastSeen)) {
			lastSeen = t
			lastOK = true
		}

		if username == "" {
			username = strings.TrimPrefix(engagementsvc.Cell(row, idxUser), "@")
		}

		interactions = append(interactions, entity.Interaction{
			ID:        len(interactions) + 1,
			Type:      strings.ToLower(engagementsvc.Cell(row, idxType)),
			Sentiment: sent,
			Text:      text,
			Date:      date,
			Time:      engagementsvc.Cell(row, idxTime),
		})
	}

	total := counts.Total()
	if total == 0 {
		return &entity.LookupResult{Found: false}
	}

	lastEngagement := ""
	if lastOK {
		lastEngagement = lastSeen.Format(lastEngagementLayout)
	}

	return &entity.LookupResult{
		Found: true,
		Profile: &entity.Profile{
			InstagramHandle:   "@" + username,
			Name:              username,
			TotalInteractions: total,
			LastEngagement:    lastEngagement,
			Sentiment: entity.SentimentSplit{
				Positive: percent(counts.Positive, total),
				Neutral:  percent(counts.Neutral, total),
				Negative: percent(counts.Negative, total),
			},
			Interactions: interactions,
		},
	}
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
