package service

import (
	"math"
	"sort"
	"time"

	"github.com/vadim/engage-metric/internal/domain/engagement/entity"
	"github.com/vadim/engage-metric/internal/domain/engagement/sentiment"
)

// Config holds aggregation settings
type Config struct {
	TrendDays       int
	RecentPerBucket int
	RecentComments  int
	TopEngagers     int
	Location        *time.Location
	Now             func() time.Time
}

// Service runs the aggregation pipeline over raw spreadsheet rows. It holds
// no request state; every call allocates fresh accumulators.
type Service struct {
	norm *sentiment.Normalizer
	cfg  Config
}

// New creates an aggregation service
func New(norm *sentiment.Normalizer, cfg Config) *Service {
	if cfg.TrendDays <= 0 {
		cfg.TrendDays = 7
	}
	if cfg.RecentPerBucket <= 0 {
		cfg.RecentPerBucket = 6
	}
	if cfg.RecentComments <= 0 {
		cfg.RecentComments = 20
	}
	if cfg.TopEngagers <= 0 {
		cfg.TopEngagers = 5
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Service{norm: norm, cfg: cfg}
}

// BuildDashboard runs one full aggregation pass: comments rows fill the feed
// and reels buckets, mention rows fill the story bucket, and the union feeds
// the cross-bucket totals, the merged recent list, the leaderboard and the
// union-wide trend series.
func (s *Service) BuildDashboard(commentRows, mentionRows [][]string) *entity.Dashboard {
	feed, reels, commentsAll := s.aggregateComments(commentRows)
	story := s.aggregateMentions(mentionRows)

	union := make([]entity.Interaction, 0, len(commentsAll)+len(story.All))
	union = append(union, commentsAll...)
	union = append(union, story.All...)

	totals := entity.Totals{
		Positive: feed.Counts.Positive + reels.Counts.Positive + story.Counts.Positive,
		Neutral:  feed.Counts.Neutral + reels.Counts.Neutral + story.Counts.Neutral,
		Negative: feed.Counts.Negative + reels.Counts.Negative + story.Counts.Negative,
	}
	totals.Total = totals.Positive + totals.Neutral + totals.Negative

	var percentages entity.Percentages
	if totals.Total > 0 {
		percentages = entity.Percentages{
			Positive: roundPercent(totals.Positive, totals.Total),
			Neutral:  roundPercent(totals.Neutral, totals.Total),
			Negative: roundPercent(totals.Negative, totals.Total),
		}
	}

	overall := s.calcTrend(union)

	return &entity.Dashboard{
		Status:         "ok",
		Feed:           feed,
		Reels:          reels,
		Story:          story,
		Totals:         totals,
		Percentages:    percentages,
		Satisfaction:   percentages.Positive,
		RecentComments: s.mergeRecent(union),
		TopEngagers:    s.topEngagers(union),

		TotalTrendData:    overall.Total,
		PositiveTrendData: overall.Positive,
		NeutralTrendData:  overall.Neutral,
		NegativeTrendData: overall.Negative,
		TrendChange:       overall.Change,
	}
}

// mergeRecent merges interactions across buckets, most recent first, and
// truncates to the display count. Rows with unparseable dates sort last.
func (s *Service) mergeRecent(items []entity.Interaction) []entity.Interaction {
	merged := make([]entity.Interaction, len(items))
	copy(merged, items)

	sort.SliceStable(merged, func(i, j int) bool {
		ti, _ := merged[i].Timestamp(s.cfg.Location)
		tj, _ := merged[j].Timestamp(s.cfg.Location)
		return ti.After(tj)
	})

	if len(merged) > s.cfg.RecentComments {
		merged = merged[:s.cfg.RecentComments]
	}
	return merged
}

// roundPercent computes round(part/total*100), half away from zero
func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
