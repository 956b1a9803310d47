package service

import (
	"math"
	"time"

	"github.com/vadim/engage-metric/internal/domain/engagement/entity"
)

type dayCounts struct {
	total    int
	positive int
	neutral  int
	negative int
}

// calcTrend groups interactions by calendar day and emits the rolling series
// for the window ending today, oldest first, plus the today-vs-yesterday
// percentage change per category. Records with unparseable dates are skipped.
func (s *Service) calcTrend(items []entity.Interaction) entity.Trend {
	loc := s.cfg.Location

	perDay := make(map[string]*dayCounts)
	for _, item := range items {
		t, ok := entity.ParseDate(item.Date, loc)
		if !ok {
			continue
		}

		key := entity.DayKey(t, loc)
		dc := perDay[key]
		if dc == nil {
			dc = &dayCounts{}
			perDay[key] = dc
		}

		dc.total++
		switch item.Sentiment {
		case entity.SentimentPositive:
			dc.positive++
		case entity.SentimentNegative:
			dc.negative++
		default:
			dc.neutral++
		}
	}

	now := s.cfg.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	trend := entity.Trend{
		Total:    make([]int, 0, s.cfg.TrendDays),
		Positive: make([]int, 0, s.cfg.TrendDays),
		Neutral:  make([]int, 0, s.cfg.TrendDays),
		Negative: make([]int, 0, s.cfg.TrendDays),
	}

	for i := s.cfg.TrendDays - 1; i >= 0; i-- {
		dc := perDay[entity.DayKey(today.AddDate(0, 0, -i), loc)]
		if dc == nil {
			dc = &dayCounts{}
		}
		trend.Total = append(trend.Total, dc.total)
		trend.Positive = append(trend.Positive, dc.positive)
		trend.Neutral = append(trend.Neutral, dc.neutral)
		trend.Negative = append(trend.Negative, dc.negative)
	}

	todayCounts := perDay[entity.DayKey(today, loc)]
	if todayCounts == nil {
		todayCounts = &dayCounts{}
	}
	yesterdayCounts := perDay[entity.DayKey(today.AddDate(0, 0, -1), loc)]
	if yesterdayCounts == nil {
		yesterdayCounts = &dayCounts{}
	}

	trend.Change = entity.TrendChange{
		Total:    percentChange(todayCounts.total, yesterdayCounts.total),
		Positive: percentChange(todayCounts.positive, yesterdayCounts.positive),
		Neutral:  percentChange(todayCounts.neutral, yesterdayCounts.neutral),
		Negative: percentChange(todayCounts.negative, yesterdayCounts.negative),
	}

	return trend
}

// percentChange is the day-over-day delta as an integer percentage, rounded
// half away from zero, not clamped. Zero when yesterday is zero: "no prior
// data" and "no change from zero" report identically.
func percentChange(today, yesterday int) int {
	if yesterday == 0 {
		return 0
	}
	return int(math.Round(float64(today-yesterday) / float64(yesterday) * 100))
}
