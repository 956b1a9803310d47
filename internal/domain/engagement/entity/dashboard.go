package entity

// SentimentCounts accumulates per-category counts. All three keys are always
// present in the serialized form, zero-initialized.
type SentimentCounts struct {
	Positive int `json:"positivo"`
	Neutral  int `json:"neutro"`
	Negative int `json:"negativo"`
}

// Add increments the counter for the given sentiment
func (c *SentimentCounts) Add(s Sentiment) {
	switch s {
	case SentimentPositive:
		c.Positive++
	case SentimentNegative:
		c.Negative++
	default:
		c.Neutral++
	}
}

// Total returns the sum across all three categories
func (c SentimentCounts) Total() int {
	return c.Positive + c.Neutral + c.Negative
}

// TrendChange holds the today-vs-yesterday percentage delta per category.
// A category is 0 whenever yesterday's count was 0 (no divide-by-zero and,
// deliberately, a 0→N swing reports as 0%).
type TrendChange struct {
	Total    int `json:"total"`
	Positive int `json:"positivo"`
	Neutral  int `json:"neutro"`
	Negative int `json:"negativo"`
}

// Trend holds fixed-length rolling series, oldest-to-newest, one entry per
// calendar day ending today.
type Trend struct {
	Change   TrendChange `json:"trendChange"`
	Total    []int       `json:"totalTrendData"`
	Positive []int       `json:"positiveTrendData"`
	Neutral  []int       `json:"neutralTrendData"`
	Negative []int       `json:"negativeTrendData"`
}

// Bucket is the accumulator for one publication type. Recent is newest-first
// and truncated to the display limit; All keeps the full history for trend
// computation and is never truncated.
type Bucket struct {
	Counts SentimentCounts `json:"sentimentos"`
	Recent []Interaction   `json:"recentes"`
	All    []Interaction   `json:"-"`
	Trend  Trend           `json:"trends"`
}

// Totals holds cross-bucket sentiment totals
type Totals struct {
	Total    int `json:"total"`
	Positive int `json:"positivo"`
	Neutral  int `json:"neutro"`
	Negative int `json:"negativo"`
}

// Percentages holds cross-bucket sentiment shares as integer percentages
type Percentages struct {
	Positive int `json:"positivo"`
	Neutral  int `json:"neutro"`
	Negative int `json:"negativo"`
}

// Engager is one leaderboard entry. Username carries the "@" prefix.
type Engager struct {
	Username     string `json:"username"`
	Interactions int    `json:"interacoes"`
}

// Dashboard is the consolidated payload served to the UI. The top-level
// trend fields duplicate the union-wide series at the root; older UI builds
// read them from there.
type Dashboard struct {
	Status         string        `json:"status"`
	Feed           Bucket        `json:"feed"`
	Reels          Bucket        `json:"reels"`
	Story          Bucket        `json:"story"`
	Totals         Totals        `json:"totais"`
	Percentages    Percentages   `json:"percentuais"`
	Satisfaction   int           `json:"satisfacao"`
	RecentComments []Interaction `json:"recentComments"`
	TopEngagers    []Engager     `json:"top5Engagers"`

	TotalTrendData    []int       `json:"totalTrendData"`
	PositiveTrendData []int       `json:"positiveTrendData"`
	NeutralTrendData  []int       `json:"neutralTrendData"`
	NegativeTrendData []int       `json:"negativeTrendData"`
	TrendChange       TrendChange `json:"trendChange"`
}
