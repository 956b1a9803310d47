package entity

import "time"

// Sentiment is a canonical sentiment category. The serialized values are the
// Portuguese labels the dashboard UI renders.
type Sentiment string

const (
	SentimentPositive Sentiment = "positivo"
	SentimentNeutral  Sentiment = "neutro"
	SentimentNegative Sentiment = "negativo"
)

// PublicationType identifies where an interaction happened
type PublicationType string

const (
	PublicationFeed  PublicationType = "FEED"
	PublicationReels PublicationType = "REELS"
	PublicationStory PublicationType = "STORY"
)

// Interaction is one normalized engagement event read from the spreadsheet.
// Sentiment is always populated (neutral when the label was unrecognized).
type Interaction struct {
	Username  string          `json:"username"`
	Text      string          `json:"comentario"`
	Date      string          `json:"data"`
	Time      string          `json:"hora,omitempty"`
	Sentiment Sentiment       `json:"sentimento"`
	Type      PublicationType `json:"tipo"`
}

// Timestamp resolves the interaction's date and time into a point in time
// for sorting. The second return is false when the date cell is unparseable.
func (i Interaction) Timestamp(loc *time.Location) (time.Time, bool) {
	t, ok := ParseDate(i.Date, loc)
	if !ok {
		return time.Time{}, false
	}

	hour, minute := 0, 0
	if ht, err := time.Parse("15:04", i.Time); err == nil {
		hour, minute = ht.Hour(), ht.Minute()
	}

	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, loc), true
}

// dateLayouts are the formats the spreadsheet has been seen to contain.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"02/01/2006",
	"02/01/2006 15:04",
}

// ParseDate leniently parses a spreadsheet date cell in the given location.
// Returns false when no known layout matches.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DayKey formats a point in time as its calendar-day key (YYYY-MM-DD),
// time-of-day zeroed in the given location.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}
