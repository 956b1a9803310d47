package entity

import (
	"errors"

	engagement "github.com/vadim/engage-metric/internal/domain/engagement/entity"
)

// ErrQueryMissing is returned when the lookup query is empty
var ErrQueryMissing = errors.New("q is required")

// Interaction is one matched row in a user's history
type Interaction struct {
	ID        int                  `json:"id"`
	Type      string               `json:"type"`
	Sentiment engagement.Sentiment `json:"sentiment"`
	Text      string               `json:"text"`
	Date      string               `json:"date"`
	Time      string               `json:"time"`
}

// SentimentSplit holds a user's sentiment distribution as integer
// percentages, all zero when the user has no interactions
type SentimentSplit struct {
	Positive int `json:"positivo"`
	Neutral  int `json:"neutro"`
	Negative int `json:"negativo"`
}

// Profile is the aggregate view of one user's engagement history
type Profile struct {
	InstagramHandle   string         `json:"instagram_handle"`
	Name              string         `json:"name"`
	TotalInteractions int            `json:"totalInteractions"`
	LastEngagement    string         `json:"lastEngagement"`
	Sentiment         SentimentSplit `json:"sentiment"`
	Interactions      []Interaction  `json:"interactions"`
}

// LookupResult is the lookup response. A query matching zero rows is a
// successful lookup with Found=false, not an error.
type LookupResult struct {
	Found   bool     `json:"found"`
	Profile *Profile `json:"profile,omitempty"`
}
