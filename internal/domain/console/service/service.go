package service

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/vadim/engage-metric/internal/domain/console/entity"
)

// Service generates mocked infrastructure metrics for the NOC console page.
// Values jitter around stable baselines so the charts move between polls.
// This endpoint is intentionally randomized, unlike the aggregation
// endpoints.
type Service struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New creates a console metrics service
func New() *Service {
	return &Service{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Snapshot produces one console payload
func (s *Service) Snapshot() entity.Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	prodExecutions := 1200 + s.rnd.Intn(300)
	failedExecutions := s.rnd.Intn(25)
	failureRate := round1(float64(failedExecutions) / float64(prodExecutions) * 100)

	return entity.Metrics{
		Status: "ok",
		Hostinger: entity.HostingerMetrics{
			CPU:        25 + s.rnd.Intn(45),
			Memory:     40 + s.rnd.Intn(35),
			Disk:       55 + s.rnd.Intn(10),
			Bandwidth:  10 + s.rnd.Intn(60),
			TrafficIn:  round1(5 + s.rnd.Float64()*40),
			TrafficOut: round1(2 + s.rnd.Float64()*25),
		},
		N8N: entity.N8NMetrics{
			ProdExecutions:    prodExecutions,
			FailedExecutions:  failedExecutions,
			FailureRate:       failureRate,
			AvgRuntimeSeconds: round1(1.5 + s.rnd.Float64()*6),
			TimeSavedHours:    80 + s.rnd.Intn(40),
		},
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
