package usecase

import (
	"errors"
	"sync"

	"github.com/example/face-liveness/internal/liveness"
)

// MetricsSummary represents aggregated liveness-session insights for this
// process. Counters are in-memory only; nothing outlives the process.
type MetricsSummary struct {
	SessionsStarted   int64   `json:"sessions_started"`
	SessionsCompleted int64   `json:"sessions_completed"`
	SessionsFailed    int64   `json:"sessions_failed"`
	SessionsCancelled int64   `json:"sessions_cancelled"`
	PassRate          float64 `json:"pass_rate"`
	AverageConfidence float64 `json:"average_confidence"`
}

type sessionCounters struct {
	mu            sync.Mutex
	started       int64
	completed     int64
	failed        int64
	cancelled     int64
	passed        int64
	confidenceSum float64
}

func (c *sessionCounters) recordStart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started++
}

func (c *sessionCounters) recordOutcome(verdict *liveness.Verdict, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		if errors.Is(err, liveness.ErrCancelled) {
			c.cancelled++
		} else {
			c.failed++
		}
		return
	}
	c.completed++
	if verdict.IsLive {
		c.passed++
	}
	c.confidenceSum += float64(verdict.ConfidencePercentage) / 100
}

// GetMetricsSummary aggregates session metrics recorded by this process.
func (uc *LivenessUseCase) GetMetricsSummary() MetricsSummary {
	c := &uc.counters
	c.mu.Lock()
	defer c.mu.Unlock()

	summary := MetricsSummary{
		SessionsStarted:   c.started,
		SessionsCompleted: c.completed,
		SessionsFailed:    c.failed,
		SessionsCancelled: c.cancelled,
	}
	if c.completed > 0 {
		summary.PassRate = float64(c.passed) / float64(c.completed)
		summary.AverageConfidence = c.confidenceSum / float64(c.completed)
	}
	return summary
}
