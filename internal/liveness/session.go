package liveness

import (
	"fmt"
	"sync"

	"github.com/example/face-liveness/internal/classifier"
)

// State is the lifecycle phase of a capture session.
type State string

const (
	StateIdle        State = "idle"
	StateCapturing   State = "capturing"
	StateAggregating State = "aggregating"
	StateCompleted   State = "completed"
	StateFailed      State = "failed"
	StateCancelled   State = "cancelled"
)

// Terminal reports whether no further rounds can run in this state.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateCancelled
}

// Session accumulates per-frame results for one verification run. It is
// owned exclusively by the controller while a run executes; all other
// readers see copies via Snapshot.
type Session struct {
	id string

	mu            sync.Mutex
	requiredCount int
	results       []classifier.FrameResult
	state         State
	verdict       *Verdict
	failure       string
}

// NewSession creates an idle session for the given target frame count.
func NewSession(id string, requiredCount int) *Session {
	return &Session{
		id:            id,
		requiredCount: requiredCount,
		state:         StateIdle,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Snapshot is an immutable copy of session state, safe to hand to readers
// while the run mutates the live session.
type Snapshot struct {
	SessionID     string                   `json:"session_id"`
	State         State                    `json:"state"`
	Completed     int                      `json:"completed"`
	RequiredCount int                      `json:"required_count"`
	Frames        []classifier.FrameResult `json:"frames,omitempty"`
	Verdict       *Verdict                 `json:"verdict,omitempty"`
	FailureReason string                   `json:"failure_reason,omitempty"`
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		SessionID:     s.id,
		State:         s.state,
		Completed:     len(s.results),
		RequiredCount: s.requiredCount,
		FailureReason: s.failure,
	}
	if len(s.results) > 0 {
		snap.Frames = append([]classifier.FrameResult(nil), s.results...)
	}
	if s.verdict != nil {
		v := *s.verdict
		snap.Verdict = &v
	}
	return snap
}

// reset prepares the session for a fresh run, discarding any previous
// results or verdict.
func (s *Session) reset(requiredCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requiredCount = requiredCount
	s.results = nil
	s.verdict = nil
	s.failure = ""
	s.state = StateCapturing
}

// append records one round's result, in capture order.
func (s *Session) append(result classifier.FrameResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.results) >= s.requiredCount {
		return fmt.Errorf("session %s already holds %d results", s.id, s.requiredCount)
	}
	s.results = append(s.results, result)
	return nil
}

// frames returns the accumulated results without copying. Controller use
// only, after the last round has completed.
func (s *Session) frames() []classifier.FrameResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

func (s *Session) complete(v *Verdict) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verdict = v
	s.state = StateCompleted
}

func (s *Session) fail(state State, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.failure = reason
}
