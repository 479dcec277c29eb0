package liveness

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/example/face-liveness/internal/capture"
	"github.com/example/face-liveness/internal/classifier"
	"github.com/example/face-liveness/internal/logging"
)

// Config holds the knobs for one capture run.
type Config struct {
	RequiredCount            int
	MinInterval              time.Duration
	MaxInterval              time.Duration
	SpoofConfidenceThreshold float64
	MinLiveCount             int
}

// DefaultConfig returns the stock six-round configuration.
func DefaultConfig() Config {
	return Config{
		RequiredCount:            6,
		MinInterval:              700 * time.Millisecond,
		MaxInterval:              1500 * time.Millisecond,
		SpoofConfidenceThreshold: DefaultSpoofConfidenceThreshold,
		MinLiveCount:             DefaultMinLiveCount,
	}
}

// Validate enforces the run preconditions.
func (c Config) Validate() error {
	if c.RequiredCount < 1 {
		return fmt.Errorf("required count must be >= 1, got %d", c.RequiredCount)
	}
	if c.MinInterval < 0 {
		return fmt.Errorf("min interval must be >= 0, got %v", c.MinInterval)
	}
	if c.MaxInterval < c.MinInterval {
		return fmt.Errorf("max interval %v below min interval %v", c.MaxInterval, c.MinInterval)
	}
	return nil
}

// Reporter receives progress events and the final outcome of a run.
type Reporter interface {
	OnProgress(completed, total int)
	OnFailure(reason error)
	OnVerdict(v *Verdict)
}

// Controller drives the capture sequence for one session: a fixed number of
// rounds, each an optional jittered wait followed by one capture request and
// one classification request. A single capture or classification failure
// terminates the whole run. At most one run executes at a time.
type Controller struct {
	trigger    capture.Trigger
	classifier classifier.Client
	reporter   Reporter
	logger     *zap.Logger
	session    *Session

	mu      sync.Mutex
	running bool

	// Overridable in tests.
	interval func(min, max time.Duration) time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewController builds a controller owning a fresh session.
func NewController(sessionID string, trigger capture.Trigger, client classifier.Client, reporter Reporter, logger *zap.Logger) *Controller {
	return &Controller{
		trigger:    trigger,
		classifier: client,
		reporter:   reporter,
		logger:     logger,
		session:    NewSession(sessionID, 0),
		interval:   drawInterval,
		sleep:      sleepContext,
	}
}

// Snapshot returns an immutable copy of the owned session's state.
func (c *Controller) Snapshot() Snapshot {
	return c.session.Snapshot()
}

// Run executes the full capture sequence and returns the verdict. Calling
// Run on a controller whose previous run finished resets the session first;
// calling it while a run is executing fails with ErrRunInProgress.
func (c *Controller) Run(ctx context.Context, cfg Config) (*Verdict, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return nil, ErrRunInProgress
	}
	c.running = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.running = false
		c.mu.Unlock()
	}()

	c.session.reset(cfg.RequiredCount)
	opLogger := logging.WithOperation(c.logger, "liveness.run", c.session.ID())

	for round := 1; round <= cfg.RequiredCount; round++ {
		if round > 1 {
			// Jittered wait so the capture cadence cannot be anticipated.
			wait := c.interval(cfg.MinInterval, cfg.MaxInterval)
			if err := c.sleep(ctx, wait); err != nil {
				return nil, c.cancelRun(opLogger, err)
			}
		}

		frame, err := c.trigger.Capture(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, c.cancelRun(opLogger, ctx.Err())
			}
			return nil, c.failRun(opLogger, &CaptureError{Round: round, Err: err})
		}

		result, err := c.classifier.Classify(ctx, c.session.ID(), round, frame)
		if err != nil {
			if ctx.Err() != nil {
				return nil, c.cancelRun(opLogger, ctx.Err())
			}
			return nil, c.failRun(opLogger, &ClassificationError{Round: round, Err: err})
		}
		if err := result.Validate(); err != nil {
			return nil, c.failRun(opLogger, &ClassificationError{Round: round, Err: err})
		}

		if err := c.session.append(*result); err != nil {
			return nil, c.failRun(opLogger, err)
		}
		c.reporter.OnProgress(round, cfg.RequiredCount)
		opLogger.Info("round complete",
			zap.Int("round", round),
			zap.Int("required", cfg.RequiredCount),
			zap.String("prediction", string(result.Prediction)))
	}

	c.session.setState(StateAggregating)
	verdict, err := Aggregate(c.session.frames(), cfg.SpoofConfidenceThreshold, cfg.MinLiveCount)
	if err != nil {
		return nil, c.failRun(opLogger, err)
	}
	c.session.complete(verdict)
	c.reporter.OnVerdict(verdict)
	opLogger.Info("session completed",
		zap.Bool("is_live", verdict.IsLive),
		zap.Int("confidence_pct", verdict.ConfidencePercentage),
		zap.Int("quality_pct", verdict.QualityPercentage))
	return verdict, nil
}

func (c *Controller) cancelRun(logger *zap.Logger, cause error) error {
	err := fmt.Errorf("%w: %v", ErrCancelled, cause)
	c.session.fail(StateCancelled, err.Error())
	c.reporter.OnFailure(err)
	logger.Warn("run cancelled", zap.Error(cause))
	return err
}

func (c *Controller) failRun(logger *zap.Logger, err error) error {
	c.session.fail(StateFailed, err.Error())
	c.reporter.OnFailure(err)
	logger.Error("run failed", zap.Error(err))
	return err
}

// drawInterval picks a wait uniformly from [min, max], both bounds
// inclusive.
func drawInterval(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)+1))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
