package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/face-liveness/internal/capture"
	"github.com/example/face-liveness/internal/classifier"
	"github.com/example/face-liveness/internal/liveness"
	"github.com/example/face-liveness/internal/logging"
)

var (
	// ErrSessionNotFound is returned when no session matches the id and owner.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionFinished is returned for frame uploads against a terminal session.
	ErrSessionFinished = errors.New("session already finished")
)

// Hard ceiling on per-session rounds, regardless of client request.
const maxRequiredCount = 20

// SessionOptions carries the per-session overrides a client may request.
// Zero values fall back to the server defaults.
type SessionOptions struct {
	RequiredCount int
	MinInterval   time.Duration
	MaxInterval   time.Duration
}

// SessionStatus is the immutable view of a session handed to callers and
// cached in Redis for polling. It never aliases live controller state.
type SessionStatus struct {
	SessionID     string            `json:"session_id"`
	UserID        string            `json:"user_id"`
	State         liveness.State    `json:"state"`
	Completed     int               `json:"completed"`
	RequiredCount int               `json:"required_count"`
	Verdict       *liveness.Verdict `json:"verdict,omitempty"`
	FailureReason string            `json:"failure_reason,omitempty"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type sessionEntry struct {
	sessionID  string
	ownerID    string
	controller *liveness.Controller
	queue      *capture.FrameQueue
	cancel     context.CancelFunc
}

// LivenessUseCase owns the running sessions of this process: it starts
// controller runs, feeds uploaded frames to them, and publishes immutable
// snapshots to Redis so clients can poll progress and fetch verdicts.
type LivenessUseCase struct {
	cache      Cache
	classifier classifier.Client
	logger     *zap.Logger

	defaults       liveness.Config
	captureTimeout time.Duration
	snapshotTTL    time.Duration

	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration

	mu       sync.Mutex
	sessions map[string]*sessionEntry

	counters sessionCounters
}

// NewLivenessUseCase constructs the use case with the given session defaults.
func NewLivenessUseCase(cache Cache, client classifier.Client, logger *zap.Logger, defaults liveness.Config) *LivenessUseCase {
	return &LivenessUseCase{
		cache:          cache,
		classifier:     client,
		logger:         logger.Named("liveness_usecase"),
		defaults:       defaults,
		captureTimeout: 20 * time.Second,
		snapshotTTL:    5 * time.Minute,
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
		sessions:       make(map[string]*sessionEntry),
	}
}

// StartSession creates a session and launches its capture run in the
// background. The returned config is the one the run actually uses, after
// defaults and server-side bounds are applied.
func (uc *LivenessUseCase) StartSession(ctx context.Context, userID string, opts SessionOptions) (string, liveness.Config, error) {
	cfg, err := uc.resolveConfig(opts)
	if err != nil {
		return "", liveness.Config{}, err
	}

	sessionID := uuid.NewString()
	opLogger := logging.WithOperation(uc.logger, "usecase.start_session", sessionID)

	queue := capture.NewFrameQueue(cfg.RequiredCount, uc.captureTimeout)
	entry := &sessionEntry{
		sessionID: sessionID,
		ownerID:   userID,
		queue:     queue,
	}
	reporter := &snapshotReporter{uc: uc, entry: entry}
	entry.controller = liveness.NewController(sessionID, queue, uc.classifier, reporter, uc.logger)

	runCtx, cancel := context.WithCancel(context.Background())
	entry.cancel = cancel

	uc.mu.Lock()
	uc.sessions[sessionID] = entry
	uc.mu.Unlock()

	initial := SessionStatus{
		SessionID:     sessionID,
		UserID:        userID,
		State:         liveness.StateCapturing,
		RequiredCount: cfg.RequiredCount,
		UpdatedAt:     time.Now().UTC(),
	}
	if err := uc.storeStatus(ctx, initial); err != nil {
		cancel()
		queue.Close()
		uc.removeSession(sessionID)
		opLogger.Error("failed to publish initial snapshot", zap.Error(err))
		return "", liveness.Config{}, err
	}

	uc.counters.recordStart()
	go uc.runSession(runCtx, entry, cfg)

	opLogger.Info("session started",
		zap.Int("required_count", cfg.RequiredCount),
		zap.Duration("min_interval", cfg.MinInterval),
		zap.Duration("max_interval", cfg.MaxInterval))
	return sessionID, cfg, nil
}

// SubmitFrame enqueues one uploaded frame for the session's next capture
// request.
func (uc *LivenessUseCase) SubmitFrame(ctx context.Context, userID, sessionID string, image []byte) error {
	entry, ok := uc.lookup(sessionID, userID)
	if !ok {
		// A finished session may already be gone from the registry but
		// still visible in the snapshot store.
		if _, err := uc.GetSession(ctx, userID, sessionID); err == nil {
			return ErrSessionFinished
		}
		return ErrSessionNotFound
	}
	if entry.controller.Snapshot().State.Terminal() {
		return ErrSessionFinished
	}
	if err := entry.queue.Offer(capture.Frame(image)); err != nil {
		if errors.Is(err, capture.ErrClosed) {
			return ErrSessionFinished
		}
		return err
	}
	return nil
}

// Cancel aborts a running session. Cancelling a session that already
// finished is a no-op.
func (uc *LivenessUseCase) Cancel(ctx context.Context, userID, sessionID string) error {
	entry, ok := uc.lookup(sessionID, userID)
	if !ok {
		if _, err := uc.GetSession(ctx, userID, sessionID); err == nil {
			return nil
		}
		return ErrSessionNotFound
	}
	entry.cancel()
	logging.WithOperation(uc.logger, "usecase.cancel_session", sessionID).Info("cancellation requested")
	return nil
}

// GetSession returns the freshest immutable snapshot for the session: live
// controller state while the run executes, the cached snapshot afterwards.
func (uc *LivenessUseCase) GetSession(ctx context.Context, userID, sessionID string) (*SessionStatus, error) {
	if entry, ok := uc.lookup(sessionID, userID); ok {
		status := uc.statusFor(entry)
		return &status, nil
	}

	cached, err := uc.withRedisGet(ctx, sessionID, "cache.get.snapshot", snapshotKey(sessionID))
	if err != nil {
		return nil, ErrSessionNotFound
	}
	var status SessionStatus
	if err := json.Unmarshal([]byte(cached), &status); err != nil {
		logging.WithOperation(uc.logger, "usecase.get_session", sessionID).Warn("failed to decode cached snapshot", zap.Error(err))
		return nil, ErrSessionNotFound
	}
	if status.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return &status, nil
}

func (uc *LivenessUseCase) resolveConfig(opts SessionOptions) (liveness.Config, error) {
	cfg := uc.defaults
	if opts.RequiredCount > 0 {
		cfg.RequiredCount = opts.RequiredCount
	}
	if opts.MinInterval > 0 {
		cfg.MinInterval = opts.MinInterval
	}
	if opts.MaxInterval > 0 {
		cfg.MaxInterval = opts.MaxInterval
	}
	if cfg.RequiredCount > maxRequiredCount {
		return liveness.Config{}, fmt.Errorf("required count %d exceeds maximum %d", cfg.RequiredCount, maxRequiredCount)
	}
	if err := cfg.Validate(); err != nil {
		return liveness.Config{}, err
	}
	return cfg, nil
}

func (uc *LivenessUseCase) runSession(ctx context.Context, entry *sessionEntry, cfg liveness.Config) {
	defer entry.cancel()

	verdict, err := entry.controller.Run(ctx, cfg)
	entry.queue.Close()
	uc.counters.recordOutcome(verdict, err)

	// Publish the terminal snapshot so the client can fetch the outcome
	// after the registry entry is reaped.
	publishCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := uc.publishSnapshot(publishCtx, entry); err != nil {
		logging.WithOperation(uc.logger, "usecase.run_session", entry.sessionID).Error("failed to publish terminal snapshot", zap.Error(err))
	}

	time.AfterFunc(uc.snapshotTTL, func() { uc.removeSession(entry.sessionID) })
}

func (uc *LivenessUseCase) lookup(sessionID, userID string) (*sessionEntry, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	entry, ok := uc.sessions[sessionID]
	if !ok || entry.ownerID != userID {
		return nil, false
	}
	return entry, true
}

func (uc *LivenessUseCase) removeSession(sessionID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.sessions, sessionID)
}

func (uc *LivenessUseCase) statusFor(entry *sessionEntry) SessionStatus {
	snap := entry.controller.Snapshot()
	return SessionStatus{
		SessionID:     entry.sessionID,
		UserID:        entry.ownerID,
		State:         snap.State,
		Completed:     snap.Completed,
		RequiredCount: snap.RequiredCount,
		Verdict:       snap.Verdict,
		FailureReason: snap.FailureReason,
		UpdatedAt:     time.Now().UTC(),
	}
}

func (uc *LivenessUseCase) publishSnapshot(ctx context.Context, entry *sessionEntry) error {
	return uc.storeStatus(ctx, uc.statusFor(entry))
}

func (uc *LivenessUseCase) storeStatus(ctx context.Context, status SessionStatus) error {
	payload, err := json.Marshal(status)
	if err != nil {
		return err
	}
	return uc.withRedisRetry(ctx, status.SessionID, "cache.set.snapshot", func() error {
		return uc.cache.Set(ctx, snapshotKey(status.SessionID), string(payload), uc.snapshotTTL)
	})
}

func snapshotKey(sessionID string) string {
	return fmt.Sprintf("liveness:session:%s", sessionID)
}

// snapshotReporter forwards controller events into logs and the snapshot
// store. It only ever reads immutable snapshots of the session.
type snapshotReporter struct {
	uc    *LivenessUseCase
	entry *sessionEntry
}

func (r *snapshotReporter) OnProgress(completed, total int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.uc.publishSnapshot(ctx, r.entry); err != nil {
		logging.WithOperation(r.uc.logger, "usecase.report_progress", r.entry.sessionID).Warn("failed to publish progress snapshot", zap.Error(err))
	}
	logging.WithOperation(r.uc.logger, "usecase.report_progress", r.entry.sessionID).Info("progress",
		zap.Int("completed", completed),
		zap.Int("total", total))
}

func (r *snapshotReporter) OnFailure(reason error) {
	logging.WithOperation(r.uc.logger, "usecase.report_failure", r.entry.sessionID).Warn("session failed", zap.Error(reason))
}

func (r *snapshotReporter) OnVerdict(v *liveness.Verdict) {
	logging.WithOperation(r.uc.logger, "usecase.report_verdict", r.entry.sessionID).Info("verdict",
		zap.Bool("is_live", v.IsLive),
		zap.Int("live_pct", v.LivePercentage),
		zap.Int("confidence_pct", v.ConfidencePercentage),
		zap.Int("quality_pct", v.QualityPercentage))
}

func (uc *LivenessUseCase) withRedisRetry(ctx context.Context, sessionID, operation string, fn func() error) error {
	if uc.retryAttempts <= 1 {
		err := fn()
		return logging.NewOperationError(operation, sessionID, err)
	}

	backoff := uc.initialBackoff
	opLogger := logging.WithOperation(uc.logger, operation, sessionID)
	var err error
	for attempt := 0; attempt < uc.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, sessionID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= uc.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("redis operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !isTransientError(err) || attempt == uc.retryAttempts-1 {
			opLogger.Error("redis operation failed", zap.Error(err), zap.Int("attempt", attempt+1))
			return logging.NewOperationError(operation, sessionID, err)
		}

		opLogger.Warn("transient redis error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, sessionID, err)
}

func (uc *LivenessUseCase) withRedisGet(ctx context.Context, sessionID, operation, cacheKey string) (string, error) {
	var result string
	err := uc.withRedisRetry(ctx, sessionID, operation, func() error {
		value, err := uc.cache.Get(ctx, cacheKey)
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) && temporary.Temporary() {
		return true
	}

	return false
}
