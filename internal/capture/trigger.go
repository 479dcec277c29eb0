package capture

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Frame is one raw captured image as uploaded by the client device.
type Frame []byte

// Trigger produces one frame per capture request.
type Trigger interface {
	Capture(ctx context.Context) (Frame, error)
}

var (
	// ErrQueueFull is returned by Offer when the client uploads frames
	// faster than the controller consumes them.
	ErrQueueFull = errors.New("capture: frame queue full")
	// ErrClosed is returned once the owning session is terminal.
	ErrClosed = errors.New("capture: trigger closed")
	// ErrCaptureTimeout is returned when no frame arrives within the
	// capture window.
	ErrCaptureTimeout = errors.New("capture: timed out waiting for frame")
)

// FrameQueue is a Trigger fed by HTTP uploads. The handler calls Offer for
// each uploaded frame; the controller dequeues them at its own pace. Capacity
// is fixed at construction so a session can never buffer more frames than it
// needs.
type FrameQueue struct {
	frames  chan Frame
	closed  chan struct{}
	once    sync.Once
	timeout time.Duration
}

// NewFrameQueue builds a queue holding at most depth frames. A capture
// request that waits longer than timeout for an upload fails with
// ErrCaptureTimeout.
func NewFrameQueue(depth int, timeout time.Duration) *FrameQueue {
	if depth < 1 {
		depth = 1
	}
	return &FrameQueue{
		frames:  make(chan Frame, depth),
		closed:  make(chan struct{}),
		timeout: timeout,
	}
}

// Offer enqueues one uploaded frame without blocking.
func (q *FrameQueue) Offer(frame Frame) error {
	select {
	case <-q.closed:
		return ErrClosed
	default:
	}
	select {
	case q.frames <- frame:
		return nil
	case <-q.closed:
		return ErrClosed
	default:
		return ErrQueueFull
	}
}

// Capture returns the oldest pending frame, waiting up to the configured
// timeout for the client to upload one.
func (q *FrameQueue) Capture(ctx context.Context) (Frame, error) {
	// Drain an already-buffered frame before arming the timeout.
	select {
	case frame := <-q.frames:
		return frame, nil
	default:
	}

	timer := time.NewTimer(q.timeout)
	defer timer.Stop()

	select {
	case frame := <-q.frames:
		return frame, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-q.closed:
		return nil, ErrClosed
	case <-timer.C:
		return nil, ErrCaptureTimeout
	}
}

// Close rejects all further offers and wakes any pending capture. Safe to
// call more than once.
func (q *FrameQueue) Close() {
	q.once.Do(func() { close(q.closed) })
}
