package capture

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFrameQueueDeliversInOrder(t *testing.T) {
	q := NewFrameQueue(3, time.Second)

	for _, payload := range []string{"one", "two", "three"} {
		if err := q.Offer(Frame(payload)); err != nil {
			t.Fatalf("offer %q failed: %v", payload, err)
		}
	}

	for _, want := range []string{"one", "two", "three"} {
		frame, err := q.Capture(context.Background())
		if err != nil {
			t.Fatalf("capture failed: %v", err)
		}
		if string(frame) != want {
			t.Fatalf("expected frame %q, got %q", want, frame)
		}
	}
}

func TestFrameQueueRejectsWhenFull(t *testing.T) {
	q := NewFrameQueue(1, time.Second)

	if err := q.Offer(Frame("first")); err != nil {
		t.Fatalf("offer failed: %v", err)
	}
	if err := q.Offer(Frame("second")); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
}

func TestFrameQueueCaptureTimesOut(t *testing.T) {
	q := NewFrameQueue(1, 20*time.Millisecond)

	if _, err := q.Capture(context.Background()); !errors.Is(err, ErrCaptureTimeout) {
		t.Fatalf("expected ErrCaptureTimeout, got %v", err)
	}
}

func TestFrameQueueCaptureHonoursContext(t *testing.T) {
	q := NewFrameQueue(1, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := q.Capture(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFrameQueueClose(t *testing.T) {
	q := NewFrameQueue(2, time.Second)

	if err := q.Offer(Frame("buffered")); err != nil {
		t.Fatalf("offer failed: %v", err)
	}
	q.Close()
	q.Close() // idempotent

	if err := q.Offer(Frame("late")); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed on offer, got %v", err)
	}

	// A frame buffered before close is still delivered.
	frame, err := q.Capture(context.Background())
	if err != nil {
		t.Fatalf("capture of buffered frame failed: %v", err)
	}
	if string(frame) != "buffered" {
		t.Fatalf("unexpected frame %q", frame)
	}

	if _, err := q.Capture(context.Background()); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed on empty closed queue, got %v", err)
	}
}

func TestFrameQueueWakesPendingCapture(t *testing.T) {
	q := NewFrameQueue(1, time.Second)

	got := make(chan Frame, 1)
	go func() {
		frame, err := q.Capture(context.Background())
		if err != nil {
			got <- nil
			return
		}
		got <- frame
	}()

	time.Sleep(10 * time.Millisecond)
	if err := q.Offer(Frame("late arrival")); err != nil {
		t.Fatalf("offer failed: %v", err)
	}

	select {
	case frame := <-got:
		if string(frame) != "late arrival" {
			t.Fatalf("unexpected frame %q", frame)
		}
	case <-time.After(time.Second):
		t.Fatal("pending capture was not woken by offer")
	}
}
