package liveness

import (
	"errors"
	"fmt"
)

var (
	// ErrCancelled reports a run aborted by the caller before completion.
	ErrCancelled = errors.New("liveness: run cancelled")
	// ErrRunInProgress reports an attempt to start a run on a controller
	// that is already executing one.
	ErrRunInProgress = errors.New("liveness: run already in progress")
)

// CaptureError reports a failed capture request. It is terminal for the
// whole run: no retry is attempted and no further rounds are issued.
type CaptureError struct {
	Round int
	Err   error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("capture failed on round %d: %v", e.Round, e.Err)
}

func (e *CaptureError) Unwrap() error { return e.Err }

// ClassificationError reports a classifier failure or a result that violated
// the classifier contract. Terminal for the run, like CaptureError.
type ClassificationError struct {
	Round int
	Err   error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classification failed on round %d: %v", e.Round, e.Err)
}

func (e *ClassificationError) Unwrap() error { return e.Err }
