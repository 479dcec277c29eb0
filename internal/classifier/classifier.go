package classifier

import (
	"context"
	"fmt"
)

// Prediction is the label a classifier assigns to a single frame.
type Prediction string

const (
	PredictionLive  Prediction = "live"
	PredictionSpoof Prediction = "spoof"
)

// FrameResult is the per-frame outcome reported by the liveness classifier.
type FrameResult struct {
	Prediction   Prediction `json:"prediction"`
	Confidence   float64    `json:"confidence"`
	QualityScore float64    `json:"quality_score"`
}

// Validate rejects results the classifier contract does not allow. A result
// that fails validation must never reach aggregation.
func (r FrameResult) Validate() error {
	switch r.Prediction {
	case PredictionLive, PredictionSpoof:
	default:
		return fmt.Errorf("unknown prediction label %q", r.Prediction)
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("confidence %v out of range [0,1]", r.Confidence)
	}
	if r.QualityScore < 0 || r.QualityScore > 1 {
		return fmt.Errorf("quality score %v out of range [0,1]", r.QualityScore)
	}
	return nil
}

// Client exposes the subset of classifier functionality used by the capture
// sequence. Implementations must validate results before returning them.
type Client interface {
	Classify(ctx context.Context, sessionID string, frameIndex int, image []byte) (*FrameResult, error)
}
