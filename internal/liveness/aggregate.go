package liveness

import (
	"errors"
	"math"

	"github.com/example/face-liveness/internal/classifier"
)

// Default decision constants.
const (
	DefaultSpoofConfidenceThreshold = 0.6
	DefaultMinLiveCount             = 2
)

// Verdict is the final outcome for one session.
type Verdict struct {
	IsLive               bool                     `json:"is_live"`
	LivePercentage       int                      `json:"live_percentage"`
	ConfidencePercentage int                      `json:"confidence_percentage"`
	QualityPercentage    int                      `json:"quality_percentage"`
	Frames               []classifier.FrameResult `json:"frames"`
}

// Aggregate reduces a full set of per-frame results to one verdict. It is a
// pure function: no I/O, no hidden state, identical input always yields an
// identical verdict.
//
// The rule: a live majority (ties included) passes outright. A live minority
// passes only when the spoof frames were collectively unsure — their mean raw
// confidence below spoofThreshold — and at least minLiveCount frames still
// read live. Note the minority branch deliberately averages raw spoof-label
// confidence, not the live-normalized scale used for the confidence
// percentage; the two averages answer different questions.
func Aggregate(frames []classifier.FrameResult, spoofThreshold float64, minLiveCount int) (*Verdict, error) {
	n := len(frames)
	if n == 0 {
		return nil, errors.New("liveness: aggregate requires at least one frame")
	}

	liveCount := 0
	confidenceSum := 0.0
	qualitySum := 0.0
	spoofConfidenceSum := 0.0
	for _, f := range frames {
		if f.Prediction == classifier.PredictionLive {
			liveCount++
			confidenceSum += f.Confidence
		} else {
			confidenceSum += 1 - f.Confidence
			spoofConfidenceSum += f.Confidence
		}
		qualitySum += f.QualityScore
	}
	spoofCount := n - liveCount

	isLive := false
	if liveCount >= spoofCount {
		isLive = true
	} else {
		// spoofCount > liveCount >= 0, so spoofCount >= 1 here.
		avgSpoofConfidence := spoofConfidenceSum / float64(spoofCount)
		isLive = avgSpoofConfidence < spoofThreshold && liveCount >= minLiveCount
	}

	return &Verdict{
		IsLive:               isLive,
		LivePercentage:       roundPercent(float64(liveCount) / float64(n)),
		ConfidencePercentage: roundPercent(confidenceSum / float64(n)),
		QualityPercentage:    roundPercent(qualitySum / float64(n)),
		Frames:               append([]classifier.FrameResult(nil), frames...),
	}, nil
}

func roundPercent(ratio float64) int {
	return int(math.Round(ratio * 100))
}
