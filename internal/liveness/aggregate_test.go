package liveness

import (
	"reflect"
	"testing"

	"github.com/example/face-liveness/internal/classifier"
)

func live(confidence, quality float64) classifier.FrameResult {
	return classifier.FrameResult{Prediction: classifier.PredictionLive, Confidence: confidence, QualityScore: quality}
}

func spoof(confidence, quality float64) classifier.FrameResult {
	return classifier.FrameResult{Prediction: classifier.PredictionSpoof, Confidence: confidence, QualityScore: quality}
}

func TestAggregateTieIsLive(t *testing.T) {
	frames := []classifier.FrameResult{
		live(0.9, 0.8), live(0.8, 0.8), live(0.7, 0.8),
		spoof(0.5, 0.8), spoof(0.4, 0.8), spoof(0.3, 0.8),
	}

	v, err := Aggregate(frames, DefaultSpoofConfidenceThreshold, DefaultMinLiveCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsLive {
		t.Fatal("expected tie to resolve live")
	}
	if v.LivePercentage != 50 {
		t.Fatalf("expected live percentage 50, got %d", v.LivePercentage)
	}
	// mean(0.9, 0.8, 0.7, 1-0.5, 1-0.4, 1-0.3) = 0.7
	if v.ConfidencePercentage != 70 {
		t.Fatalf("expected confidence percentage 70, got %d", v.ConfidencePercentage)
	}
	if v.QualityPercentage != 80 {
		t.Fatalf("expected quality percentage 80, got %d", v.QualityPercentage)
	}
}

func TestAggregateMinorityPassesWhenSpoofUnsure(t *testing.T) {
	frames := []classifier.FrameResult{
		live(0.9, 0.5), live(0.8, 0.5),
		spoof(0.5, 0.5), spoof(0.55, 0.5), spoof(0.4, 0.5), spoof(0.3, 0.5),
	}

	v, err := Aggregate(frames, DefaultSpoofConfidenceThreshold, DefaultMinLiveCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// avg spoof confidence = 0.4375 < 0.6 and 2 live frames.
	if !v.IsLive {
		t.Fatal("expected unsure spoof minority branch to pass")
	}
}

func TestAggregateMinorityFailsWithSingleLiveFrame(t *testing.T) {
	frames := []classifier.FrameResult{
		live(0.9, 0.5),
		spoof(0.5, 0.5), spoof(0.55, 0.5), spoof(0.4, 0.5), spoof(0.3, 0.5), spoof(0.2, 0.5),
	}

	v, err := Aggregate(frames, DefaultSpoofConfidenceThreshold, DefaultMinLiveCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.IsLive {
		t.Fatal("one live frame must not pass, regardless of spoof confidence")
	}
}

func TestAggregateMinorityFailsWhenSpoofConfident(t *testing.T) {
	frames := []classifier.FrameResult{
		live(0.9, 0.5), live(0.8, 0.5),
		spoof(0.7, 0.5), spoof(0.65, 0.5), spoof(0.6, 0.5), spoof(0.8, 0.5),
	}

	v, err := Aggregate(frames, DefaultSpoofConfidenceThreshold, DefaultMinLiveCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.IsLive {
		t.Fatal("confident spoof majority must fail the session")
	}
}

func TestAggregateThresholdIsExclusive(t *testing.T) {
	// avg spoof confidence is exactly 0.6: not strictly below the
	// threshold, so the minority branch must fail.
	frames := []classifier.FrameResult{
		live(0.9, 0.5), live(0.8, 0.5),
		spoof(0.6, 0.5), spoof(0.6, 0.5), spoof(0.6, 0.5), spoof(0.6, 0.5),
	}

	v, err := Aggregate(frames, DefaultSpoofConfidenceThreshold, DefaultMinLiveCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.IsLive {
		t.Fatal("expected exact-threshold spoof confidence to fail")
	}
}

func TestAggregateMajorityIgnoresConfidences(t *testing.T) {
	frames := []classifier.FrameResult{
		live(0.01, 0.5), live(0.02, 0.5), live(0.03, 0.5),
		spoof(0.99, 0.5), spoof(0.99, 0.5), spoof(0.99, 0.5),
	}

	v, err := Aggregate(frames, DefaultSpoofConfidenceThreshold, DefaultMinLiveCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsLive {
		t.Fatal("live majority (ties included) must pass regardless of confidences")
	}
}

func TestAggregateAllSpoof(t *testing.T) {
	frames := []classifier.FrameResult{
		spoof(0.9, 0.4), spoof(0.8, 0.4), spoof(0.7, 0.4),
	}

	v, err := Aggregate(frames, DefaultSpoofConfidenceThreshold, DefaultMinLiveCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.IsLive {
		t.Fatal("all-spoof session must fail")
	}
	if v.LivePercentage != 0 {
		t.Fatalf("expected live percentage 0, got %d", v.LivePercentage)
	}
	// mean(1-0.9, 1-0.8, 1-0.7) = 0.2
	if v.ConfidencePercentage != 20 {
		t.Fatalf("expected confidence percentage 20, got %d", v.ConfidencePercentage)
	}
}

func TestAggregateSingleLiveFrame(t *testing.T) {
	v, err := Aggregate([]classifier.FrameResult{live(0.6, 1.0)}, DefaultSpoofConfidenceThreshold, DefaultMinLiveCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsLive || v.LivePercentage != 100 || v.QualityPercentage != 100 {
		t.Fatalf("unexpected verdict: %+v", v)
	}
}

func TestAggregateRejectsEmptyInput(t *testing.T) {
	if _, err := Aggregate(nil, DefaultSpoofConfidenceThreshold, DefaultMinLiveCount); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestAggregateIsDeterministic(t *testing.T) {
	frames := []classifier.FrameResult{
		live(0.91, 0.62), spoof(0.47, 0.81), live(0.55, 0.73),
		spoof(0.66, 0.42), live(0.72, 0.9), spoof(0.31, 0.55),
	}

	first, err := Aggregate(frames, DefaultSpoofConfidenceThreshold, DefaultMinLiveCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Aggregate(frames, DefaultSpoofConfidenceThreshold, DefaultMinLiveCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical input produced different verdicts: %+v vs %+v", first, second)
	}
}

func TestAggregateDoesNotAliasInput(t *testing.T) {
	frames := []classifier.FrameResult{live(0.9, 0.9), spoof(0.2, 0.5)}
	v, err := Aggregate(frames, DefaultSpoofConfidenceThreshold, DefaultMinLiveCount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	frames[0].Confidence = 0
	if v.Frames[0].Confidence != 0.9 {
		t.Fatal("verdict frames must be a copy of the input")
	}
}
