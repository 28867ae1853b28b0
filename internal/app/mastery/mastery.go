// Package mastery turns raw quiz results into an accuracy value, a blended
// mastery percentage, a qualitative status and a staged roadmap. It is pure:
// callers own persistence.
package mastery

import "math"

const (
	DefaultConfidence = 70.0

	StatusLowConfidence = "Low Confidence - Needs Encouragement"
	StatusOverconfident = "Overconfident - Needs Practice"
	StatusBalanced      = "Balanced Understanding"
)

// defaultScores substitutes for an empty submission so accuracy lands at 50.
var defaultScores = []float64{50, 50, 50}

var (
	roadmapFoundation   = []string{"Revise Foundations", "Solve Basic Questions", "Take Reinforcement Quiz"}
	roadmapIntermediate = []string{"Solve Intermediate Questions", "Timed Practice", "Concept Strengthening"}
	roadmapAdvanced     = []string{"Advanced Problems", "Mini Project", "Weekly Mastery Review"}
)

type Result struct {
	Accuracy float64
	Mastery  float64
	Status   string
	Roadmap  []string
}

// Evaluate computes the mastery result for one attempt. Mastery blends 70%
// accuracy with 30% confidence; accuracy and mastery are rounded to one
// decimal and the rounded mastery is what callers persist.
func Evaluate(scores []float64, confidence float64) Result {
	if len(scores) == 0 {
		scores = defaultScores
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	accuracy := sum / float64(len(scores))
	blended := accuracy*0.7 + confidence*0.3

	// Rule order matters: first match wins.
	var status string
	switch {
	case accuracy >= 70 && confidence < 50:
		status = StatusLowConfidence
	case accuracy < 50 && confidence > 80:
		status = StatusOverconfident
	default:
		status = StatusBalanced
	}

	return Result{
		Accuracy: round1(accuracy),
		Mastery:  round1(blended),
		Status:   status,
		Roadmap:  roadmapFor(blended),
	}
}

// roadmapFor selects by mastery band: inclusive lower bound, exclusive upper.
func roadmapFor(mastery float64) []string {
	switch {
	case mastery < 60:
		return roadmapFoundation
	case mastery < 80:
		return roadmapIntermediate
	default:
		return roadmapAdvanced
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
