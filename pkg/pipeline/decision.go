package pipeline

// DecisionFunc computes the final pass/fail classification from the
// collected sub-scores.
type DecisionFunc func(subScores map[string]float64) bool

// ConfidenceFunc computes the final confidence in [0,1] from the
// collected sub-scores.
type ConfidenceFunc func(subScores map[string]float64) float64

// MeanConfidence returns the mean of all sub-scores, or 0 when no stage
// contributed any.
func MeanConfidence(subScores map[string]float64) float64 {
	if len(subScores) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range subScores {
		sum += v
	}
	return sum / float64(len(subScores))
}

// MeanThresholdDecision classifies as passing when the mean of all
// sub-scores exceeds the threshold.
func MeanThresholdDecision(threshold float64) DecisionFunc {
	return func(subScores map[string]float64) bool {
		if len(subScores) == 0 {
			return false
		}
		return MeanConfidence(subScores) > threshold
	}
}
