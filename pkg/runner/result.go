package runner

import (
	"fmt"
	"time"
)

// DetectionResult is the aggregated outcome of a successful run.
// Immutable after construction; callers must not modify SubScores.
type DetectionResult struct {
	// Classification is the pass/fail verdict from the pipeline's
	// decision policy.
	Classification bool

	// Confidence is the aggregated confidence in [0,1].
	Confidence float64

	// Elapsed is the wall-clock time from start to the terminal
	// transition.
	Elapsed time.Duration

	// SubScores maps sub-metric names to their contributed values.
	// When two stages contribute the same name, the later entry is
	// stored under "stage.name" so no contribution is lost.
	SubScores map[string]float64
}

// StageFailure describes the stage whose work unit failed. It is the
// failure carried by a Failed run.
type StageFailure struct {
	StageName  string
	StageIndex int
	Err        error
}

// Error implements the error interface.
func (f *StageFailure) Error() string {
	return fmt.Sprintf("stage %q (index %d) failed: %v", f.StageName, f.StageIndex, f.Err)
}

// Unwrap returns the underlying cause.
func (f *StageFailure) Unwrap() error {
	return f.Err
}
