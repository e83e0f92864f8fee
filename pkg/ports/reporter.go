package ports

// ProgressReporter receives progress updates from an analysis run.
// Implementations render them (progress bar, log lines); the values are
// already normalized so reporters own only formatting.
type ProgressReporter interface {
	// Progress is called once per completed stage with the normalized
	// percentage in [0,100].
	Progress(stageName string, stageIndex int, percent float64)

	// Finished is called exactly once when the run reaches a terminal
	// state ("succeeded", "failed" or "cancelled").
	Finished(state string)
}
