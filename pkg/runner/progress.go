package runner

// ProgressEvent is emitted once per completed stage. CompletedWeight is
// monotonically increasing across the events of one run and equals
// TotalWeight exactly on the final stage's event.
type ProgressEvent struct {
	CompletedWeight float64
	TotalWeight     float64
	StageName       string
	StageIndex      int
}

// Percent returns the progress normalized to [0,100].
func (e ProgressEvent) Percent() float64 {
	if e.TotalWeight <= 0 {
		return 0
	}
	return 100 * e.CompletedWeight / e.TotalWeight
}
