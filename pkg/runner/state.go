package runner

// RunState is the lifecycle state of a Run. A Run starts Idle, moves to
// Running exactly once, and ends in exactly one of the terminal states.
type RunState int

const (
	// StateIdle means the run has been created but not started.
	StateIdle RunState = iota
	// StateRunning means stages are executing.
	StateRunning
	// StateSucceeded means all stages completed and a result is available.
	StateSucceeded
	// StateFailed means a stage failed; no result was produced.
	StateFailed
	// StateCancelled means cancellation took effect before completion.
	StateCancelled
)

// String returns the string representation of the state.
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state is final.
func (s RunState) Terminal() bool {
	switch s {
	case StateSucceeded, StateFailed, StateCancelled:
		return true
	default:
		return false
	}
}
