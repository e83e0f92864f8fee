package mocks

import (
	"sync"

	"github.com/user/vidcheck/pkg/ports"
)

// ProgressUpdate records one Progress call.
type ProgressUpdate struct {
	StageName  string
	StageIndex int
	Percent    float64
}

// ProgressReporter is a mock implementation of ports.ProgressReporter.
type ProgressReporter struct {
	mu      sync.Mutex
	updates []ProgressUpdate
	final   string

	ProgressFunc func(stageName string, stageIndex int, percent float64)
	FinishedFunc func(state string)
}

func (m *ProgressReporter) Progress(stageName string, stageIndex int, percent float64) {
	m.mu.Lock()
	m.updates = append(m.updates, ProgressUpdate{StageName: stageName, StageIndex: stageIndex, Percent: percent})
	m.mu.Unlock()
	if m.ProgressFunc != nil {
		m.ProgressFunc(stageName, stageIndex, percent)
	}
}

func (m *ProgressReporter) Finished(state string) {
	m.mu.Lock()
	m.final = state
	m.mu.Unlock()
	if m.FinishedFunc != nil {
		m.FinishedFunc(state)
	}
}

// Updates returns the recorded progress updates (for test verification).
func (m *ProgressReporter) Updates() []ProgressUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ProgressUpdate, len(m.updates))
	copy(out, m.updates)
	return out
}

// FinalState returns the state passed to Finished.
func (m *ProgressReporter) FinalState() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.final
}

var _ ports.ProgressReporter = (*ProgressReporter)(nil)
