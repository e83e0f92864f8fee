// Package summarizer provides summary generation for analysis results.
package summarizer

import (
	"sort"
	"time"
)

// Summary contains all data collected during one analysis run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time
	RunID       string

	// Input information
	Input InputInfo

	// Verdict
	Verdict VerdictInfo

	// Sub-scores in a stable order
	Scores []ScoreEntry

	// Analysis settings
	Settings Settings
}

// InputInfo describes the analyzed file.
type InputInfo struct {
	Name       string
	SizeBytes  int64
	Codec      string
	DurationMs int
	Samples    int
}

// VerdictInfo holds the terminal classification.
type VerdictInfo struct {
	Passed     bool
	Confidence float64
	Elapsed    time.Duration
}

// ScoreEntry is one named sub-score.
type ScoreEntry struct {
	Name  string
	Value float64
}

// Settings contains the analysis configuration.
type Settings struct {
	Threshold float64
	Stages    int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithRunID sets the run identifier.
func (b *Builder) WithRunID(id string) *Builder {
	b.summary.RunID = id
	return b
}

// WithInput sets input file information.
func (b *Builder) WithInput(input InputInfo) *Builder {
	b.summary.Input = input
	return b
}

// WithVerdict sets the terminal classification.
func (b *Builder) WithVerdict(passed bool, confidence float64, elapsed time.Duration) *Builder {
	b.summary.Verdict = VerdictInfo{
		Passed:     passed,
		Confidence: confidence,
		Elapsed:    elapsed,
	}
	return b
}

// WithSubScores sets the sub-scores, ordered by name for stable output.
func (b *Builder) WithSubScores(scores map[string]float64) *Builder {
	entries := make([]ScoreEntry, 0, len(scores))
	for name, value := range scores {
		entries = append(entries, ScoreEntry{Name: name, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	b.summary.Scores = entries
	return b
}

// WithSettings sets the analysis settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
