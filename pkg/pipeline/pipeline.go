// Package pipeline defines the analysis pipeline: an ordered, immutable
// list of named, weighted stages plus the decision policy applied to
// their collected sub-scores. A Pipeline carries no run state; execution
// belongs to the runner package.
package pipeline

import (
	"errors"
	"fmt"
)

// ErrInvalidPipeline is returned by New for malformed stage lists.
var ErrInvalidPipeline = errors.New("invalid pipeline definition")

// DefaultThreshold is the decision threshold used when none is supplied.
const DefaultThreshold = 0.5

// StageDescriptor declares one stage of a pipeline. Name must be unique
// within the pipeline and Weight strictly positive; Weight determines
// the stage's share of reported progress.
type StageDescriptor struct {
	Name   string
	Weight float64
	Work   Work
}

// Pipeline is an ordered sequence of stages. Immutable once constructed.
type Pipeline struct {
	stages     []StageDescriptor
	total      float64
	decide     DecisionFunc
	confidence ConfidenceFunc
}

// Option configures a Pipeline at construction time.
type Option func(*Pipeline)

// WithDecision replaces the default classification policy.
func WithDecision(fn DecisionFunc) Option {
	return func(p *Pipeline) { p.decide = fn }
}

// WithConfidence replaces the default confidence aggregation.
func WithConfidence(fn ConfidenceFunc) Option {
	return func(p *Pipeline) { p.confidence = fn }
}

// WithThreshold keeps the default mean-based decision but changes the
// threshold it compares against.
func WithThreshold(threshold float64) Option {
	return func(p *Pipeline) { p.decide = MeanThresholdDecision(threshold) }
}

// New validates the stage list and constructs a Pipeline. It returns an
// error wrapping ErrInvalidPipeline if the list is empty, a stage has an
// empty or duplicate name, a non-positive weight, or no work function.
func New(stages []StageDescriptor, opts ...Option) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, fmt.Errorf("%w: no stages", ErrInvalidPipeline)
	}

	seen := make(map[string]struct{}, len(stages))
	total := 0.0
	for i, st := range stages {
		if st.Name == "" {
			return nil, fmt.Errorf("%w: stage %d has an empty name", ErrInvalidPipeline, i)
		}
		if st.Weight <= 0 {
			return nil, fmt.Errorf("%w: stage %q has non-positive weight %g", ErrInvalidPipeline, st.Name, st.Weight)
		}
		if st.Work == nil {
			return nil, fmt.Errorf("%w: stage %q has no work function", ErrInvalidPipeline, st.Name)
		}
		if _, dup := seen[st.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate stage name %q", ErrInvalidPipeline, st.Name)
		}
		seen[st.Name] = struct{}{}
		total += st.Weight
	}

	p := &Pipeline{
		stages:     append([]StageDescriptor(nil), stages...),
		total:      total,
		decide:     MeanThresholdDecision(DefaultThreshold),
		confidence: MeanConfidence,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Stages returns a copy of the ordered stage descriptors.
func (p *Pipeline) Stages() []StageDescriptor {
	return append([]StageDescriptor(nil), p.stages...)
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// TotalWeight returns the sum of all stage weights. The runner divides
// by it to normalize progress.
func (p *Pipeline) TotalWeight() float64 {
	return p.total
}

// Decide applies the pipeline's classification policy to the collected
// sub-scores.
func (p *Pipeline) Decide(subScores map[string]float64) bool {
	return p.decide(subScores)
}

// Confidence applies the pipeline's confidence aggregation to the
// collected sub-scores.
func (p *Pipeline) Confidence(subScores map[string]float64) float64 {
	return p.confidence(subScores)
}
