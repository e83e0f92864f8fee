package pipeline

import (
	"context"

	"github.com/user/vidcheck/pkg/ports"
)

// RunInput is what a stage work unit receives: the opaque input artifact
// and the outcomes of all previously completed stages of the same run,
// keyed by stage name. Work units must treat Outcomes as read-only.
type RunInput struct {
	Artifact ports.Artifact
	Outcomes map[string]StageOutcome
}

// Outcome returns the outcome of a previously completed stage.
func (in RunInput) Outcome(stageName string) (StageOutcome, bool) {
	out, ok := in.Outcomes[stageName]
	return out, ok
}

// StageOutcome is what a stage produces. SubScores entries must be in
// [0,1]; they are collected across stages and fed to the pipeline's
// decision policy. Details carries free-form diagnostics for reporting.
type StageOutcome struct {
	SubScores map[string]float64
	Details   map[string]string
}

// Work is one stage's unit of asynchronous computation. Real signal
// analysis, a remote inference call, or a deterministic test double all
// satisfy this same contract. A returned error fails the whole run.
type Work func(ctx context.Context, in RunInput) (StageOutcome, error)
