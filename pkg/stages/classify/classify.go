// Package classify implements the final classification stage. It does
// no media reading of its own: it combines the sub-scores the earlier
// stages contributed into one weighted authenticity score. This is the
// stage an implementer replaces with real model inference.
package classify

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/vidcheck/pkg/pipeline"
	"github.com/user/vidcheck/pkg/stages/probe"
	"github.com/user/vidcheck/pkg/stages/signal"
	"github.com/user/vidcheck/pkg/stages/temporal"
)

// Name is the stage name used in pipelines and diagnostics.
const Name = "classify"

// ScoreName is the sub-score this stage contributes.
const ScoreName = "authenticity"

// Relative weights of the combined sub-scores. Cadence weighs heaviest:
// timing artifacts survive re-encoding, container metadata does not.
const (
	containerWeight  = 0.25
	smoothnessWeight = 0.35
	cadenceWeight    = 0.40
)

// ErrNoPriorScores is returned when no earlier stage contributed a
// usable sub-score.
var ErrNoPriorScores = errors.New("no prior sub-scores to classify")

// Descriptor returns the stage descriptor with the given weight.
func Descriptor(weight float64) pipeline.StageDescriptor {
	return pipeline.StageDescriptor{Name: Name, Weight: weight, Work: run}
}

func run(ctx context.Context, in pipeline.RunInput) (pipeline.StageOutcome, error) {
	score, err := Combine(in)
	if err != nil {
		return pipeline.StageOutcome{}, err
	}
	return pipeline.StageOutcome{
		SubScores: map[string]float64{ScoreName: score},
		Details: map[string]string{
			"formula": fmt.Sprintf("%.2f*container + %.2f*smoothness + %.2f*cadence", containerWeight, smoothnessWeight, cadenceWeight),
		},
	}, nil
}

// Combine computes the weighted authenticity score from the prior
// stages' outcomes. Missing stages are skipped and the weights of the
// present ones renormalized.
func Combine(in pipeline.RunInput) (float64, error) {
	type component struct {
		stage  string
		score  string
		weight float64
	}
	components := []component{
		{stage: probe.Name, score: probe.ScoreName, weight: containerWeight},
		{stage: signal.Name, score: signal.ScoreName, weight: smoothnessWeight},
		{stage: temporal.Name, score: temporal.ScoreName, weight: cadenceWeight},
	}

	sum := 0.0
	weightSum := 0.0
	for _, c := range components {
		outcome, ok := in.Outcome(c.stage)
		if !ok {
			continue
		}
		value, ok := outcome.SubScores[c.score]
		if !ok {
			continue
		}
		sum += c.weight * value
		weightSum += c.weight
	}

	if weightSum == 0 {
		return 0, ErrNoPriorScores
	}
	return sum / weightSum, nil
}
