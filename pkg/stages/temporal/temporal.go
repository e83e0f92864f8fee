// Package temporal implements the frame-cadence analysis stage.
// Frame drops, splices and speed ramps disturb the otherwise constant
// sample durations of a normal recording; the stage scores how dominant
// the most common frame duration is.
package temporal

import (
	"context"
	"fmt"

	"github.com/user/vidcheck/pkg/media"
	"github.com/user/vidcheck/pkg/pipeline"
)

// Name is the stage name used in pipelines and diagnostics.
const Name = "temporal"

// ScoreName is the sub-score this stage contributes.
const ScoreName = "cadence"

// Descriptor returns the stage descriptor with the given weight.
func Descriptor(weight float64) pipeline.StageDescriptor {
	return pipeline.StageDescriptor{Name: Name, Weight: weight, Work: run}
}

func run(ctx context.Context, in pipeline.RunInput) (pipeline.StageOutcome, error) {
	info, err := media.ProbeArtifact(in.Artifact)
	if err != nil {
		return pipeline.StageOutcome{}, fmt.Errorf("read sample timing: %w", err)
	}

	return pipeline.StageOutcome{
		SubScores: map[string]float64{ScoreName: Score(info.SampleDurations)},
		Details: map[string]string{
			"samples": fmt.Sprintf("%d", len(info.SampleDurations)),
		},
	}, nil
}

// Score returns the fraction of samples sharing the most common
// duration, in [0,1]. Fewer than two samples scores a neutral 0.5.
func Score(durations []uint32) float64 {
	if len(durations) < 2 {
		return 0.5
	}

	counts := make(map[uint32]int)
	best := 0
	for _, dur := range durations {
		counts[dur]++
		if counts[dur] > best {
			best = counts[dur]
		}
	}
	return float64(best) / float64(len(durations))
}
