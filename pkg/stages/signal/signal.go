// Package signal implements the bitrate-smoothness analysis stage.
// Re-encoded or spliced footage tends to show sample-size variance
// patterns that differ from a single-pass camera encode; the stage
// scores the coefficient of variation of the video samples.
package signal

import (
	"context"
	"fmt"
	"math"

	"github.com/user/vidcheck/pkg/media"
	"github.com/user/vidcheck/pkg/pipeline"
)

// Name is the stage name used in pipelines and diagnostics.
const Name = "signal"

// ScoreName is the sub-score this stage contributes.
const ScoreName = "bitrate_smoothness"

// Descriptor returns the stage descriptor with the given weight.
func Descriptor(weight float64) pipeline.StageDescriptor {
	return pipeline.StageDescriptor{Name: Name, Weight: weight, Work: run}
}

func run(ctx context.Context, in pipeline.RunInput) (pipeline.StageOutcome, error) {
	info, err := media.ProbeArtifact(in.Artifact)
	if err != nil {
		return pipeline.StageOutcome{}, fmt.Errorf("read samples: %w", err)
	}

	return pipeline.StageOutcome{
		SubScores: map[string]float64{ScoreName: Score(info.SampleSizes)},
		Details: map[string]string{
			"variation": fmt.Sprintf("%.4f", variation(info.SampleSizes)),
		},
	}, nil
}

// Score maps the sample-size coefficient of variation into [0,1]:
// 1 for a perfectly steady stream, approaching 0 as variance grows.
// Fewer than two samples scores a neutral 0.5.
func Score(sizes []uint32) float64 {
	if len(sizes) < 2 {
		return 0.5
	}
	return 1 / (1 + variation(sizes))
}

// variation returns the coefficient of variation (stddev / mean).
func variation(sizes []uint32) float64 {
	if len(sizes) < 2 {
		return 0
	}

	mean := 0.0
	for _, s := range sizes {
		mean += float64(s)
	}
	mean /= float64(len(sizes))
	if mean == 0 {
		return 0
	}

	variance := 0.0
	for _, s := range sizes {
		d := float64(s) - mean
		variance += d * d
	}
	variance /= float64(len(sizes))

	return math.Sqrt(variance) / mean
}
