// Package probe implements the container-integrity analysis stage.
// It decodes the MP4 box structure and scores how much the container
// looks like an ordinary camera or encoder product.
package probe

import (
	"context"
	"fmt"
	"strconv"

	"github.com/user/vidcheck/pkg/media"
	"github.com/user/vidcheck/pkg/pipeline"
)

// Name is the stage name used in pipelines and diagnostics.
const Name = "probe"

// ScoreName is the sub-score this stage contributes.
const ScoreName = "container"

// Descriptor returns the stage descriptor with the given weight.
func Descriptor(weight float64) pipeline.StageDescriptor {
	return pipeline.StageDescriptor{Name: Name, Weight: weight, Work: run}
}

func run(ctx context.Context, in pipeline.RunInput) (pipeline.StageOutcome, error) {
	info, err := media.ProbeArtifact(in.Artifact)
	if err != nil {
		return pipeline.StageOutcome{}, fmt.Errorf("probe container: %w", err)
	}

	return pipeline.StageOutcome{
		SubScores: map[string]float64{ScoreName: Score(info)},
		Details: map[string]string{
			"codec":       string(info.Codec),
			"tracks":      strconv.Itoa(info.TrackCount),
			"samples":     strconv.Itoa(info.SampleCount()),
			"duration_ms": strconv.Itoa(info.DurationMs),
		},
	}, nil
}

// Score rates the container structure in [0,1]. Exposed as a standalone
// function for testing and reuse.
func Score(info *media.Info) float64 {
	score := 1.0

	switch info.Codec {
	case media.CodecH264, media.CodecAV1:
		// Fully supported codecs.
	case media.CodecHEVC:
		score -= 0.1
	default:
		score -= 0.7
	}

	if info.SampleCount() == 0 {
		score -= 0.3
	} else if info.SyncSampleCount == 0 {
		// A stream without a single keyframe is not playable as-is.
		score -= 0.2
	}

	if info.DurationMs == 0 {
		score -= 0.1
	}

	if score < 0 {
		return 0
	}
	return score
}
