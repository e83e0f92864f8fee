// Package integration contains integration tests for the analysis pipeline.
package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/user/vidcheck/pkg/adapters/logger"
	"github.com/user/vidcheck/pkg/adapters/osfilesystem"
	"github.com/user/vidcheck/pkg/intake"
	"github.com/user/vidcheck/pkg/media/mediatest"
	"github.com/user/vidcheck/pkg/pipeline"
	"github.com/user/vidcheck/pkg/runner"
	"github.com/user/vidcheck/pkg/stages/classify"
	"github.com/user/vidcheck/pkg/stages/probe"
	"github.com/user/vidcheck/pkg/stages/signal"
	"github.com/user/vidcheck/pkg/stages/temporal"
)

func writeFixture(t *testing.T, name string, sizes []int) string {
	t.Helper()
	data, err := mediatest.Fragmented(sizes, 512)
	if err != nil {
		t.Fatalf("failed to build fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func analysisPipeline(t *testing.T) *pipeline.Pipeline {
	t.Helper()
	p, err := pipeline.New([]pipeline.StageDescriptor{
		probe.Descriptor(1),
		signal.Descriptor(3),
		temporal.Descriptor(3),
		classify.Descriptor(1),
	})
	if err != nil {
		t.Fatalf("failed to build pipeline: %v", err)
	}
	return p
}

func analyze(t *testing.T, path string) *runner.Run {
	t.Helper()
	log := logger.NewNoop()
	in := intake.New(osfilesystem.New(), log)

	artifact, _, err := in.Prepare(path)
	if err != nil {
		t.Fatalf("intake failed: %v", err)
	}

	run, err := runner.Start(context.Background(), analysisPipeline(t), artifact, runner.WithLogger(log))
	if err != nil {
		t.Fatalf("failed to start run: %v", err)
	}
	select {
	case <-run.Done():
	case <-time.After(10 * time.Second):
		t.Fatal("run did not settle")
	}
	return run
}

func TestFullAnalysis_SteadyVideo(t *testing.T) {
	path := writeFixture(t, "steady.mp4", mediatest.SteadySizes(48, 1000))

	run := analyze(t, path)
	if run.State() != runner.StateSucceeded {
		t.Fatalf("expected succeeded, got %s (failure: %v)", run.State(), run.Failure())
	}

	events := run.Events()
	if len(events) != 4 {
		t.Fatalf("expected 4 progress events, got %d", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Percent() <= events[i-1].Percent() {
			t.Errorf("progress not strictly increasing at event %d", i)
		}
	}
	if events[3].Percent() != 100 {
		t.Errorf("expected final progress 100, got %f", events[3].Percent())
	}

	result := run.Result()
	if result == nil {
		t.Fatal("expected a result")
	}
	for _, name := range []string{"container", "bitrate_smoothness", "cadence", "authenticity"} {
		if _, ok := result.SubScores[name]; !ok {
			t.Errorf("missing sub-score %q", name)
		}
	}
	// Mildly varying sample sizes and constant cadence look like
	// ordinary camera footage.
	if result.SubScores["bitrate_smoothness"] < 0.9 {
		t.Errorf("expected high smoothness for steady sizes, got %f", result.SubScores["bitrate_smoothness"])
	}
	if result.SubScores["cadence"] != 1 {
		t.Errorf("expected cadence 1 for constant durations, got %f", result.SubScores["cadence"])
	}
	if !result.Classification {
		t.Errorf("expected PASS for steady video, confidence %f", result.Confidence)
	}
}

func TestFullAnalysis_ErraticVideo(t *testing.T) {
	// Wildly alternating sample sizes suggest per-frame synthesis.
	sizes := make([]int, 48)
	for i := range sizes {
		if i%2 == 0 {
			sizes[i] = 100
		} else {
			sizes[i] = 8000
		}
	}
	erratic := analyze(t, writeFixture(t, "erratic.mp4", sizes))
	steady := analyze(t, writeFixture(t, "steady.mp4", mediatest.SteadySizes(48, 1000)))

	if erratic.State() != runner.StateSucceeded {
		t.Fatalf("expected succeeded, got %s", erratic.State())
	}
	er := erratic.Result()
	sr := steady.Result()
	if er.Confidence >= sr.Confidence {
		t.Errorf("expected erratic confidence (%f) below steady confidence (%f)", er.Confidence, sr.Confidence)
	}
	if er.SubScores["bitrate_smoothness"] >= sr.SubScores["bitrate_smoothness"] {
		t.Errorf("expected lower smoothness for erratic sizes")
	}
}

func TestFullAnalysis_StageOutcomesFeedClassifier(t *testing.T) {
	run := analyze(t, writeFixture(t, "steady.mp4", mediatest.SteadySizes(24, 1000)))
	result := run.Result()

	// The classifier renormalizes over the three component scores, so
	// with all components at their observed values the combined score
	// must lie within their range.
	auth := result.SubScores["authenticity"]
	min, max := 1.0, 0.0
	for _, name := range []string{"container", "bitrate_smoothness", "cadence"} {
		v := result.SubScores[name]
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if auth < min || auth > max {
		t.Errorf("authenticity %f outside component range [%f, %f]", auth, min, max)
	}
}

func TestFullAnalysis_Cancellation(t *testing.T) {
	log := logger.NewNoop()
	in := intake.New(osfilesystem.New(), log)
	path := writeFixture(t, "steady.mp4", mediatest.SteadySizes(24, 1000))

	artifact, _, err := in.Prepare(path)
	if err != nil {
		t.Fatalf("intake failed: %v", err)
	}

	run := runner.NewRun(analysisPipeline(t), artifact, runner.WithLogger(log))
	run.Cancel()

	if run.State() != runner.StateCancelled {
		t.Fatalf("expected cancelled, got %s", run.State())
	}
	if err := run.Start(context.Background()); err == nil {
		t.Error("expected error starting a cancelled run")
	}
	if len(run.Events()) != 0 {
		t.Errorf("expected no events, got %d", len(run.Events()))
	}
}
