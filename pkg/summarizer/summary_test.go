package summarizer

import (
	"testing"
	"time"
)

func TestBuilder(t *testing.T) {
	summary := NewBuilder().
		WithRunID("run-1").
		WithInput(InputInfo{Name: "clip.mp4", SizeBytes: 4096, Codec: "h264", DurationMs: 960, Samples: 24}).
		WithVerdict(true, 0.87, 1500*time.Millisecond).
		WithSubScores(map[string]float64{"cadence": 0.9, "authenticity": 0.87, "container": 1.0}).
		WithSettings(Settings{Threshold: 0.5, Stages: 4}).
		Build()

	if summary.RunID != "run-1" {
		t.Errorf("unexpected run ID %q", summary.RunID)
	}
	if summary.Input.Name != "clip.mp4" {
		t.Errorf("unexpected input name %q", summary.Input.Name)
	}
	if !summary.Verdict.Passed || summary.Verdict.Confidence != 0.87 {
		t.Errorf("unexpected verdict %+v", summary.Verdict)
	}
	if summary.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}

	// Sub-scores come out sorted by name for stable reports.
	wantOrder := []string{"authenticity", "cadence", "container"}
	if len(summary.Scores) != len(wantOrder) {
		t.Fatalf("expected %d scores, got %d", len(wantOrder), len(summary.Scores))
	}
	for i, name := range wantOrder {
		if summary.Scores[i].Name != name {
			t.Errorf("score %d: expected %q, got %q", i, name, summary.Scores[i].Name)
		}
	}
}
