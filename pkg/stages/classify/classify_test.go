package classify

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/user/vidcheck/pkg/pipeline"
	"github.com/user/vidcheck/pkg/stages/probe"
	"github.com/user/vidcheck/pkg/stages/signal"
	"github.com/user/vidcheck/pkg/stages/temporal"
)

func inputWith(outcomes map[string]pipeline.StageOutcome) pipeline.RunInput {
	return pipeline.RunInput{Outcomes: outcomes}
}

func TestCombine_AllStages(t *testing.T) {
	in := inputWith(map[string]pipeline.StageOutcome{
		probe.Name:    {SubScores: map[string]float64{probe.ScoreName: 1.0}},
		signal.Name:   {SubScores: map[string]float64{signal.ScoreName: 0.8}},
		temporal.Name: {SubScores: map[string]float64{temporal.ScoreName: 0.9}},
	})

	got, err := Combine(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 0.25*1.0 + 0.35*0.8 + 0.40*0.9
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %g, got %g", want, got)
	}
}

func TestCombine_MissingStageRenormalizes(t *testing.T) {
	in := inputWith(map[string]pipeline.StageOutcome{
		temporal.Name: {SubScores: map[string]float64{temporal.ScoreName: 0.9}},
	})

	got, err := Combine(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-0.9) > 1e-9 {
		t.Errorf("expected renormalized 0.9, got %g", got)
	}
}

func TestCombine_NoPriorScores(t *testing.T) {
	_, err := Combine(inputWith(nil))
	if !errors.Is(err, ErrNoPriorScores) {
		t.Errorf("expected ErrNoPriorScores, got %v", err)
	}

	// A prior stage without the expected sub-score doesn't count either.
	in := inputWith(map[string]pipeline.StageOutcome{
		probe.Name: {SubScores: map[string]float64{"unrelated": 1.0}},
	})
	_, err = Combine(in)
	if !errors.Is(err, ErrNoPriorScores) {
		t.Errorf("expected ErrNoPriorScores, got %v", err)
	}
}

func TestRun_ContributesAuthenticity(t *testing.T) {
	d := Descriptor(1)
	out, err := d.Work(context.Background(), inputWith(map[string]pipeline.StageOutcome{
		probe.Name: {SubScores: map[string]float64{probe.ScoreName: 0.6}},
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := out.SubScores[ScoreName]
	if !ok {
		t.Fatal("expected an authenticity sub-score")
	}
	if math.Abs(got-0.6) > 1e-9 {
		t.Errorf("expected 0.6, got %g", got)
	}
}
