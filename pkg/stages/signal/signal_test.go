package signal

import (
	"math"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		sizes []uint32
		want  float64
	}{
		{name: "no samples is neutral", sizes: nil, want: 0.5},
		{name: "single sample is neutral", sizes: []uint32{100}, want: 0.5},
		{name: "perfectly steady", sizes: []uint32{500, 500, 500, 500}, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.sizes); got != tt.want {
				t.Errorf("expected %g, got %g", tt.want, got)
			}
		})
	}
}

func TestScore_DecreasesWithVariance(t *testing.T) {
	steady := Score([]uint32{1000, 1010, 990, 1005, 995})
	jumpy := Score([]uint32{100, 5000, 50, 8000, 10})

	if steady <= jumpy {
		t.Errorf("expected steady stream (%g) to outscore jumpy stream (%g)", steady, jumpy)
	}
	if steady <= 0.9 {
		t.Errorf("expected near-steady stream to score above 0.9, got %g", steady)
	}
	if jumpy <= 0 || jumpy >= 0.5 {
		t.Errorf("expected jumpy stream in (0,0.5), got %g", jumpy)
	}
}

func TestVariation(t *testing.T) {
	// Sizes 100 and 300: mean 200, stddev 100, cv 0.5.
	got := variation([]uint32{100, 300})
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("expected cv 0.5, got %g", got)
	}

	if got := variation([]uint32{0, 0}); got != 0 {
		t.Errorf("expected 0 for zero mean, got %g", got)
	}
}
