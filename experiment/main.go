// Package main is a test program for stage scoring against synthetic samples.
package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"

	"github.com/user/vidcheck/pkg/media"
	"github.com/user/vidcheck/pkg/media/mediatest"
	"github.com/user/vidcheck/pkg/stages/probe"
	"github.com/user/vidcheck/pkg/stages/signal"
	"github.com/user/vidcheck/pkg/stages/temporal"
)

const sampleCount = 96

type pattern struct {
	name  string
	sizes []int
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rng := rand.New(rand.NewSource(1))

	patterns := []pattern{
		{"steady", mediatest.SteadySizes(sampleCount, 1200)},
		{"jittered", jittered(rng, 1200, 0.1)},
		{"noisy", jittered(rng, 1200, 0.6)},
		{"alternating", alternating(150, 9000)},
		{"ramp", ramp(200, 80)},
	}

	fmt.Printf("%-12s %10s %10s %10s\n", "pattern", "container", "smooth", "cadence")
	for _, p := range patterns {
		data, err := mediatest.Fragmented(p.sizes, 512)
		if err != nil {
			return fmt.Errorf("build %s: %w", p.name, err)
		}
		info, err := media.Probe(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("probe %s: %w", p.name, err)
		}
		fmt.Printf("%-12s %10.3f %10.3f %10.3f\n",
			p.name,
			probe.Score(info),
			signal.Score(info.SampleSizes),
			temporal.Score(info.SampleDurations),
		)
	}
	return nil
}

func jittered(rng *rand.Rand, base int, spread float64) []int {
	sizes := make([]int, sampleCount)
	for i := range sizes {
		jitter := (rng.Float64()*2 - 1) * spread * float64(base)
		sizes[i] = base + int(jitter)
	}
	return sizes
}

func alternating(low, high int) []int {
	sizes := make([]int, sampleCount)
	for i := range sizes {
		if i%2 == 0 {
			sizes[i] = low
		} else {
			sizes[i] = high
		}
	}
	return sizes
}

func ramp(base, step int) []int {
	sizes := make([]int, sampleCount)
	for i := range sizes {
		sizes[i] = base + i*step
	}
	return sizes
}
