// Package orchestrator coordinates a full analysis run: intake,
// pipeline execution, and output generation.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ideamans/go-l10n"

	"github.com/user/vidcheck/pkg/intake"
	"github.com/user/vidcheck/pkg/pipeline"
	"github.com/user/vidcheck/pkg/ports"
	"github.com/user/vidcheck/pkg/runner"
	"github.com/user/vidcheck/pkg/stages/classify"
	"github.com/user/vidcheck/pkg/stages/probe"
	"github.com/user/vidcheck/pkg/stages/signal"
	"github.com/user/vidcheck/pkg/stages/temporal"
	"github.com/user/vidcheck/pkg/summarizer"
)

// ErrCancelled is returned by Run when the analysis was cancelled
// before reaching a verdict.
var ErrCancelled = errors.New("analysis cancelled")

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input and outputs
	InputPath   string
	SummaryPath string
	BadgePath   string

	// Decision threshold for the pass/fail verdict
	Threshold float64

	// Stage weights
	ProbeWeight    float64
	SignalWeight   float64
	TemporalWeight float64
	ClassifyWeight float64

	// Summary output format ("text" or "markdown")
	SummaryFormat string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Threshold: pipeline.DefaultThreshold,

		ProbeWeight:    1,
		SignalWeight:   3,
		TemporalWeight: 3,
		ClassifyWeight: 1,

		SummaryFormat: "text",
	}
}

// Orchestrator coordinates the execution of a complete analysis run.
type Orchestrator struct {
	intake   *intake.Intake
	fs       ports.FileSystem
	badge    ports.BadgeRenderer
	reporter ports.ProgressReporter
	logger   ports.Logger
}

// New creates a new Orchestrator. The reporter may be nil when no
// interactive progress display is wanted.
func New(
	in *intake.Intake,
	fs ports.FileSystem,
	badge ports.BadgeRenderer,
	reporter ports.ProgressReporter,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		intake:   in,
		fs:       fs,
		badge:    badge,
		reporter: reporter,
		logger:   logger,
	}
}

// Run executes the complete analysis and writes the configured outputs.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info(l10n.F("Analyzing %s...", config.InputPath))

	// 1. Intake: validate the file and probe its structure
	artifact, info, err := o.intake.Prepare(config.InputPath)
	if err != nil {
		o.logger.Error(l10n.F("Failed to read input: %s", err))
		return RunResult{}, fmt.Errorf("intake: %w", err)
	}

	// 2. Assemble the stage pipeline
	p, err := pipeline.New([]pipeline.StageDescriptor{
		probe.Descriptor(config.ProbeWeight),
		signal.Descriptor(config.SignalWeight),
		temporal.Descriptor(config.TemporalWeight),
		classify.Descriptor(config.ClassifyWeight),
	}, pipeline.WithThreshold(config.Threshold))
	if err != nil {
		return RunResult{}, fmt.Errorf("build pipeline: %w", err)
	}

	// 3. Start the run and bridge progress events
	run, err := runner.Start(ctx, p, artifact, runner.WithLogger(o.logger))
	if err != nil {
		return RunResult{}, fmt.Errorf("start run: %w", err)
	}
	unsubscribe := run.SubscribeProgress(func(ev runner.ProgressEvent) {
		if o.reporter != nil {
			o.reporter.Progress(ev.StageName, ev.StageIndex, ev.Percent())
		}
		o.logger.Debug(l10n.F("Stage %s completed (%.1f%%)", ev.StageName, ev.Percent()))
	})
	defer unsubscribe()

	// Cancellation is cooperative, so the run always settles.
	<-run.Done()

	state := run.State()
	if o.reporter != nil {
		o.reporter.Finished(state.String())
	}

	switch state {
	case runner.StateFailed:
		failure := run.Failure()
		o.logger.Error(l10n.F("Analysis failed at stage %s: %s", failure.StageName, failure.Err))
		return RunResult{}, fmt.Errorf("run: %w", failure)

	case runner.StateCancelled:
		o.logger.Info(l10n.T("Analysis cancelled"))
		return RunResult{}, ErrCancelled
	}

	result := run.Result()
	if result.Classification {
		o.logger.Info(l10n.F("Verdict: PASS (confidence %.3f)", result.Confidence))
	} else {
		o.logger.Info(l10n.F("Verdict: FAIL (confidence %.3f)", result.Confidence))
	}

	// 4. Write the summary report
	if config.SummaryPath != "" {
		summary := summarizer.NewBuilder().
			WithRunID(run.ID()).
			WithInput(summarizer.InputInfo{
				Name:       artifact.Name(),
				SizeBytes:  artifact.Size(),
				Codec:      string(info.Codec),
				DurationMs: info.DurationMs,
				Samples:    info.SampleCount(),
			}).
			WithVerdict(result.Classification, result.Confidence, result.Elapsed).
			WithSubScores(result.SubScores).
			WithSettings(summarizer.Settings{
				Threshold: config.Threshold,
				Stages:    p.Len(),
			}).
			Build()
		writer := summarizer.NewWriter(o.fs, formatterFor(config.SummaryFormat))
		if err := writer.Write(config.SummaryPath, summary); err != nil {
			o.logger.Error(l10n.F("Failed to write summary: %s", err))
			return RunResult{}, fmt.Errorf("write summary: %w", err)
		}
		o.logger.Info(l10n.F("Summary saved to %s", config.SummaryPath))
	}

	// 5. Render the verdict badge
	if config.BadgePath != "" {
		data, err := o.badge.Render(badgeSpec(artifact.Name(), result))
		if err != nil {
			o.logger.Error(l10n.F("Failed to write badge: %s", err))
			return RunResult{}, fmt.Errorf("render badge: %w", err)
		}
		if err := o.fs.WriteFile(config.BadgePath, data); err != nil {
			o.logger.Error(l10n.F("Failed to write badge: %s", err))
			return RunResult{}, fmt.Errorf("write badge: %w", err)
		}
		o.logger.Info(l10n.F("Badge saved to %s", config.BadgePath))
	}

	o.logger.Info(l10n.T("Analysis completed successfully"))

	return RunResult{
		RunID:      run.ID(),
		Passed:     result.Classification,
		Confidence: result.Confidence,
		Elapsed:    result.Elapsed,
		SubScores:  result.SubScores,

		InputName:  artifact.Name(),
		SizeBytes:  artifact.Size(),
		Codec:      string(info.Codec),
		DurationMs: info.DurationMs,
		Samples:    info.SampleCount(),
	}, nil
}

func formatterFor(format string) summarizer.Formatter {
	switch format {
	case "markdown", "md":
		return summarizer.NewMarkdownFormatter()
	default:
		return summarizer.NewTextFormatter()
	}
}

func badgeSpec(name string, result *runner.DetectionResult) ports.BadgeSpec {
	names := make([]string, 0, len(result.SubScores))
	for n := range result.SubScores {
		names = append(names, n)
	}
	sort.Strings(names)

	scores := make([]ports.SubScore, 0, len(names))
	for _, n := range names {
		scores = append(scores, ports.SubScore{Name: n, Value: result.SubScores[n]})
	}
	return ports.BadgeSpec{
		Title:      name,
		Passed:     result.Classification,
		Confidence: result.Confidence,
		SubScores:  scores,
	}
}

// RunResult contains the results of an analysis run.
type RunResult struct {
	RunID      string
	Passed     bool
	Confidence float64
	Elapsed    time.Duration
	SubScores  map[string]float64

	// Input information carried through for display
	InputName  string
	SizeBytes  int64
	Codec      string
	DurationMs int
	Samples    int
}
