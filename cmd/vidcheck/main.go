// Package main provides the CLI entry point for vidcheck.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/vidcheck/pkg/adapters/badge"
	"github.com/user/vidcheck/pkg/adapters/logger"
	"github.com/user/vidcheck/pkg/adapters/osfilesystem"
	"github.com/user/vidcheck/pkg/config"
	"github.com/user/vidcheck/pkg/intake"
	"github.com/user/vidcheck/pkg/orchestrator"
	"github.com/user/vidcheck/pkg/ports"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "vidcheck",
		Usage:   l10n.T("Analyze video files for signs of synthetic generation"),
		Version: version,
		Commands: []*cli.Command{
			analyzeCommand(),
			inspectCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, orchestrator.ErrCancelled) {
		return 130
	}
	return 1
}

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     l10n.T("Run the staged analysis on a video file"),
		ArgsUsage: "<input>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"C"},
				Usage:   l10n.T("Path to a YAML configuration file"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   l10n.T("Write the summary report to this file"),
			},
			&cli.StringFlag{
				Name:    "badge",
				Aliases: []string{"b"},
				Usage:   l10n.T("Write the verdict badge PNG to this file"),
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   l10n.T("Summary format (text, markdown)"),
			},
			&cli.Float64Flag{
				Name:    "threshold",
				Aliases: []string{"t"},
				Usage:   l10n.T("Confidence threshold for a PASS verdict (0-1)"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
			&cli.BoolFlag{
				Name:  "no-progress",
				Usage: l10n.T("Disable the interactive progress bar"),
			},
		},
		Action: runAnalyze,
	}
}

func runAnalyze(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(l10n.T("input file argument is required"), 2)
	}

	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := newLogger(c)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	var reporter ports.ProgressReporter
	if !c.Bool("no-progress") && !c.Bool("quiet") {
		reporter = newBarReporter()
	}

	fs := osfilesystem.New()
	orch := orchestrator.New(intake.New(fs, log), fs, badge.New(), reporter, log)

	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig())
	if err != nil {
		return err
	}
	if !result.Passed {
		return cli.Exit("", 1)
	}
	return nil
}

// buildConfig layers a config file (when given) under the CLI flags.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	cfg.InputPath = c.Args().First()
	if c.IsSet("output") {
		cfg.SummaryPath = c.String("output")
	}
	if c.IsSet("badge") {
		cfg.BadgePath = c.String("badge")
	}
	if c.IsSet("format") {
		cfg.SummaryFormat = c.String("format")
	}
	if c.IsSet("threshold") {
		cfg.Threshold = c.Float64("threshold")
	}
	return cfg, nil
}

func newLogger(c *cli.Context) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     l10n.T("Show the container structure of a video file"),
		ArgsUsage: "<input>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   l10n.T("Log level (debug, info, warn, error)"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"Q"},
				Usage:   l10n.T("Suppress all log output"),
			},
		},
		Action: runInspect,
	}
}

func runInspect(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(l10n.T("input file argument is required"), 2)
	}

	log := newLogger(c)
	fs := osfilesystem.New()

	artifact, info, err := intake.New(fs, log).Prepare(c.Args().First())
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", l10n.T("File"), artifact.Name())
	fmt.Printf("%s: %d\n", l10n.T("Size (bytes)"), artifact.Size())
	fmt.Printf("%s: %s\n", l10n.T("Codec"), info.Codec)
	fmt.Printf("%s: %d\n", l10n.T("Tracks"), info.TrackCount)
	fmt.Printf("%s: %d ms\n", l10n.T("Duration"), info.DurationMs)
	fmt.Printf("%s: %d\n", l10n.T("Samples"), info.SampleCount())
	fmt.Printf("%s: %d\n", l10n.T("Sync samples"), info.SyncSampleCount)
	fmt.Printf("%s: %t\n", l10n.T("Fragmented"), info.Fragmented)
	return nil
}
