package main

import (
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/user/vidcheck/pkg/ports"
)

// barReporter displays pipeline progress as a terminal progress bar.
type barReporter struct {
	bar *progressbar.ProgressBar
}

func newBarReporter() *barReporter {
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("analyzing"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
	return &barReporter{bar: bar}
}

func (r *barReporter) Progress(stageName string, stageIndex int, percent float64) {
	r.bar.Describe(stageName)
	_ = r.bar.Set(int(percent))
}

func (r *barReporter) Finished(state string) {
	_ = r.bar.Finish()
}

var _ ports.ProgressReporter = (*barReporter)(nil)
