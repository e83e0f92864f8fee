package summarizer

import (
	"fmt"
	"strings"
)

// TextFormatter renders a Summary as a plain-text report.
type TextFormatter struct{}

// NewTextFormatter creates a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format converts a Summary to plain text.
func (f *TextFormatter) Format(summary *Summary) string {
	var sb strings.Builder

	verdict := "FAIL"
	if summary.Verdict.Passed {
		verdict = "PASS"
	}

	fmt.Fprintf(&sb, "vidcheck analysis report\n")
	fmt.Fprintf(&sb, "generated: %s\n", summary.GeneratedAt.Format("2006-01-02 15:04:05"))
	if summary.RunID != "" {
		fmt.Fprintf(&sb, "run:       %s\n", summary.RunID)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "input:     %s (%d bytes)\n", summary.Input.Name, summary.Input.SizeBytes)
	fmt.Fprintf(&sb, "codec:     %s\n", summary.Input.Codec)
	fmt.Fprintf(&sb, "duration:  %d ms (%d samples)\n", summary.Input.DurationMs, summary.Input.Samples)
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "verdict:    %s\n", verdict)
	fmt.Fprintf(&sb, "confidence: %.3f (threshold %.2f)\n", summary.Verdict.Confidence, summary.Settings.Threshold)
	fmt.Fprintf(&sb, "elapsed:    %s\n", summary.Verdict.Elapsed)

	if len(summary.Scores) > 0 {
		sb.WriteString("\nsub-scores:\n")
		for _, entry := range summary.Scores {
			fmt.Fprintf(&sb, "  %-24s %.3f\n", entry.Name, entry.Value)
		}
	}

	return sb.String()
}

// Ensure TextFormatter implements Formatter
var _ Formatter = (*TextFormatter)(nil)
