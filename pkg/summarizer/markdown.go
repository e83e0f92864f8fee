package summarizer

import (
	"fmt"
	"strings"
)

// MarkdownFormatter renders a Summary as a Markdown report.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format converts a Summary to Markdown.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	var sb strings.Builder

	verdict := "❌ FAIL"
	if summary.Verdict.Passed {
		verdict = "✅ PASS"
	}

	sb.WriteString("# Analysis Summary\n\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", summary.GeneratedAt.Format("2006-01-02 15:04:05"))

	sb.WriteString("## Input\n\n")
	fmt.Fprintf(&sb, "- **File**: %s\n", summary.Input.Name)
	fmt.Fprintf(&sb, "- **Size**: %d bytes\n", summary.Input.SizeBytes)
	fmt.Fprintf(&sb, "- **Codec**: %s\n", summary.Input.Codec)
	fmt.Fprintf(&sb, "- **Duration**: %d ms (%d samples)\n\n", summary.Input.DurationMs, summary.Input.Samples)

	sb.WriteString("## Verdict\n\n")
	fmt.Fprintf(&sb, "- **Result**: %s\n", verdict)
	fmt.Fprintf(&sb, "- **Confidence**: %.3f (threshold %.2f)\n", summary.Verdict.Confidence, summary.Settings.Threshold)
	fmt.Fprintf(&sb, "- **Elapsed**: %s\n\n", summary.Verdict.Elapsed)

	if len(summary.Scores) > 0 {
		sb.WriteString("## Sub-scores\n\n")
		sb.WriteString("| Metric | Score |\n")
		sb.WriteString("|--------|-------|\n")
		for _, entry := range summary.Scores {
			fmt.Fprintf(&sb, "| %s | %.3f |\n", entry.Name, entry.Value)
		}
	}

	return sb.String()
}

// Ensure MarkdownFormatter implements Formatter
var _ Formatter = (*MarkdownFormatter)(nil)
