// Package badge renders verdict badges using the gg library. The badge
// is the graphical counterpart of the summary report: a pass/fail
// header with one bar per sub-score.
package badge

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/user/vidcheck/pkg/ports"
)

const (
	badgeWidth   = 360
	headerHeight = 64
	rowHeight    = 24
	padding      = 16
	barWidth     = 150
	barHeight    = 10
)

var (
	passColor  = color.RGBA{R: 46, G: 125, B: 50, A: 255}
	failColor  = color.RGBA{R: 183, G: 28, B: 28, A: 255}
	bgColor    = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	barBgColor = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	barFgColor = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

// Renderer implements ports.BadgeRenderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render draws the badge and returns it as PNG data.
func (r *Renderer) Render(spec ports.BadgeSpec) ([]byte, error) {
	height := headerHeight + padding + len(spec.SubScores)*rowHeight + padding
	dc := gg.NewContext(badgeWidth, height)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(bgColor)
	dc.Clear()

	// Header band carries the verdict.
	accent := failColor
	label := "FAIL"
	if spec.Passed {
		accent = passColor
		label = "PASS"
	}
	dc.SetColor(accent)
	dc.DrawRectangle(0, 0, badgeWidth, headerHeight)
	dc.Fill()

	dc.SetColor(color.White)
	dc.DrawString(label, padding, 24)
	dc.DrawString(fmt.Sprintf("confidence %.1f%%", spec.Confidence*100), padding, 42)
	if spec.Title != "" {
		dc.DrawString(truncate(spec.Title, 44), padding, 58)
	}

	// One labeled bar per sub-score.
	for i, score := range spec.SubScores {
		y := float64(headerHeight + padding + i*rowHeight)
		dc.SetColor(color.White)
		dc.DrawString(truncate(score.Name, 24), padding, y+barHeight)

		barX := float64(badgeWidth - padding - barWidth)
		dc.SetColor(barBgColor)
		dc.DrawRectangle(barX, y, barWidth, barHeight)
		dc.Fill()

		dc.SetColor(barFgColor)
		dc.DrawRectangle(barX, y, barWidth*clamp01(score.Value), barHeight)
		dc.Fill()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Ensure Renderer implements ports.BadgeRenderer
var _ ports.BadgeRenderer = (*Renderer)(nil)
