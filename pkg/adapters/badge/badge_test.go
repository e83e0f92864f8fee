package badge

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/user/vidcheck/pkg/ports"
)

func TestRender_ProducesPNG(t *testing.T) {
	r := New()
	data, err := r.Render(ports.BadgeSpec{
		Title:      "sample.mp4",
		Passed:     true,
		Confidence: 0.925,
		SubScores: []ports.SubScore{
			{Name: "container", Value: 1.0},
			{Name: "bitrate_smoothness", Value: 0.85},
			{Name: "cadence", Value: 0.92},
		},
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != badgeWidth {
		t.Errorf("expected width %d, got %d", badgeWidth, bounds.Dx())
	}
	wantHeight := headerHeight + padding + 3*rowHeight + padding
	if bounds.Dy() != wantHeight {
		t.Errorf("expected height %d, got %d", wantHeight, bounds.Dy())
	}
}

func TestRender_NoSubScores(t *testing.T) {
	r := New()
	data, err := r.Render(ports.BadgeSpec{
		Title:      "empty.mp4",
		Passed:     false,
		Confidence: 0.2,
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
}

func TestRender_ClampsScoreValues(t *testing.T) {
	r := New()
	_, err := r.Render(ports.BadgeSpec{
		Passed:     true,
		Confidence: 0.5,
		SubScores: []ports.SubScore{
			{Name: "over", Value: 1.5},
			{Name: "under", Value: -0.3},
		},
	})
	if err != nil {
		t.Fatalf("Render failed on out-of-range values: %v", err)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a-very-long-file-name.mp4", 10, "a-very-lo…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
