package probe

import (
	"testing"

	"github.com/user/vidcheck/pkg/media"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		info media.Info
		want float64
	}{
		{
			name: "clean h264",
			info: media.Info{
				Codec:           media.CodecH264,
				SampleSizes:     []uint32{100, 100},
				SyncSampleCount: 1,
				DurationMs:      1000,
			},
			want: 1.0,
		},
		{
			name: "hevc is playable but penalized",
			info: media.Info{
				Codec:           media.CodecHEVC,
				SampleSizes:     []uint32{100},
				SyncSampleCount: 1,
				DurationMs:      1000,
			},
			want: 0.9,
		},
		{
			name: "unknown codec",
			info: media.Info{
				Codec:           media.CodecUnknown,
				SampleSizes:     []uint32{100},
				SyncSampleCount: 1,
				DurationMs:      1000,
			},
			want: 0.3,
		},
		{
			name: "no samples",
			info: media.Info{
				Codec:      media.CodecH264,
				DurationMs: 1000,
			},
			want: 0.7,
		},
		{
			name: "no keyframe",
			info: media.Info{
				Codec:       media.CodecH264,
				SampleSizes: []uint32{100, 100},
				DurationMs:  1000,
			},
			want: 0.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(&tt.info); got != tt.want {
				t.Errorf("expected %g, got %g", tt.want, got)
			}
		})
	}
}

func TestScore_NeverNegative(t *testing.T) {
	info := media.Info{Codec: media.CodecUnknown}
	if got := Score(&info); got < 0 {
		t.Errorf("score must be clamped at 0, got %g", got)
	}
}

func TestDescriptor(t *testing.T) {
	d := Descriptor(1.5)
	if d.Name != Name {
		t.Errorf("expected name %q, got %q", Name, d.Name)
	}
	if d.Weight != 1.5 {
		t.Errorf("expected weight 1.5, got %g", d.Weight)
	}
	if d.Work == nil {
		t.Error("expected a work function")
	}
}
