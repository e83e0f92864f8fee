package media

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/vidcheck/pkg/media/mediatest"
	"github.com/user/vidcheck/pkg/mocks"
)

func TestProbeArtifact(t *testing.T) {
	data, err := mediatest.Fragmented(mediatest.SteadySizes(12, 800), 512)
	if err != nil {
		t.Fatalf("build fixture: %v", err)
	}

	info, err := ProbeArtifact(mocks.NewArtifact("clip.mp4", data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.SampleCount() != 12 {
		t.Errorf("expected 12 samples, got %d", info.SampleCount())
	}

	wantErr := errors.New("open failed")
	broken := mocks.NewArtifact("clip.mp4", nil)
	broken.OpenFunc = func() (io.ReadSeekCloser, error) { return nil, wantErr }
	if _, err := ProbeArtifact(broken); !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped open error, got %v", err)
	}
}

func TestProbe_InvalidData(t *testing.T) {
	_, err := Probe(bytes.NewReader([]byte("not an mp4 file at all")))
	if err == nil {
		t.Fatal("expected error for invalid data")
	}
}

func TestProbe_Fragmented(t *testing.T) {
	data, err := mediatest.Fragmented(mediatest.SteadySizes(24, 1000), 512)
	if err != nil {
		t.Fatalf("build fixture: %v", err)
	}

	info, err := Probe(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !info.Fragmented {
		t.Error("expected a fragmented file")
	}
	if info.Codec != CodecH264 {
		t.Errorf("expected codec h264, got %s", info.Codec)
	}
	if info.SampleCount() != 24 {
		t.Errorf("expected 24 samples, got %d", info.SampleCount())
	}
	if info.SyncSampleCount != 2 {
		t.Errorf("expected 2 sync samples, got %d", info.SyncSampleCount)
	}
	if info.Timescale != mediatest.DefaultTimescale {
		t.Errorf("expected timescale %d, got %d", mediatest.DefaultTimescale, info.Timescale)
	}
	// 24 samples of 512 units at 12800 units/sec = 960 ms.
	if info.DurationMs != 960 {
		t.Errorf("expected 960 ms, got %d", info.DurationMs)
	}
	for i, dur := range info.SampleDurations {
		if dur != 512 {
			t.Fatalf("sample %d: expected duration 512, got %d", i, dur)
		}
	}
}

func TestInfoFromFile_Progressive(t *testing.T) {
	f := &mp4.File{
		Moov: &mp4.MoovBox{
			Traks: []*mp4.TrakBox{
				{
					Tkhd: &mp4.TkhdBox{TrackID: 1},
					Mdia: &mp4.MdiaBox{
						Hdlr: &mp4.HdlrBox{HandlerType: "vide"},
						Mdhd: &mp4.MdhdBox{Timescale: 1000, Duration: 2000},
						Minf: &mp4.MinfBox{
							Stbl: &mp4.StblBox{
								Stsz: &mp4.StszBox{
									SampleNumber: 3,
									SampleSize:   []uint32{100, 200, 150},
								},
								Stts: &mp4.SttsBox{
									SampleCount:     []uint32{3},
									SampleTimeDelta: []uint32{40},
								},
								Stss: &mp4.StssBox{SampleNumber: []uint32{1}},
							},
						},
					},
				},
			},
		},
	}

	info, err := infoFromFile(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Fragmented {
		t.Error("expected a progressive file")
	}
	if info.TrackCount != 1 {
		t.Errorf("expected 1 track, got %d", info.TrackCount)
	}
	if info.DurationMs != 2000 {
		t.Errorf("expected 2000 ms, got %d", info.DurationMs)
	}
	if info.SampleCount() != 3 {
		t.Fatalf("expected 3 samples, got %d", info.SampleCount())
	}
	want := []uint32{100, 200, 150}
	for i, size := range info.SampleSizes {
		if size != want[i] {
			t.Errorf("sample %d: expected size %d, got %d", i, want[i], size)
		}
	}
	for i, dur := range info.SampleDurations {
		if dur != 40 {
			t.Errorf("sample %d: expected duration 40, got %d", i, dur)
		}
	}
	if info.SyncSampleCount != 1 {
		t.Errorf("expected 1 sync sample, got %d", info.SyncSampleCount)
	}
}

func TestInfoFromFile_NoVideoTrack(t *testing.T) {
	f := &mp4.File{
		Moov: &mp4.MoovBox{
			Traks: []*mp4.TrakBox{
				{
					Tkhd: &mp4.TkhdBox{TrackID: 1},
					Mdia: &mp4.MdiaBox{
						Hdlr: &mp4.HdlrBox{HandlerType: "soun"},
					},
				},
			},
		},
	}

	if _, err := infoFromFile(f); err == nil {
		t.Fatal("expected error for a file without a video track")
	}
}

func TestDetectCodec(t *testing.T) {
	build := func(entry string) *mp4.TrakBox {
		stsd := &mp4.StsdBox{}
		stsd.AddChild(mp4.CreateVisualSampleEntryBox(entry, 64, 64, nil))
		return &mp4.TrakBox{
			Mdia: &mp4.MdiaBox{
				Hdlr: &mp4.HdlrBox{HandlerType: "vide"},
				Minf: &mp4.MinfBox{Stbl: &mp4.StblBox{Stsd: stsd}},
			},
		}
	}

	tests := []struct {
		entry string
		want  Codec
	}{
		{entry: "avc1", want: CodecH264},
		{entry: "avc3", want: CodecH264},
		{entry: "av01", want: CodecAV1},
		{entry: "hvc1", want: CodecHEVC},
		{entry: "vp09", want: CodecUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			if got := detectCodec(build(tt.entry)); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
