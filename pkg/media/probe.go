// Package media provides MP4 container probing for the analysis stages.
package media

import (
	"fmt"
	"io"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/vidcheck/pkg/ports"
)

// Codec represents a video codec type.
type Codec string

const (
	CodecH264    Codec = "h264"
	CodecHEVC    Codec = "hevc"
	CodecAV1     Codec = "av1"
	CodecUnknown Codec = "unknown"
)

// Info summarizes the structure of a video file. Sample-level slices
// are empty for fragmented files whose tables live in movie fragments;
// in that case the per-fragment samples are merged in decode order.
type Info struct {
	Codec        Codec
	TrackCount   int
	VideoTrackID uint32
	Timescale    uint32
	DurationMs   int
	Fragmented   bool

	// Per-sample data for the video track, in decode order.
	SampleSizes     []uint32
	SampleDurations []uint32
	SyncSampleCount int
}

// SampleCount returns the number of video samples found.
func (i *Info) SampleCount() int {
	return len(i.SampleSizes)
}

// ProbeArtifact opens the artifact and probes its container structure.
func ProbeArtifact(a ports.Artifact) (*Info, error) {
	rc, err := a.Open()
	if err != nil {
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	defer rc.Close()
	return Probe(rc)
}

// Probe decodes the MP4 box structure and extracts the video track's
// sample statistics.
func Probe(rs io.ReadSeeker) (*Info, error) {
	mp4File, err := mp4.DecodeFile(rs)
	if err != nil {
		return nil, fmt.Errorf("decode mp4: %w", err)
	}
	return infoFromFile(mp4File)
}

// infoFromFile reads the parsed box tree. Split out so tests can build
// box structures directly.
func infoFromFile(f *mp4.File) (*Info, error) {
	moov := f.Moov
	if moov == nil && f.Init != nil {
		moov = f.Init.Moov
	}
	if moov == nil {
		return nil, fmt.Errorf("no moov box found")
	}

	info := &Info{
		Codec:      CodecUnknown,
		Fragmented: f.IsFragmented(),
		TrackCount: len(moov.Traks),
	}

	var videoTrak *mp4.TrakBox
	for _, trak := range moov.Traks {
		if trak.Mdia != nil && trak.Mdia.Hdlr != nil && trak.Mdia.Hdlr.HandlerType == "vide" {
			videoTrak = trak
			break
		}
	}
	if videoTrak == nil {
		return nil, fmt.Errorf("no video track found")
	}

	if videoTrak.Tkhd != nil {
		info.VideoTrackID = videoTrak.Tkhd.TrackID
	}
	if videoTrak.Mdia.Mdhd != nil {
		info.Timescale = videoTrak.Mdia.Mdhd.Timescale
		if info.Timescale > 0 {
			info.DurationMs = int(videoTrak.Mdia.Mdhd.Duration * 1000 / uint64(info.Timescale))
		}
	}

	info.Codec = detectCodec(videoTrak)

	if info.Fragmented {
		collectFragmentSamples(f, info)
	} else {
		collectProgressiveSamples(videoTrak, info)
	}

	// A fragmented file's duration often lives only in the fragments.
	if info.DurationMs == 0 && info.Timescale > 0 {
		total := uint64(0)
		for _, dur := range info.SampleDurations {
			total += uint64(dur)
		}
		info.DurationMs = int(total * 1000 / uint64(info.Timescale))
	}

	return info, nil
}

func detectCodec(trak *mp4.TrakBox) Codec {
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsd == nil {
		return CodecUnknown
	}
	for _, child := range trak.Mdia.Minf.Stbl.Stsd.Children {
		switch child.Type() {
		case "avc1", "avc3":
			return CodecH264
		case "hvc1", "hev1":
			return CodecHEVC
		case "av01":
			return CodecAV1
		}
	}
	return CodecUnknown
}

func collectProgressiveSamples(trak *mp4.TrakBox, info *Info) {
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil {
		return
	}
	stbl := trak.Mdia.Minf.Stbl

	if stbl.Stsz != nil {
		count := stbl.Stsz.SampleNumber
		info.SampleSizes = make([]uint32, 0, count)
		info.SampleDurations = make([]uint32, 0, count)
		for sampleNr := uint32(1); sampleNr <= count; sampleNr++ {
			info.SampleSizes = append(info.SampleSizes, stbl.Stsz.GetSampleSize(int(sampleNr)))
			if stbl.Stts != nil {
				_, dur := stbl.Stts.GetDecodeTime(sampleNr)
				info.SampleDurations = append(info.SampleDurations, dur)
			}
		}
	}
	if stbl.Stss != nil {
		info.SyncSampleCount = len(stbl.Stss.SampleNumber)
	}
}

func collectFragmentSamples(f *mp4.File, info *Info) {
	var trex *mp4.TrexBox
	if f.Init != nil && f.Init.Moov != nil && f.Init.Moov.Mvex != nil {
		for _, t := range f.Init.Moov.Mvex.Trexs {
			if t.TrackID == info.VideoTrackID {
				trex = t
				break
			}
		}
	}

	for _, seg := range f.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}
			for _, traf := range frag.Moof.Trafs {
				if traf.Tfhd.TrackID != info.VideoTrackID {
					continue
				}
				samples, err := frag.GetFullSamples(trex)
				if err != nil {
					continue
				}
				for _, sample := range samples {
					info.SampleSizes = append(info.SampleSizes, sample.Size)
					info.SampleDurations = append(info.SampleDurations, sample.Dur)
					if sample.Flags == mp4.SyncSampleFlags {
						info.SyncSampleCount++
					}
				}
			}
		}
	}
}
