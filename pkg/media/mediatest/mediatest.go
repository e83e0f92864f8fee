// Package mediatest builds synthetic MP4 fixtures for tests.
package mediatest

import (
	"bytes"
	"fmt"

	"github.com/Eyevinn/mp4ff/mp4"
)

// DefaultTimescale is the media timescale used by fixtures (units/sec).
const DefaultTimescale = 12800

// Fragmented returns a minimal fragmented MP4 with one avc1 video track
// and one sample per entry of sampleSizes, each with the given duration
// in timescale units. Every 12th sample is marked as a sync sample.
// The sample payloads are zero bytes; the fixture is only structurally
// valid, which is all the probing code reads.
func Fragmented(sampleSizes []int, sampleDur uint32) ([]byte, error) {
	const trackID = 1

	init := mp4.CreateEmptyInit()
	init.AddEmptyTrack(DefaultTimescale, "video", "en")

	trak := init.Moov.Trak
	avc1 := mp4.CreateVisualSampleEntryBox("avc1", 64, 64, nil)
	trak.Mdia.Minf.Stbl.Stsd.AddChild(avc1)

	frag, err := mp4.CreateFragment(1, trackID)
	if err != nil {
		return nil, fmt.Errorf("create fragment: %w", err)
	}

	decodeTime := uint64(0)
	for i, size := range sampleSizes {
		flags := mp4.NonSyncSampleFlags
		if i%12 == 0 {
			flags = mp4.SyncSampleFlags
		}
		frag.AddFullSample(mp4.FullSample{
			Sample: mp4.Sample{
				Flags: flags,
				Size:  uint32(size),
				Dur:   sampleDur,
			},
			DecodeTime: decodeTime,
			Data:       make([]byte, size),
		})
		decodeTime += uint64(sampleDur)
	}

	var buf bytes.Buffer
	ftyp := mp4.NewFtyp("isom", 0x200, []string{"isom", "iso2", "avc1", "mp41"})
	if err := ftyp.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode ftyp: %w", err)
	}
	if err := init.Moov.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode moov: %w", err)
	}
	if err := frag.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode fragment: %w", err)
	}
	return buf.Bytes(), nil
}

// SteadySizes returns n sample sizes alternating mildly around base,
// resembling an ordinary encode.
func SteadySizes(n, base int) []int {
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = base + (i%5)*base/50
	}
	return sizes
}
