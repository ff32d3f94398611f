// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/spirit/audio"
	"github.com/ik5/spirit/utils"
)

// chunkFrames bounds the per-call buffer handed to the go-audio encoder.
const chunkFrames = 8192

// Encode writes b as a canonical PCM WAV stream. Samples are clamped to
// [-1, 1] and truncated toward zero at the requested bit depth; stereo
// frames are interleaved as L, R.
//
// The header sizes are patched once all data is written, so w must be
// seekable.
func Encode(w io.WriteSeeker, sampleRate, bitDepth int, b audio.Block) error {
	spec := Spec{Channels: b.Channels(), SampleRate: sampleRate, BitDepth: bitDepth}
	if err := spec.Validate(); err != nil {
		return err
	}

	frames := b.Len()
	dataSize := spec.DataSize(frames)
	if int64(dataSize) > maxDataSize {
		return fmt.Errorf("%w: %d bytes does not fit a RIFF file", ErrDataSizeMismatch, dataSize)
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, spec.Channels, pcmFormat)

	buf := &goaudio.IntBuffer{
		Data: make([]int, 0, min(max(frames, 1), chunkFrames)*spec.Channels),
		Format: &goaudio.Format{
			NumChannels: spec.Channels,
			SampleRate:  sampleRate,
		},
		SourceBitDepth: bitDepth,
	}

	// The first Write also emits the header, so an empty block still goes
	// through the loop once.
	for start := 0; start == 0 || start < frames; start += chunkFrames {
		end := min(start+chunkFrames, frames)

		buf.Data = buf.Data[:0]
		for i := start; i < end; i++ {
			for ch := range spec.Channels {
				v, err := utils.Quantize(b.At(i, ch), bitDepth)
				if err != nil {
					return err
				}
				buf.Data = append(buf.Data, v)
			}
		}

		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}

	if enc.WrittenBytes != HeaderSize+dataSize {
		return fmt.Errorf("%w: wrote %d bytes, want %d", ErrDataSizeMismatch, enc.WrittenBytes, HeaderSize+dataSize)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing header: %w", err)
	}

	return nil
}
