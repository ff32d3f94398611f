// SPDX-License-Identifier: EPL-2.0

// Package audio provides the data model shared by the generators and the encoder.
//
// # Configuration
//
// Config carries the sample rate and bit depth for a whole run. It is passed
// by value to every generator:
//
//	cfg := audio.Config{SampleRate: 48000, BitDepth: 24}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// A block for d seconds always holds cfg.NumSamples(d) frames, that is
// round(SampleRate * d). Sample i sits at cfg.Time(i) = i / SampleRate.
//
// # Blocks
//
// Generators return either a Mono block ([]float64) or a Stereo block
// ([]Frame). Both implement Block, which is what the WAV encoder consumes:
//
//	type Block interface {
//	    Channels() int
//	    Len() int
//	    At(i, ch int) float64
//	}
//
// # Sample Format
//
// Samples are float64 in the nominal range [-1.0, 1.0]. Generators scale
// their output by Amplitude (0.8) so sums and envelopes never reach full
// scale; the encoder clamps anything outside the range.
//
// # Error Handling
//
// Every argument validation error wraps ErrInvalidArgument:
//
//	if errors.Is(err, audio.ErrInvalidArgument) {
//	    // bad user input, nothing was written
//	}
package audio
