// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Amplitude is the headroom gain every generator applies before encoding.
const Amplitude = 0.8

// MaxDataBytes is the largest PCM payload the 32-bit RIFF size fields of a
// WAV file can describe.
const MaxDataBytes = math.MaxUint32 - 36

// Config is the immutable rendering configuration handed to every generator.
type Config struct {
	// SampleRate in Hz.
	SampleRate int
	// BitDepth of the encoded PCM: 16, 24 or 32.
	BitDepth int
}

// DefaultConfig is CD quality: 44.1kHz, 16-bit.
func DefaultConfig() Config {
	return Config{SampleRate: 44100, BitDepth: 16}
}

// Validate checks the parts of Config the encoder depends on.
// Restricting the rate to the recognized set is left to the caller.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, c.SampleRate)
	}

	switch c.BitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidBitDepth, c.BitDepth)
	}

	return nil
}

// NumSamples returns the block length for duration seconds:
// round(SampleRate * duration), never negative.
func (c Config) NumSamples(duration float64) int {
	n := math.Round(float64(c.SampleRate) * duration)
	if n <= 0 || math.IsNaN(n) {
		return 0
	}
	return int(n)
}

// CheckLength reports ErrInvalidDuration unless duration is a positive,
// finite number of seconds whose channels wide block fits in one WAV file.
func (c Config) CheckLength(duration float64, channels int) error {
	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}

	size := math.Round(float64(c.SampleRate)*duration) * float64(channels*c.BitDepth/8)
	if size > MaxDataBytes {
		return fmt.Errorf("%w: %vs does not fit in a WAV file", ErrInvalidDuration, duration)
	}

	return nil
}

// Time returns the timestamp of sample i in seconds.
func (c Config) Time(i int) float64 {
	return float64(i) / float64(c.SampleRate)
}

// Block is a finite run of normalized samples the encoder can consume.
type Block interface {
	// Channels count (1=mono, 2=stereo).
	Channels() int
	// Len is the number of frames.
	Len() int
	// At returns the sample of channel ch in frame i.
	At(i, ch int) float64
}

// Mono is a single channel block.
type Mono []float64

func (m Mono) Channels() int       { return 1 }
func (m Mono) Len() int            { return len(m) }
func (m Mono) At(i, _ int) float64 { return m[i] }

// Frame is one stereo sample pair.
type Frame struct {
	L, R float64
}

// Stereo is a two channel block, interleaved as L, R at write time.
type Stereo []Frame

func (s Stereo) Channels() int { return 2 }
func (s Stereo) Len() int      { return len(s) }

func (s Stereo) At(i, ch int) float64 {
	if ch == 0 {
		return s[i].L
	}
	return s[i].R
}

// Concat joins mono blocks in order into a new block.
func Concat(blocks ...Mono) Mono {
	total := 0
	for _, b := range blocks {
		total += len(b)
	}

	out := make(Mono, 0, total)
	for _, b := range blocks {
		out = append(out, b...)
	}

	return out
}

// Peak returns the largest absolute sample of b.
func Peak(b Block) float64 {
	peak := 0.0
	channels := b.Channels()
	for i := range b.Len() {
		for ch := range channels {
			if v := math.Abs(b.At(i, ch)); v > peak {
				peak = v
			}
		}
	}
	return peak
}
