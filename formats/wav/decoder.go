// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/wav"
)

// Clip is a fully decoded PCM file.
type Clip struct {
	Header Header
	// Samples holds interleaved integer PCM at Header.BitDepth.
	Samples []int
}

// Frames is the number of decoded frames.
func (c *Clip) Frames() int {
	if c.Header.Channels == 0 {
		return 0
	}
	return len(c.Samples) / c.Header.Channels
}

// Channel returns the samples of channel ch.
func (c *Clip) Channel(ch int) []int {
	n := c.Header.Channels
	out := make([]int, 0, c.Frames())
	for i := ch; i < len(c.Samples); i += n {
		out = append(out, c.Samples[i])
	}
	return out
}

// Peak returns the largest absolute sample value.
func (c *Clip) Peak() int {
	peak := 0
	for _, v := range c.Samples {
		if v < 0 {
			v = -v
		}
		peak = max(peak, v)
	}
	return peak
}

// PeakDBFS returns the peak relative to full scale in dB. Silence is -Inf.
func (c *Clip) PeakDBFS() float64 {
	full := float64(int(1)<<(c.Header.BitDepth-1) - 1)
	return 20 * math.Log10(float64(c.Peak())/full)
}

// Decode reads a canonical PCM WAV stream in full.
func Decode(r io.ReadSeeker) (*Clip, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	if err := h.Validate(); err != nil {
		return nil, err
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding: %w", err)
	}

	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, ErrNotWavFile
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading samples: %w", err)
	}

	return &Clip{Header: h, Samples: buf.Data}, nil
}
