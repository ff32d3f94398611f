// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds helpers shared by the package tests: synthetic
// blocks, an in-memory seekable sink and readers for rendered files.
package audiotest

import (
	"math"
)

// MockBlock is an audio.Block whose samples come from a waveform function.
// It implements the interface without importing it.
type MockBlock struct {
	channels int
	frames   int
	waveform func(frame, channel int) float64
}

// NewMockBlock creates a block of frames frames.
func NewMockBlock(channels, frames int, waveform func(frame, channel int) float64) *MockBlock {
	return &MockBlock{
		channels: channels,
		frames:   frames,
		waveform: waveform,
	}
}

// NewSilentBlock creates a block of zeros.
func NewSilentBlock(channels, frames int) *MockBlock {
	return NewMockBlock(channels, frames, func(int, int) float64 { return 0 })
}

// NewSineBlock creates a full scale sine at frequency Hz on every channel.
func NewSineBlock(sampleRate, channels, frames int, frequency float64) *MockBlock {
	return NewMockBlock(channels, frames, func(frame, _ int) float64 {
		t := float64(frame) / float64(sampleRate)
		return math.Sin(2 * math.Pi * frequency * t)
	})
}

// NewConstantBlock creates a block holding value everywhere.
func NewConstantBlock(channels, frames int, value float64) *MockBlock {
	return NewMockBlock(channels, frames, func(int, int) float64 { return value })
}

func (m *MockBlock) Channels() int        { return m.channels }
func (m *MockBlock) Len() int             { return m.frames }
func (m *MockBlock) At(i, ch int) float64 { return m.waveform(i, ch) }
