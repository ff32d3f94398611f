// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/spirit/audio"
)

// HeaderSize is the length of the canonical RIFF/WAVE header the encoder emits.
const HeaderSize = 44

const pcmFormat = 1

// Spec describes the PCM layout of a file.
type Spec struct {
	Channels   int
	SampleRate int
	BitDepth   int
}

// Validate reports whether the encoder can produce s.
func (s Spec) Validate() error {
	if s.Channels != 1 && s.Channels != 2 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, s.Channels)
	}

	if s.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, s.SampleRate)
	}

	switch s.BitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, s.BitDepth)
	}

	return nil
}

// BlockAlign is the size of one frame in bytes.
func (s Spec) BlockAlign() int { return s.Channels * s.BitDepth / 8 }

// ByteRate is the number of bytes per second of audio.
func (s Spec) ByteRate() int { return s.SampleRate * s.BlockAlign() }

// DataSize is the length of the data chunk payload for frames frames.
func (s Spec) DataSize(frames int) int { return frames * s.BlockAlign() }

// Header is the parsed canonical 44 byte header.
type Header struct {
	Spec
	AudioFormat int
	ByteRate    int
	BlockAlign  int
	RIFFSize    uint32
	DataSize    uint32
}

// Frames is the number of frames declared by the data chunk.
func (h Header) Frames() int {
	if h.BlockAlign == 0 {
		return 0
	}
	return int(h.DataSize) / h.BlockAlign
}

// Duration is the declared length in seconds.
func (h Header) Duration() float64 {
	if h.SampleRate == 0 {
		return 0
	}
	return float64(h.Frames()) / float64(h.SampleRate)
}

// ReadHeader parses a canonical RIFF/WAVE header: the fmt chunk at offset 12
// followed directly by the data chunk.
func ReadHeader(r io.Reader) (Header, error) {
	header := make([]byte, HeaderSize)

	if _, err := io.ReadFull(r, header); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, fmt.Errorf("%w: truncated header", ErrNotWavFile)
		}
		return Header{}, fmt.Errorf("reading header: %w", err)
	}

	if !bytes.HasPrefix(header[:4], []byte("RIFF")) || !bytes.HasPrefix(header[8:12], []byte("WAVE")) {
		return Header{}, ErrNotWavFile
	}

	if !bytes.HasPrefix(header[12:16], []byte("fmt ")) || !bytes.HasPrefix(header[36:40], []byte("data")) {
		return Header{}, ErrUnsupportedWavLayout
	}

	h := Header{
		Spec: Spec{
			Channels:   int(binary.LittleEndian.Uint16(header[22:24])),
			SampleRate: int(binary.LittleEndian.Uint32(header[24:28])),
			BitDepth:   int(binary.LittleEndian.Uint16(header[34:36])),
		},
		AudioFormat: int(binary.LittleEndian.Uint16(header[20:22])),
		ByteRate:    int(binary.LittleEndian.Uint32(header[28:32])),
		BlockAlign:  int(binary.LittleEndian.Uint16(header[32:34])),
		RIFFSize:    binary.LittleEndian.Uint32(header[4:8]),
		DataSize:    binary.LittleEndian.Uint32(header[40:44]),
	}

	if h.AudioFormat != pcmFormat {
		return h, fmt.Errorf("%w: format tag %d", ErrNotPCM, h.AudioFormat)
	}

	return h, nil
}

// maxDataSize is the largest payload a RIFF size field can describe.
const maxDataSize = audio.MaxDataBytes
