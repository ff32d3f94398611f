// SPDX-License-Identifier: EPL-2.0

// Package wav encodes blocks as canonical PCM WAV files and reads them back.
//
// Every file has a 44 byte header (RIFF, fmt, data) followed by little
// endian integer samples at 16, 24 or 32 bits. Mono and stereo are
// supported; stereo frames are interleaved L, R. The go-audio encoder does
// the byte packing and back-patches the chunk sizes when the stream is
// closed.
//
// # Encoding
//
//	err := wav.WriteFile("out/tone.wav", 44100, 16, block)
//
// WriteFile goes through a temporary file in the target directory and
// renames it into place, so a failed render never leaves a partial file.
// Encode writes to any io.WriteSeeker.
//
// Samples are clamped to [-1, 1] and scaled by the full scale code of the
// bit depth (32767, 8388607 or 2147483647), truncating toward zero.
//
// # Decoding
//
//	f, _ := os.Open("tone.wav")
//	clip, err := wav.Decode(f)
//	fmt.Println(clip.Header.SampleRate, clip.Frames(), clip.PeakDBFS())
//
// Decode only accepts the canonical layout the encoder produces.
//
// # Errors
//
// ErrUnsupportedBitDepth and ErrInvalidChannels wrap audio.ErrInvalidArgument
// and are returned before anything is written. ErrDataSizeMismatch means the
// encoder produced a different byte count than the block requires.
package wav
