// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/spirit/formats/wav"
)

// runInfo prints the header and peak of each WAV file in args.
func runInfo(w io.Writer, args []string) error {
	if len(args) == 0 {
		return usageError("info: expected at least one WAV file")
	}

	for _, path := range args {
		clip, err := decodeFile(path)
		if err != nil {
			return err
		}

		h := clip.Header
		fmt.Fprintf(w, "%s:\n", path)
		fmt.Fprintf(w, "  channels:    %d\n", h.Channels)
		fmt.Fprintf(w, "  sample rate: %d Hz\n", h.SampleRate)
		fmt.Fprintf(w, "  bit depth:   %d\n", h.BitDepth)
		fmt.Fprintf(w, "  frames:      %d\n", clip.Frames())
		fmt.Fprintf(w, "  duration:    %.3fs\n", h.Duration())
		fmt.Fprintf(w, "  peak:        %d (%.2f dBFS)\n", clip.Peak(), clip.PeakDBFS())
	}

	return nil
}

func decodeFile(path string) (*wav.Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening: %w", err)
	}
	defer f.Close()

	clip, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return clip, nil
}
