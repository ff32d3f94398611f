// SPDX-License-Identifier: EPL-2.0

// Package spirit renders frequency catalogs and fixed presets into PCM WAV
// files.
//
// A Generator is built from an audio configuration, an output directory and
// a duration. Each method renders one recipe and writes its files below the
// output directory:
//
//	g, err := spirit.New(spirit.Options{
//	    Audio:     audio.Config{SampleRate: 48000, BitDepth: 24},
//	    OutputDir: "output",
//	    Duration:  60,
//	}, logger)
//	if err != nil {
//	    return err
//	}
//
//	// output/solfeggio/solfeggio_528_528.00hz.wav, ...
//	err = g.Category("solfeggio")
//
// # Recipes
//
// Catalog categories render one mono file per entry. Entries below 20 Hz
// become isochronic pulses on a 200 Hz carrier, everything else a sine.
// Entries with hz = 0 are skipped.
//
// The fixed presets are BinauralSet, Schumann, ChakraMeditation, Tuning, Om
// and Noise; All runs every category followed by every preset. Sweep, Drone,
// Layer, Bowl and Custom render a single file from caller supplied
// frequencies.
//
// # Errors
//
// Argument errors wrap audio.ErrInvalidArgument and are returned before any
// directory or file is created. Any other error aborts the recipe at the
// file that failed; files already written are kept, and the failed file is
// never left behind half written.
package spirit
