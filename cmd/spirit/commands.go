// SPDX-License-Identifier: EPL-2.0

package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/ik5/spirit"
)

// command is a subcommand that is not a catalog category.
type command struct {
	name    string
	args    string
	summary string
	// flags registers command specific flags and returns the action to run
	// once they are parsed.
	flags func(fs *flag.FlagSet) func(g *spirit.Generator, args []string) error
}

var presetCommands = []command{
	{
		name:    "binaural",
		args:    "[--base HZ]",
		summary: "Generate binaural beat presets for every brainwave state",
		flags: func(fs *flag.FlagSet) func(*spirit.Generator, []string) error {
			base := fs.Float64("base", spirit.CarrierHz, "base carrier frequency in `Hz`")
			return func(g *spirit.Generator, args []string) error {
				if err := noArgs(args); err != nil {
					return err
				}
				return g.BinauralSet(*base)
			}
		},
	},
	simple("schumann", "Generate Schumann resonance (7.83 Hz)", (*spirit.Generator).Schumann),
	simple("tuning", "Generate 432 Hz vs 440 Hz comparison", (*spirit.Generator).Tuning),
	simple("om", "Generate Om tone", (*spirit.Generator).Om),
	simple("noise", "Generate noise backgrounds", (*spirit.Generator).Noise),
	simple("meditation", "Generate the chakra meditation sequence", (*spirit.Generator).ChakraMeditation),
	simple("all", "Generate all frequencies and presets", (*spirit.Generator).All),
	{
		name:    "sweep",
		args:    "[--start HZ] [--end HZ]",
		summary: "Generate a logarithmic frequency sweep",
		flags: func(fs *flag.FlagSet) func(*spirit.Generator, []string) error {
			start := fs.Float64("start", 20, "start frequency in `Hz`")
			end := fs.Float64("end", 20000, "end frequency in `Hz`")
			return func(g *spirit.Generator, args []string) error {
				if err := noArgs(args); err != nil {
					return err
				}
				return g.Sweep(*start, *end)
			}
		},
	},
	{
		name:    "drone",
		args:    "F1,F2,...",
		summary: "Generate an ambient drone",
		flags: func(*flag.FlagSet) func(*spirit.Generator, []string) error {
			return func(g *spirit.Generator, args []string) error {
				freqs, err := parseFrequencies(args)
				if err != nil {
					return err
				}
				return g.Drone(freqs)
			}
		},
	},
	{
		name:    "layer",
		args:    "F1,F2,...",
		summary: "Generate layered frequencies",
		flags: func(*flag.FlagSet) func(*spirit.Generator, []string) error {
			return func(g *spirit.Generator, args []string) error {
				freqs, err := parseFrequencies(args)
				if err != nil {
					return err
				}
				return g.Layer(freqs)
			}
		},
	},
	{
		name:    "bowl",
		args:    "HZ",
		summary: "Generate a singing bowl tone",
		flags: func(*flag.FlagSet) func(*spirit.Generator, []string) error {
			return func(g *spirit.Generator, args []string) error {
				hz, err := parseSingle(args)
				if err != nil {
					return err
				}
				return g.Bowl(hz)
			}
		},
	},
	{
		name:    "custom",
		args:    "HZ [--mode sine|binaural|isochronic]",
		summary: "Generate a custom frequency",
		flags: func(fs *flag.FlagSet) func(*spirit.Generator, []string) error {
			mode := fs.String("mode", string(spirit.ModeSine), "generation `mode`: sine, binaural or isochronic")
			return func(g *spirit.Generator, args []string) error {
				hz, err := parseSingle(args)
				if err != nil {
					return err
				}
				m, err := spirit.ParseMode(*mode)
				if err != nil {
					return err
				}
				return g.Custom(hz, m)
			}
		},
	},
}

func simple(name, summary string, run func(*spirit.Generator) error) command {
	return command{
		name:    name,
		summary: summary,
		flags: func(*flag.FlagSet) func(*spirit.Generator, []string) error {
			return func(g *spirit.Generator, args []string) error {
				if err := noArgs(args); err != nil {
					return err
				}
				return run(g)
			}
		},
	}
}

func findCommand(name string) (command, bool) {
	for _, c := range presetCommands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func noArgs(args []string) error {
	if len(args) > 0 {
		return usageError("unexpected arguments: %s", strings.Join(args, " "))
	}
	return nil
}

// parseFrequencies accepts comma separated lists spread over any number of
// arguments.
func parseFrequencies(args []string) ([]float64, error) {
	var freqs []float64
	for _, arg := range args {
		for field := range strings.SplitSeq(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			f, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, usageError("invalid frequency %q", field)
			}
			freqs = append(freqs, f)
		}
	}
	return freqs, nil
}

func parseSingle(args []string) (float64, error) {
	if len(args) != 1 {
		return 0, usageError("expected one frequency, got %d arguments", len(args))
	}
	f, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, usageError("invalid frequency %q", args[0])
	}
	return f, nil
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}
