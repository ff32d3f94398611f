// SPDX-License-Identifier: EPL-2.0

// Package config loads the global render options from the environment and
// command-line flags.
package config

import (
	"flag"
	"fmt"
	"math"
	"os"
	"slices"
	"strconv"

	"go.uber.org/zap/zapcore"

	"github.com/ik5/spirit/audio"
)

// SampleRates are the rates the CLI accepts.
var SampleRates = []int{44100, 48000, 96000, 192000}

// ErrInvalidLogLevel is returned for a level zap does not know.
var ErrInvalidLogLevel = fmt.Errorf("%w: unknown log level", audio.ErrInvalidArgument)

// Config holds the global options shared by every subcommand.
type Config struct {
	OutputDir  string
	Duration   float64 // seconds
	SampleRate int
	BitDepth   int
	LogLevel   string
}

// Load reads configuration from environment variables with defaults.
// Unparseable numbers fall back to the default.
func Load() Config {
	return Config{
		OutputDir:  envStr("SPIRIT_OUTPUT", "./output"),
		Duration:   envFloat("SPIRIT_DURATION", 60),
		SampleRate: envInt("SPIRIT_SAMPLE_RATE", 44100),
		BitDepth:   envInt("SPIRIT_BIT_DEPTH", 16),
		LogLevel:   envStr("SPIRIT_LOG_LEVEL", "info"),
	}
}

// RegisterFlags binds the global flags to c, using its current values as
// defaults. Every option has a long and a short name.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	for _, name := range []string{"output", "o"} {
		fs.StringVar(&c.OutputDir, name, c.OutputDir, "output `dir`ectory")
	}
	for _, name := range []string{"duration", "d"} {
		fs.Float64Var(&c.Duration, name, c.Duration, "duration of each file in `seconds`")
	}
	for _, name := range []string{"sample-rate", "s"} {
		fs.IntVar(&c.SampleRate, name, c.SampleRate, "sample rate in `Hz` (44100, 48000, 96000, 192000)")
	}
	for _, name := range []string{"bit-depth", "b"} {
		fs.IntVar(&c.BitDepth, name, c.BitDepth, "`bits` per sample (16, 24, 32)")
	}
	for _, name := range []string{"verbose", "v"} {
		fs.BoolFunc(name, "log every rendered entry", func(string) error {
			c.LogLevel = "debug"
			return nil
		})
	}
}

// Validate checks every option before anything touches the filesystem.
func (c Config) Validate() error {
	if c.Duration <= 0 || math.IsNaN(c.Duration) || math.IsInf(c.Duration, 0) {
		return fmt.Errorf("%w: %v", audio.ErrInvalidDuration, c.Duration)
	}

	if !slices.Contains(SampleRates, c.SampleRate) {
		return fmt.Errorf("%w: %d (want one of %v)", audio.ErrInvalidSampleRate, c.SampleRate, SampleRates)
	}

	if err := c.Audio().Validate(); err != nil {
		return err
	}

	if err := c.Audio().CheckLength(c.Duration, 2); err != nil {
		return err
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Audio is the rendering configuration for the generators.
func (c Config) Audio() audio.Config {
	return audio.Config{SampleRate: c.SampleRate, BitDepth: c.BitDepth}
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return lvl, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
