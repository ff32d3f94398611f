// SPDX-License-Identifier: EPL-2.0

package spirit

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ik5/spirit/audio"
	"github.com/ik5/spirit/catalog"
	"github.com/ik5/spirit/formats/wav"
	"github.com/ik5/spirit/synth"
)

const (
	// IsochronicThreshold is the frequency below which catalog entries are
	// rendered as isochronic pulses instead of sines.
	IsochronicThreshold = 20.0
	// CarrierHz carries sub-audible isochronic pulses and is the default
	// binaural base.
	CarrierHz = 200.0
)

// Options configures a Generator.
type Options struct {
	Audio     audio.Config
	OutputDir string
	// Duration of every rendered file in seconds, unless a preset says
	// otherwise.
	Duration float64
	// Catalog defaults to catalog.Default().
	Catalog *catalog.Catalog
}

// Generator renders recipes and presets into WAV files below OutputDir.
type Generator struct {
	cfg      audio.Config
	dir      string
	duration float64
	catalog  *catalog.Catalog
	logger   *zap.Logger
}

// New validates opts and returns a Generator. A nil logger discards logs.
func New(opts Options, logger *zap.Logger) (*Generator, error) {
	if err := opts.Audio.Validate(); err != nil {
		return nil, err
	}

	// Stereo is the widest block a recipe renders for the base duration.
	if err := opts.Audio.CheckLength(opts.Duration, 2); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	cat := opts.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}

	return &Generator{
		cfg:      opts.Audio,
		dir:      dir,
		duration: opts.Duration,
		catalog:  cat,
		logger:   logger,
	}, nil
}

// Catalog returns the catalog the generator renders from.
func (g *Generator) Catalog() *catalog.Catalog { return g.catalog }

// Tone renders one catalog frequency: an isochronic pulse on the 200 Hz
// carrier below 20 Hz, a plain sine otherwise.
func (g *Generator) Tone(hz, duration float64) audio.Mono {
	if hz < IsochronicThreshold {
		return synth.Isochronic(g.cfg, CarrierHz, hz, duration)
	}
	return synth.Sine(g.cfg, hz, duration)
}

// Category renders every entry of the category behind command into its
// directory. Entries with hz = 0 are skipped. The first failure stops the run.
func (g *Generator) Category(command string) error {
	cat, err := g.catalog.Lookup(command)
	if err != nil {
		return err
	}
	return g.renderCategory(cat)
}

func (g *Generator) renderCategory(cat *catalog.Category) error {
	g.logger.Info("generating", zap.String("category", cat.DisplayName))

	for _, e := range cat.Frequencies {
		if e.Silent() {
			g.logger.Debug("skipping entry without frequency", zap.String("name", e.Name))
			continue
		}

		g.logger.Debug("rendering",
			zap.Float64("hz", e.Hz),
			zap.String("description", e.Description),
		)

		name := fmt.Sprintf("%s_%s_%.2fhz.wav", cat.FilePrefix, e.Name, e.Hz)
		if err := g.save(filepath.Join(cat.DirName, name), g.Tone(e.Hz, g.duration)); err != nil {
			return err
		}
	}

	return nil
}

// save writes block to rel below the output directory, creating parent
// directories on demand.
func (g *Generator) save(rel string, block audio.Block) error {
	path := filepath.Join(g.dir, rel)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	if err := wav.WriteFile(path, g.cfg.SampleRate, g.cfg.BitDepth, block); err != nil {
		return err
	}

	g.logger.Info("saved",
		zap.String("path", path),
		zap.Int("frames", block.Len()),
		zap.Int("channels", block.Channels()),
	)

	return nil
}

func checkFrequency(hz float64) error {
	if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
		return fmt.Errorf("%w: %v", synth.ErrInvalidFrequency, hz)
	}
	return nil
}

func checkFrequencies(freqs []float64) error {
	if len(freqs) == 0 {
		return synth.ErrNoFrequencies
	}
	for _, f := range freqs {
		if err := checkFrequency(f); err != nil {
			return err
		}
	}
	return nil
}
