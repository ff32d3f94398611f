// SPDX-License-Identifier: EPL-2.0

package spirit

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ik5/spirit/audio"
	"github.com/ik5/spirit/catalog"
	"github.com/ik5/spirit/synth"
)

const (
	// SchumannHz is the fundamental Schumann resonance.
	SchumannHz = 7.83

	// MaxBeatDuration caps binaural and Schumann renders inside All.
	MaxBeatDuration = 300.0

	chakraFadeSeconds = 2.0
	tuningSegment     = 5.0
	tuningPairLength  = 10.0
	tuningNatural     = 432.0
	tuningStandard    = 440.0

	chakraCategory = "chakras"
)

// Fixed preset directories below the output root.
const (
	DirBinaural = "binaural"
	DirSchumann = "schumann"
	DirChakras  = "chakras"
	DirTuning   = "tuning"
	DirNoise    = "noise"
)

// BinauralSet renders one stereo file per brainwave state on base, with the
// beat at the state's band midpoint.
func (g *Generator) BinauralSet(base float64) error {
	if err := checkFrequency(base); err != nil {
		return err
	}

	g.logger.Info("generating binaural beats", zap.Float64("base", base))

	for _, s := range catalog.BrainwaveStates {
		beat := s.Beat()
		g.logger.Debug("rendering",
			zap.String("state", s.Name),
			zap.Float64("beat", beat),
		)

		name := fmt.Sprintf("binaural_%s_%.2fhz.wav", s.Name, beat)
		if err := g.save(filepath.Join(DirBinaural, name), synth.Binaural(g.cfg, base, beat, g.duration)); err != nil {
			return err
		}
	}

	return nil
}

// Schumann renders 7.83 Hz both as an isochronic pulse and as a binaural
// beat on the 200 Hz carrier.
func (g *Generator) Schumann() error {
	g.logger.Info("generating Schumann resonance", zap.Float64("hz", SchumannHz))

	iso := synth.Isochronic(g.cfg, CarrierHz, SchumannHz, g.duration)
	if err := g.save(filepath.Join(DirSchumann, "schumann_7.83hz_isochronic.wav"), iso); err != nil {
		return err
	}

	bin := synth.Binaural(g.cfg, CarrierHz, SchumannHz, g.duration)
	return g.save(filepath.Join(DirSchumann, "schumann_7.83hz_binaural.wav"), bin)
}

// ChakraMeditation renders every chakra sine with a 2s fade at both ends,
// then the seven faded blocks joined in declared order.
func (g *Generator) ChakraMeditation() error {
	cat, err := g.catalog.ByID(chakraCategory)
	if err != nil {
		return err
	}

	// The full meditation holds every chakra back to back.
	if err := g.cfg.CheckLength(g.duration*float64(len(cat.Frequencies)), 1); err != nil {
		return err
	}

	g.logger.Info("generating chakra meditation", zap.Int("chakras", len(cat.Frequencies)))

	blocks := make([]audio.Mono, 0, len(cat.Frequencies))
	for _, e := range cat.Frequencies {
		if e.Silent() {
			continue
		}

		block := synth.Sine(g.cfg, e.Hz, g.duration)
		synth.ApplyFade(g.cfg, block, chakraFadeSeconds)

		name := fmt.Sprintf("%s_%s_%.2fhz.wav", cat.FilePrefix, e.Name, e.Hz)
		if err := g.save(filepath.Join(DirChakras, name), block); err != nil {
			return err
		}

		blocks = append(blocks, block)
	}

	return g.save(filepath.Join(DirChakras, cat.FilePrefix+"_full_meditation.wav"), audio.Concat(blocks...))
}

// TuningPairs is the number of 432/440 pairs in the comparison file:
// one per 10 seconds of duration, at least one.
func TuningPairs(duration float64) int {
	return max(int(duration/tuningPairLength), 1)
}

// Tuning renders 432 Hz and 440 Hz sines and a file alternating 5s of each.
func (g *Generator) Tuning() error {
	g.logger.Info("generating tuning comparison")

	if err := g.save(filepath.Join(DirTuning, "tuning_432hz_natural.wav"), synth.Sine(g.cfg, tuningNatural, g.duration)); err != nil {
		return err
	}

	if err := g.save(filepath.Join(DirTuning, "tuning_440hz_standard.wav"), synth.Sine(g.cfg, tuningStandard, g.duration)); err != nil {
		return err
	}

	natural := synth.Sine(g.cfg, tuningNatural, tuningSegment)
	standard := synth.Sine(g.cfg, tuningStandard, tuningSegment)

	pairs := TuningPairs(g.duration)
	segments := make([]audio.Mono, 0, 2*pairs)
	for range pairs {
		segments = append(segments, natural, standard)
	}

	return g.save(filepath.Join(DirTuning, "tuning_432_440_comparison.wav"), audio.Concat(segments...))
}

// Om renders the 136.1 Hz Om tone into the output root.
func (g *Generator) Om() error {
	g.logger.Info("generating Om", zap.Float64("hz", synth.OmBase))
	return g.save(fmt.Sprintf("om_%.2fhz.wav", synth.OmBase), synth.Om(g.cfg, g.duration))
}

// Noise renders white, pink and brown noise.
func (g *Generator) Noise() error {
	g.logger.Info("generating noise")

	noises := []struct {
		name string
		gen  func(audio.Config, float64) audio.Mono
	}{
		{"white", synth.WhiteNoise},
		{"pink", synth.PinkNoise},
		{"brown", synth.BrownNoise},
	}

	for _, n := range noises {
		if err := g.save(filepath.Join(DirNoise, n.name+"_noise.wav"), n.gen(g.cfg, g.duration)); err != nil {
			return err
		}
	}

	return nil
}

// All renders every catalog category in declared order, then the binaural
// set and Schumann capped at 300s, tuning, the chakra meditation, Om and
// noise. It stops at the first failure.
func (g *Generator) All() error {
	for _, cat := range g.catalog.Categories() {
		if err := g.renderCategory(&cat); err != nil {
			return err
		}
	}

	capped := *g
	capped.duration = min(g.duration, MaxBeatDuration)

	steps := []func() error{
		func() error { return capped.BinauralSet(CarrierHz) },
		capped.Schumann,
		g.Tuning,
		g.ChakraMeditation,
		g.Om,
		g.Noise,
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	g.logger.Info("all files generated", zap.String("output", g.dir))
	return nil
}
