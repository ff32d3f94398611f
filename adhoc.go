// SPDX-License-Identifier: EPL-2.0

package spirit

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ik5/spirit/audio"
	"github.com/ik5/spirit/synth"
)

// Mode selects how Custom renders its frequency.
type Mode string

const (
	ModeSine       Mode = "sine"
	ModeBinaural   Mode = "binaural"
	ModeIsochronic Mode = "isochronic"
)

// ErrInvalidMode is returned for an unknown custom mode.
var ErrInvalidMode = fmt.Errorf("%w: mode must be sine, binaural or isochronic", audio.ErrInvalidArgument)

// ParseMode accepts the mode names case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case ModeSine, ModeBinaural, ModeIsochronic:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Sweep renders a logarithmic sweep from start to end.
func (g *Generator) Sweep(start, end float64) error {
	block, err := synth.LogSweep(g.cfg, start, end, g.duration)
	if err != nil {
		return err
	}

	g.logger.Info("generating sweep", zap.Float64("start", start), zap.Float64("end", end))
	return g.save(fmt.Sprintf("sweep_%.2fhz_to_%.2fhz.wav", start, end), block)
}

// Drone renders a detuned, slowly swelling drone over freqs.
func (g *Generator) Drone(freqs []float64) error {
	if err := checkFrequencies(freqs); err != nil {
		return err
	}

	block, err := synth.Drone(g.cfg, freqs, g.duration)
	if err != nil {
		return err
	}

	g.logger.Info("generating drone", zap.Float64s("hz", freqs))
	return g.save("drone_"+joinHz(freqs)+"hz.wav", block)
}

// Layer renders the equal-weight sum of freqs.
func (g *Generator) Layer(freqs []float64) error {
	if err := checkFrequencies(freqs); err != nil {
		return err
	}

	block, err := synth.Layered(g.cfg, freqs, g.duration)
	if err != nil {
		return err
	}

	g.logger.Info("generating layered tone", zap.Float64s("hz", freqs))
	return g.save("layered_"+joinHz(freqs)+"hz.wav", block)
}

// Bowl renders a struck singing bowl at hz.
func (g *Generator) Bowl(hz float64) error {
	if err := checkFrequency(hz); err != nil {
		return err
	}

	g.logger.Info("generating singing bowl", zap.Float64("hz", hz))
	return g.save(fmt.Sprintf("bowl_%.2fhz.wav", hz), synth.SingingBowl(g.cfg, hz, g.duration))
}

// Custom renders hz as a sine, as a binaural beat of hz on the 200 Hz base,
// or as an isochronic pulse of hz on the 200 Hz carrier.
func (g *Generator) Custom(hz float64, mode Mode) error {
	if err := checkFrequency(hz); err != nil {
		return err
	}

	var block audio.Block
	switch mode {
	case ModeSine:
		block = synth.Sine(g.cfg, hz, g.duration)
	case ModeBinaural:
		block = synth.Binaural(g.cfg, CarrierHz, hz, g.duration)
	case ModeIsochronic:
		block = synth.Isochronic(g.cfg, CarrierHz, hz, g.duration)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	g.logger.Info("generating custom tone", zap.Float64("hz", hz), zap.String("mode", string(mode)))
	return g.save(fmt.Sprintf("custom_%.2fhz_%s.wav", hz, mode), block)
}

func joinHz(freqs []float64) string {
	parts := make([]string, len(freqs))
	for i, f := range freqs {
		parts[i] = fmt.Sprintf("%.2f", f)
	}
	return strings.Join(parts, "_")
}
