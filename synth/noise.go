// SPDX-License-Identifier: EPL-2.0

package synth

import "github.com/ik5/spirit/audio"

// Noise LCG constants. Output for a given rate and duration is identical on
// every platform.
const (
	NoiseSeed     uint64 = 12345
	lcgMultiplier uint64 = 1103515245
	lcgIncrement  uint64 = 12345
)

const (
	noiseGain = 0.7
	pinkRows  = 16
	brownStep = 0.02
)

// lcg is a 64-bit linear congruential generator, wrapping modulo 2^64.
type lcg struct {
	seed uint64
}

func newLCG() *lcg {
	return &lcg{seed: NoiseSeed}
}

// next advances the state and returns a value in [-1, 1] built from bits
// 16..30 of the new state.
func (g *lcg) next() float64 {
	g.seed = g.seed*lcgMultiplier + lcgIncrement
	return float64((g.seed>>16)&0x7FFF)/32767.0*2 - 1
}

// WhiteNoise renders uniform noise scaled by A*0.7.
func WhiteNoise(cfg audio.Config, duration float64) audio.Mono {
	n := cfg.NumSamples(duration)
	out := make(audio.Mono, n)
	rng := newLCG()

	for i := range out {
		out[i] = audio.Amplitude * rng.next() * noiseGain
	}

	return out
}

// PinkNoise renders Voss-McCartney noise: a fresh white value plus 16 rows,
// row j redrawn whenever bit j of the sample index flips.
func PinkNoise(cfg audio.Config, duration float64) audio.Mono {
	n := cfg.NumSamples(duration)
	out := make(audio.Mono, n)
	rng := newLCG()

	var rows [pinkRows]float64

	for i := range out {
		sum := rng.next()

		idx := uint64(i)
		prev := idx - 1 // wraps at i == 0, so every row is drawn once up front
		for j := range rows {
			if (idx>>j)&1 != (prev>>j)&1 {
				rows[j] = rng.next()
			}
			sum += rows[j]
		}

		out[i] = audio.Amplitude * sum / (pinkRows + 1) * noiseGain
	}

	return out
}

// BrownNoise renders leaky integrated white noise, the integrator clamped
// to [-1, 1].
func BrownNoise(cfg audio.Config, duration float64) audio.Mono {
	n := cfg.NumSamples(duration)
	out := make(audio.Mono, n)
	rng := newLCG()
	last := 0.0

	for i := range out {
		last = min(max(last+rng.next()*brownStep, -1), 1)
		out[i] = audio.Amplitude * last * noiseGain
	}

	return out
}
