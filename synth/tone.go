// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/ik5/spirit/audio"
)

const twoPi = 2 * math.Pi

// Sine renders A * sin(2*pi*f*t).
func Sine(cfg audio.Config, freq, duration float64) audio.Mono {
	n := cfg.NumSamples(duration)
	out := make(audio.Mono, n)

	for i := range out {
		t := cfg.Time(i)
		out[i] = audio.Amplitude * math.Sin(twoPi*freq*t)
	}

	return out
}

// Binaural renders base in the left channel and base+beat in the right one.
// The listener hears the difference, beat Hz.
func Binaural(cfg audio.Config, base, beat, duration float64) audio.Stereo {
	n := cfg.NumSamples(duration)
	out := make(audio.Stereo, n)
	right := base + beat

	for i := range out {
		t := cfg.Time(i)
		out[i] = audio.Frame{
			L: audio.Amplitude * math.Sin(twoPi*base*t),
			R: audio.Amplitude * math.Sin(twoPi*right*t),
		}
	}

	return out
}

// Isochronic renders a carrier gated by a raised sine at pulse Hz.
func Isochronic(cfg audio.Config, carrier, pulse, duration float64) audio.Mono {
	n := cfg.NumSamples(duration)
	out := make(audio.Mono, n)

	for i := range out {
		t := cfg.Time(i)
		env := PulseEnvelope(pulse, t)
		out[i] = audio.Amplitude * math.Sin(twoPi*carrier*t) * env
	}

	return out
}

// PulseEnvelope is the isochronic gain at time t: 0.5*(1+sin(2*pi*pulse*t))
// clamped to [0, 1].
func PulseEnvelope(pulse, t float64) float64 {
	env := 0.5 * (1 + math.Sin(twoPi*pulse*t))
	return min(max(env, 0), 1)
}

// Layered sums equal-weight sines and divides by their count.
func Layered(cfg audio.Config, freqs []float64, duration float64) (audio.Mono, error) {
	if len(freqs) == 0 {
		return nil, ErrNoFrequencies
	}

	n := cfg.NumSamples(duration)
	out := make(audio.Mono, n)
	scale := 1 / float64(len(freqs))

	for i := range out {
		t := cfg.Time(i)
		sum := 0.0
		for _, f := range freqs {
			sum += math.Sin(twoPi * f * t)
		}
		out[i] = audio.Amplitude * sum * scale
	}

	return out, nil
}
