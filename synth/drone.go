// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/ik5/spirit/audio"
)

const (
	droneFadeSeconds = 3.0
	droneDetuneStep  = 0.001
	droneLFOBase     = 0.1
	droneLFOStep     = 0.03
	droneLFODepth    = 0.15
)

// Drone layers freqs, voice j detuned by 1+0.001*j and swelling under its
// own slow LFO at 0.1+0.03*j Hz, with a 3s fade at head and tail.
func Drone(cfg audio.Config, freqs []float64, duration float64) (audio.Mono, error) {
	if len(freqs) == 0 {
		return nil, ErrNoFrequencies
	}

	n := cfg.NumSamples(duration)
	fade := cfg.NumSamples(droneFadeSeconds)
	out := make(audio.Mono, n)
	count := float64(len(freqs))

	for i := range out {
		t := cfg.Time(i)
		sum := 0.0
		for j, f := range freqs {
			detune := 1 + float64(j)*droneDetuneStep
			lfo := droneLFOBase + float64(j)*droneLFOStep
			amp := 1 + droneLFODepth*math.Sin(twoPi*lfo*t)
			sum += amp * math.Sin(twoPi*f*detune*t)
		}

		out[i] = audio.Amplitude * sum * FadeEnvelope(i, n, fade) / count
	}

	return out, nil
}
