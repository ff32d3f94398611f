// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/ik5/spirit/audio"
)

// OmBase is the Om fundamental in Hz.
const OmBase = 136.1

const (
	omFadeSeconds = 0.5
	omWeightSum   = 1.75
)

// Om renders 136.1 Hz with its 2nd and 3rd harmonics (weights 1, 0.5, 0.25)
// under a 0.5s linear fade at head and tail.
func Om(cfg audio.Config, duration float64) audio.Mono {
	n := cfg.NumSamples(duration)
	fade := cfg.NumSamples(omFadeSeconds)
	out := make(audio.Mono, n)

	for i := range out {
		t := cfg.Time(i)
		wave := math.Sin(twoPi*OmBase*t) +
			0.5*math.Sin(twoPi*OmBase*2*t) +
			0.25*math.Sin(twoPi*OmBase*3*t)

		out[i] = audio.Amplitude * wave * FadeEnvelope(i, n, fade) / omWeightSum
	}

	return out
}
