// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/ik5/spirit/audio"
)

// bowlPartials are the inharmonic overtones of a struck bowl as
// (frequency multiplier, amplitude) pairs.
var bowlPartials = [...]struct{ ratio, gain float64 }{
	{2.01, 0.6},
	{3.03, 0.35},
	{4.07, 0.2},
	{5.12, 0.1},
}

const (
	bowlBeatHz     = 0.5
	bowlBeatDepth  = 0.1
	bowlAttack     = 0.01
	bowlDecayRatio = 0.7
	bowlNorm       = 2.25
)

// SingingBowl simulates a struck bowl at freq: a slowly beating fundamental
// plus four partials, a 10ms attack and an exponential decay with time
// constant 0.7*duration.
func SingingBowl(cfg audio.Config, freq, duration float64) audio.Mono {
	n := cfg.NumSamples(duration)
	out := make(audio.Mono, n)
	tau := duration * bowlDecayRatio

	for i := range out {
		t := cfg.Time(i)

		wave := math.Sin(twoPi*freq*t) * (1 + bowlBeatDepth*math.Sin(twoPi*bowlBeatHz*t))
		for _, p := range bowlPartials {
			wave += p.gain * math.Sin(twoPi*freq*p.ratio*t)
		}

		decay := math.Exp(-t / tau)
		attack := 1.0
		if t < bowlAttack {
			attack = t / bowlAttack
		}

		out[i] = audio.Amplitude * (wave / bowlNorm) * decay * attack
	}

	return out
}
