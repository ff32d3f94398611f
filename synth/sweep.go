// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/ik5/spirit/audio"
)

// LogSweep renders a sine whose instantaneous frequency moves exponentially
// from start to end over duration. The phase is the closed-form integral of
// start * (end/start)^(t/duration), so there is no accumulated drift.
func LogSweep(cfg audio.Config, start, end, duration float64) (audio.Mono, error) {
	if !(start > 0) || !(end > 0) || start == end ||
		math.IsInf(start, 0) || math.IsInf(end, 0) {
		return nil, ErrInvalidSweep
	}

	n := cfg.NumSamples(duration)
	out := make(audio.Mono, n)
	ratio := end / start
	lnRatio := math.Log(ratio)

	for i := range out {
		out[i] = audio.Amplitude * math.Sin(SweepPhase(start, ratio, lnRatio, duration, cfg.Time(i)))
	}

	return out, nil
}

// SweepPhase is the unwrapped sweep phase in radians at time t.
func SweepPhase(start, ratio, lnRatio, duration, t float64) float64 {
	return twoPi * start * duration * (math.Pow(ratio, t/duration) - 1) / lnRatio
}
