// SPDX-License-Identifier: EPL-2.0

package synth

import "github.com/ik5/spirit/audio"

// ApplyFade ramps the head of block up from 0 and the tail down to 0 in
// place. The ramp is round(rate*seconds) samples long, capped at half the
// block. Both the first and last sample end up at exactly 0.
func ApplyFade(cfg audio.Config, block audio.Mono, seconds float64) {
	fade := min(cfg.NumSamples(seconds), len(block)/2)
	if fade == 0 {
		return
	}

	last := len(block) - 1
	for i := range fade {
		gain := float64(i) / float64(fade)
		block[i] *= gain
		block[last-i] *= gain
	}
}

// FadeEnvelope is the precomputed symmetric fade used by long-form
// generators: i/fade on the head ramp, (n-i)/fade on the tail ramp and 1 in
// between. A zero-length ramp yields 1 everywhere.
func FadeEnvelope(i, n, fade int) float64 {
	if fade <= 0 {
		return 1
	}
	if i < fade {
		return float64(i) / float64(fade)
	}
	if i >= n-fade {
		return float64(n-i) / float64(fade)
	}
	return 1
}
