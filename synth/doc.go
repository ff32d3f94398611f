// SPDX-License-Identifier: EPL-2.0

// Package synth renders the waveform families as sample blocks.
//
// Every generator is a pure function of an audio.Config, a duration and its
// own parameters. Phase is computed from t = i / SampleRate for each sample
// rather than accumulated, so long renders do not drift.
//
// # Generators
//
//   - Sine, Binaural, Isochronic: single tones and brainwave entrainment
//   - Om: 136.1 Hz with two harmonics
//   - Layered, Drone: multi-frequency beds
//   - SingingBowl: inharmonic struck-bowl simulation
//   - LogSweep: exponential frequency sweep
//   - WhiteNoise, PinkNoise, BrownNoise: seeded, byte-for-byte reproducible noise
//
// Outputs stay within audio.Amplitude of zero (the drone's LFO swell can
// reach 1.15 times that, still below full scale).
//
// # Envelopes
//
// ApplyFade applies a linear fade in place; FadeEnvelope is the per-sample
// form Om and Drone use while rendering.
//
//	cfg := audio.DefaultConfig()
//	tone := synth.Sine(cfg, 528, 60)
//	synth.ApplyFade(cfg, tone, 2)
package synth
