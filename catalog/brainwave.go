// SPDX-License-Identifier: EPL-2.0

package catalog

// BrainwaveState is an EEG band used as a binaural beat target.
type BrainwaveState struct {
	Name        string
	Low, High   float64
	Description string
}

// Beat is the band midpoint, the beat frequency rendered for the state.
func (s BrainwaveState) Beat() float64 { return (s.Low + s.High) / 2 }

// BrainwaveStates in ascending order.
var BrainwaveStates = []BrainwaveState{
	{Name: "delta", Low: 0.5, High: 4, Description: "Deep sleep, healing, unconscious"},
	{Name: "theta", Low: 4, High: 8, Description: "Meditation, creativity, REM sleep"},
	{Name: "alpha", Low: 8, High: 14, Description: "Relaxation, calm focus, light meditation"},
	{Name: "beta", Low: 14, High: 30, Description: "Active thinking, focus, alertness"},
	{Name: "gamma", Low: 30, High: 100, Description: "Higher cognition, peak awareness"},
}
