package quad

import "math"

// MIDI0Freq is the frequency in Hz of MIDI note 0 in twelve-tone equal
// temperament with A4 (note 69) at 440 Hz.
const MIDI0Freq = 8.17579891564371

// Tuning maps note numbers to frequency ratios relative to MIDI note 0.
// Implementations must be monotonic in note over the audible range.
type Tuning interface {
	// NoteToPitchIgnoringTuning returns the linear frequency ratio of
	// the given note relative to MIDI note 0, ignoring any global
	// tuning offset.
	NoteToPitchIgnoringTuning(note float32) float32
}

// EqualTemperament is the default Tuning: 2^(note/12).
//
// This runs at control rate only, so it uses exact math rather than an
// approximation; the tuning contract asks for cent-level accuracy.
type EqualTemperament struct{}

// NoteToPitchIgnoringTuning returns 2^(note/12).
func (EqualTemperament) NoteToPitchIgnoringTuning(note float32) float32 {
	return float32(math.Exp2(float64(note) / 12))
}
