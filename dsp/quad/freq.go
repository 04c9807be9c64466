package quad

const (
	minFrequencyHz   = 5.0
	maxNyquistFactor = 0.3
)

// ClampedFrequency converts a pitch offset (0 = MIDI note 69, A440 with
// the default tuning) to a frequency in Hz, clamped to
// [5, 0.3*sampleRate].
//
// The upper clamp keeps a stability margin below Nyquist for the
// bilinear-transform coefficient derivations; the lower clamp avoids
// degenerate near-zero cutoffs. Out-of-range pitches are absorbed
// silently, there is no error path.
func ClampedFrequency(pitch, sampleRate float32, t Tuning) float32 {
	freq := t.NoteToPitchIgnoringTuning(pitch+69) * MIDI0Freq

	if freq < minFrequencyHz {
		return minFrequencyHz
	}

	if limit := sampleRate * maxNyquistFactor; freq > limit {
		return limit
	}

	return freq
}
