package testutil

import "math"

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float32, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * float64(freqHz) / float64(sampleRate)

	for i := range out {
		out[i] = amplitude * float32(math.Sin(step*float64(i)))
	}

	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float32 {
	out := make([]float32, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}
