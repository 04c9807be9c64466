package response

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-quadfilter/dsp/quad"
)

// Result holds the single-sided magnitude response of a measured
// filter: bins 0..n/2 with linear magnitudes.
type Result struct {
	// SampleRate is the sample rate the measurement was taken at.
	SampleRate float64
	// Magnitude is the linear magnitude per bin.
	Magnitude []float64

	fftSize int
}

// Measure feeds a unit impulse through process and returns the
// magnitude response computed from n captured samples. n must be a
// power of two; the response should have decayed to silence within n
// samples for the result to be meaningful.
func Measure(process func(quad.Vec) quad.Vec, n int, sampleRate float64) (Result, error) {
	if process == nil {
		return Result{}, fmt.Errorf("response: process function must not be nil")
	}

	if n <= 0 || n&(n-1) != 0 {
		return Result{}, fmt.Errorf("response: length must be a power of two: %d", n)
	}

	if sampleRate <= 0 {
		return Result{}, fmt.Errorf("response: sample rate must be > 0: %f", sampleRate)
	}

	in := make([]complex128, n)

	x := quad.Vec{1, 1, 1, 1}
	for i := 0; i < n; i++ {
		y := process(x)
		x = quad.Vec{}
		in[i] = complex(float64(y[0]), 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	half := n/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)

	for i := 0; i < half; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)

	return Result{SampleRate: sampleRate, Magnitude: mag, fftSize: n}, nil
}

// Len returns the number of bins.
func (r Result) Len() int { return len(r.Magnitude) }

// BinFreq returns the center frequency in Hz of bin i.
func (r Result) BinFreq(i int) float64 {
	return float64(i) * r.SampleRate / float64(r.fftSize)
}

// At returns the linear magnitude at the bin nearest freqHz. Out-of-
// range frequencies clamp to the first or last bin.
func (r Result) At(freqHz float64) float64 {
	idx := int(freqHz/r.SampleRate*float64(r.fftSize) + 0.5)
	if idx < 0 {
		idx = 0
	}

	if idx >= len(r.Magnitude) {
		idx = len(r.Magnitude) - 1
	}

	return r.Magnitude[idx]
}

// Peak returns the frequency and linear magnitude of the largest bin.
func (r Result) Peak() (freqHz, magnitude float64) {
	idx := 0
	for i := 1; i < len(r.Magnitude); i++ {
		if r.Magnitude[i] > r.Magnitude[idx] {
			idx = i
		}
	}

	return r.BinFreq(idx), r.Magnitude[idx]
}

// MagnitudeDB converts a linear magnitude to decibels using a fast
// logarithm approximation; accurate enough for display and relative
// comparisons. Non-positive magnitudes return -Inf.
func MagnitudeDB(m float64) float64 {
	if m <= 0 {
		return math.Inf(-1)
	}

	return 20 * approx.FastLog(m) / math.Ln10
}
