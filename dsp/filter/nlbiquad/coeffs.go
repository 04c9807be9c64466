package nlbiquad

import (
	"math"

	"github.com/cwbudde/algo-quadfilter/dsp/quad"
	"github.com/cwbudde/algo-quadfilter/internal/fastmath"
)

// Coefficient slot indices into quad.State C/DC.
const (
	CoeffA1 = iota
	CoeffA2
	CoeffB0
	CoeffB1
	CoeffB2

	// NumCoeffs is the number of coefficient slots this family uses.
	NumCoeffs
)

// MaxStages is the largest supported cascade depth.
const MaxStages = 4

// NumRegisters is the number of register slots this family uses.
// Stage n owns registers 2n and 2n+1.
const NumRegisters = 2 * MaxStages

// Type selects the biquad response.
type Type int

const (
	// Lowpass passes frequencies below the cutoff.
	Lowpass Type = iota
	// Highpass passes frequencies above the cutoff.
	Highpass
	// Notch rejects a band around the cutoff.
	Notch
	// Bandpass passes a band around the cutoff (constant peak gain).
	Bandpass
	// Allpass passes all frequencies with a phase rotation at cutoff.
	Allpass
)

// String returns a human-readable name for the filter type.
func (t Type) String() string {
	switch t {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	case Notch:
		return "notch"
	case Bandpass:
		return "bandpass"
	case Allpass:
		return "allpass"
	default:
		return "unknown"
	}
}

// MakeCoefficients derives biquad coefficients for one lane and writes
// them to the state through the coefficient ramp.
//
// pitch is in semitones with 0 = A440 (see quad.ClampedFrequency),
// reso is clamped to [0, 1] and warped cubically to a quality factor
// Q = reso^3*18 + 0.1, emphasizing the top of the range. The shared
// a1/a2 pair and the type-specific b0/b1/b2 follow the audio-EQ
// cookbook, normalized by the reciprocal of a0 so the per-type
// formulas multiply instead of divide.
//
// rampSamples <= 0 applies the coefficients immediately. This function
// never writes registers and has no error path; extreme inputs are
// clamped (the finiteness guarantee of the processor relies on this).
func MakeCoefficients(st *quad.State, lane int, pitch, reso float32, typ Type,
	sampleRate float32, rampSamples int, tuning quad.Tuning) {
	if reso < 0 {
		reso = 0
	} else if reso > 1 {
		reso = 1
	}

	q := reso*reso*reso*18 + 0.1

	wc := 2 * math.Pi * quad.ClampedFrequency(pitch, sampleRate, tuning) / sampleRate
	wsin := fastmath.Sin(wc)
	wcos := fastmath.Cos(wc)
	alpha := wsin / (2 * q)

	// a0 only normalizes the other coefficients, so compute its
	// reciprocal once and multiply.
	a0r := 1 / (1 + alpha)

	var c [NumCoeffs]float32
	c[CoeffA1] = -2 * wcos * a0r
	c[CoeffA2] = (1 - alpha) * a0r

	switch typ {
	case Lowpass:
		c[CoeffB1] = (1 - wcos) * a0r
		c[CoeffB0] = c[CoeffB1] * 0.5
		c[CoeffB2] = c[CoeffB0]
	case Highpass:
		c[CoeffB1] = -(1 + wcos) * a0r
		c[CoeffB0] = c[CoeffB1] * -0.5
		c[CoeffB2] = c[CoeffB0]
	case Notch:
		c[CoeffB0] = a0r
		c[CoeffB1] = -2 * wcos * a0r
		c[CoeffB2] = c[CoeffB0]
	case Bandpass:
		c[CoeffB0] = wsin * 0.5 * a0r
		c[CoeffB1] = 0
		c[CoeffB2] = -c[CoeffB0]
	default: // allpass
		c[CoeffB0] = c[CoeffA2]
		c[CoeffB1] = c[CoeffA1]
		c[CoeffB2] = 1 // (1+alpha)/(1+alpha) after a0 normalization
	}

	st.SetTarget(lane, c[:], rampSamples)
}
