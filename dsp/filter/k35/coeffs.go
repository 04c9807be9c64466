package k35

import (
	"math"

	"github.com/cwbudde/algo-quadfilter/dsp/quad"
	"github.com/cwbudde/algo-quadfilter/internal/fastmath"
)

// Coefficient slot indices into quad.State C/DC.
const (
	// CoeffG is the normalized one-pole integrator gain g/(1+g).
	CoeffG = iota
	// CoeffLowBeta weights the second-stage register in the feedback sum.
	CoeffLowBeta
	// CoeffHighBeta weights the first-stage highpass register in the
	// feedback sum.
	CoeffHighBeta
	// CoeffK is the clamped resonance amount.
	CoeffK
	// CoeffAlpha is the closed-form zero-delay feedback solution.
	CoeffAlpha
	// CoeffSaturation scales the loop signal before the tanh stage.
	CoeffSaturation
	// CoeffSaturationBlend is CoeffSaturation clamped to [0, 1], the
	// weight of the saturated path.
	CoeffSaturationBlend
	// CoeffSaturationBlendInv is 1 - CoeffSaturationBlend, the weight
	// of the clean path.
	CoeffSaturationBlendInv

	// NumCoeffs is the number of coefficient slots this family uses.
	NumCoeffs
)

// Register slot indices into quad.State R.
const (
	// RegLow1 is the first lowpass section's register.
	RegLow1 = iota
	// RegHigh1 is the first highpass section's register.
	RegHigh1
	// RegStage2 is the shared second section's register.
	RegStage2

	// NumRegisters is the number of register slots this family uses.
	NumRegisters
)

const (
	resoScale = 1.96
	minK      = 0.01
	maxK      = 1.96
)

// Mode selects the overall filter response.
type Mode int

const (
	// ModeLowpass routes the input through the lowpass first section.
	ModeLowpass Mode = iota
	// ModeHighpass routes the input through the highpass first section.
	ModeHighpass
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeLowpass:
		return "lowpass"
	case ModeHighpass:
		return "highpass"
	default:
		return "unknown"
	}
}

// MakeCoefficients derives the ladder coefficients for one lane and
// writes them to the state through the coefficient ramp.
//
// The cutoff is pre-warped with a fast tangent so the digital response
// matches the analog prototype at the cutoff frequency, giving the
// one-pole gain g and its normalized form G = g/(1+g). reso scales to
// [0, 1.96] and is clamped to [0.01, 1.96]; the two feedback weights
// lb/hb differ between the modes, which is the asymmetry that lets the
// same one-pole machinery produce both responses. alpha solves the
// feedback loop algebraically in one step.
//
// rampSamples <= 0 applies the coefficients immediately. Registers are
// never written and there is no error path.
func MakeCoefficients(st *quad.State, lane int, pitch, reso, saturation float32,
	mode Mode, sampleRate, sampleRateInv float32, rampSamples int, tuning quad.Tuning) {
	wd := quad.ClampedFrequency(pitch, sampleRate, tuning) * 2 * math.Pi
	wa := 2 * sampleRate * fastmath.Tan(wd*sampleRateInv*0.5)
	g := wa * sampleRateInv * 0.5
	gp1 := 1 + g
	bigG := g / gp1

	k := reso * resoScale
	if k > maxK {
		k = maxK
	} else if k < minK {
		k = minK
	}

	var c [NumCoeffs]float32
	c[CoeffG] = bigG

	if mode == ModeLowpass {
		c[CoeffLowBeta] = (k - k*bigG) / gp1
		c[CoeffHighBeta] = -1 / gp1
	} else {
		c[CoeffLowBeta] = 1 / gp1
		c[CoeffHighBeta] = -bigG / gp1
	}

	c[CoeffK] = k
	c[CoeffAlpha] = 1 / (1 - k*bigG + k*bigG*bigG)

	blend := saturation
	if blend > 1 {
		blend = 1
	} else if blend < 0 {
		blend = 0
	}

	c[CoeffSaturation] = saturation
	c[CoeffSaturationBlend] = blend
	c[CoeffSaturationBlendInv] = 1 - blend

	st.SetTarget(lane, c[:], rampSamples)
}
