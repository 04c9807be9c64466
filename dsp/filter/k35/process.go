package k35

import (
	"github.com/cwbudde/algo-quadfilter/dsp/quad"
	"github.com/cwbudde/algo-quadfilter/internal/fastmath"
)

// onePoleLP advances a trapezoidal one-pole lowpass: given the
// normalized gain G and register z, it returns the section output and
// updates the register in place.
func onePoleLP(g, x float32, z *float32) float32 {
	v := (x - *z) * g
	y := v + *z
	*z = v + y

	return y
}

// onePoleHP is the matching highpass: input minus the lowpass result,
// sharing the same register.
func onePoleHP(g, x float32, z *float32) float32 {
	return x - onePoleLP(g, x, z)
}

// ProcessLowpass filters one 4-lane sample through the lowpass ladder.
//
// The sequence is fixed: ramp, first lowpass section, feedback sum,
// alpha combine, drive blend, k-scaled second lowpass section, highpass
// register update, divide by k. The signal runs k-scaled through the
// saturator and is normalized afterwards so it stays inside the
// saturator's ideal input range; reordering the divide breaks the
// loop's energy balance.
func ProcessLowpass(st *quad.State, in quad.Vec) quad.Vec {
	st.StepRamp(NumCoeffs)

	var out quad.Vec

	for l := 0; l < quad.Width; l++ {
		g := st.C[CoeffG][l]

		y1 := onePoleLP(g, in[l], &st.R[RegLow1][l])

		// (lowpass beta * stage-2 register) + (highpass beta * hp register)
		s35 := st.C[CoeffLowBeta][l]*st.R[RegStage2][l] + st.C[CoeffHighBeta][l]*st.R[RegHigh1][l]

		uClean := st.C[CoeffAlpha][l] * (y1 + s35)
		uDriven := fastmath.TanhClamped(uClean * st.C[CoeffSaturation][l])
		u := uClean*st.C[CoeffSaturationBlendInv][l] + uDriven*st.C[CoeffSaturationBlend][l]

		k := st.C[CoeffK][l]
		y := k * onePoleLP(g, u, &st.R[RegStage2][l])

		// Output discarded; keeps the feedback register current.
		onePoleHP(g, y, &st.R[RegHigh1][l])

		out[l] = y / k
	}

	return out
}

// ProcessHighpass filters one 4-lane sample through the highpass
// ladder. Same structure as ProcessLowpass with the first section
// swapped to highpass, the drive blend moved after the k scaling, and
// the trailing register update running highpass into lowpass.
func ProcessHighpass(st *quad.State, in quad.Vec) quad.Vec {
	st.StepRamp(NumCoeffs)

	var out quad.Vec

	for l := 0; l < quad.Width; l++ {
		g := st.C[CoeffG][l]

		y1 := onePoleHP(g, in[l], &st.R[RegHigh1][l])

		s35 := st.C[CoeffHighBeta][l]*st.R[RegStage2][l] + st.C[CoeffLowBeta][l]*st.R[RegLow1][l]

		u := st.C[CoeffAlpha][l] * (y1 + s35)

		k := st.C[CoeffK][l]
		yClean := k * u
		yDriven := fastmath.TanhClamped(yClean * st.C[CoeffSaturation][l])
		y := yClean*st.C[CoeffSaturationBlendInv][l] + yDriven*st.C[CoeffSaturationBlend][l]

		onePoleLP(g, onePoleHP(g, y, &st.R[RegStage2][l]), &st.R[RegLow1][l])

		out[l] = y / k
	}

	return out
}
