package quad

// NumCoeffs is the coefficient slot count of a State. It is sized for
// the largest filter family; families that use fewer slots leave the
// rest untouched.
const NumCoeffs = 8

// NumRegisters is the register slot count of a State, sized like
// NumCoeffs for the largest family.
const NumRegisters = 8

// State is the per-voice-group filter memory shared between a
// coefficient maker and its matching processor. The caller owns the
// State for the lifetime of a voice group and passes it by pointer
// into every call.
//
// C holds the current coefficient value per slot and lane, DC the
// per-sample ramp increment, and R the recursive registers. R has no
// meaning outside the processor that owns the State's topology.
type State struct {
	C  [NumCoeffs]Vec
	DC [NumCoeffs]Vec
	R  [NumRegisters]Vec
}

// SetTarget installs new coefficient targets for one lane.
//
// With rampSamples > 0 the current values are kept and DC is set so
// that C reaches the target after exactly rampSamples calls to
// StepRamp. With rampSamples <= 0 the target takes effect immediately
// and DC is cleared. Slots beyond len(target) are untouched.
func (s *State) SetTarget(lane int, target []float32, rampSamples int) {
	if rampSamples <= 0 {
		for i, v := range target {
			s.C[i][lane] = v
			s.DC[i][lane] = 0
		}

		return
	}

	inv := 1 / float32(rampSamples)
	for i, v := range target {
		s.DC[i][lane] = (v - s.C[i][lane]) * inv
	}
}

// SetTargetAll installs the same coefficient targets on every lane.
func (s *State) SetTargetAll(target []float32, rampSamples int) {
	for lane := 0; lane < Width; lane++ {
		s.SetTarget(lane, target, rampSamples)
	}
}

// StepRamp advances the first n coefficient slots by one ramp step.
// Processors call this once per sample with their family's slot count.
func (s *State) StepRamp(n int) {
	for i := 0; i < n; i++ {
		for l := 0; l < Width; l++ {
			s.C[i][l] += s.DC[i][l]
		}
	}
}

// Reset clears the recursive registers, silencing the filter. The
// coefficients and ramp increments are kept.
func (s *State) Reset() {
	for i := range s.R {
		s.R[i] = Vec{}
	}
}

// ResetAll clears registers, coefficients and ramp increments.
func (s *State) ResetAll() {
	*s = State{}
}
