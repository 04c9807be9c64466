// Package quad provides the shared state and parameter plumbing for
// four-lane data-parallel voice filters.
//
// A quad filter processes four independent synthesizer voices ("lanes")
// in lockstep: one call consumes one [Vec] (one sample per lane) and
// produces one Vec. All per-instance memory lives in a caller-owned
// [State]: current coefficients C, per-sample coefficient increments DC
// (the coefficient ramp), and the recursive filter registers R. The
// filter packages under dsp/filter define what the indices of C and R
// mean; this package only defines the layout and the operations shared
// by every filter family:
//
//   - the coefficient ramp (SetTarget / StepRamp), which moves C
//     linearly toward new targets one sample at a time so parameter
//     changes never produce discontinuities, and
//   - the pitch-to-frequency mapping (ClampedFrequency) with its
//     pluggable [Tuning] provider.
//
// A State must not be shared between goroutines; it is exclusively
// owned by the calling voice for the duration of a block.
package quad
