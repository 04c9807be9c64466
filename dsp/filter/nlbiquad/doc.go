// Package nlbiquad implements a four-lane biquad cascade with a
// saturator inside the recursive path.
//
// Each of the 1-4 serial stages runs a direct-form-II-like update and
// then soft-clips both of its delay registers before storing them, so
// the nonlinearity shapes the feedback itself rather than just the
// output. All stages share one coefficient set (audio-EQ-cookbook
// lowpass, highpass, notch, bandpass or allpass) but own a private
// register pair, giving up to an 8th-order response from one
// coefficient derivation.
//
// MakeCoefficients is called at control rate and writes targets through
// the coefficient ramp of the shared quad.State; Process is called once
// per audio sample, never allocates and never fails.
package nlbiquad
