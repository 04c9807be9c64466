// Package k35 implements a four-lane Korg-35-style two-pole nonlinear
// ladder filter with lowpass and highpass variants.
//
// The topology couples three one-pole sections through a shared
// feedback node: a first section matching the overall mode, a second
// section in the forward path and a third that only keeps its register
// current for the next sample's feedback term. The otherwise implicit
// feedback loop is solved in closed form by the alpha coefficient
// (zero-delay feedback), avoiding both an iterative solver and the
// one-sample delay error of naive discretization. A drive/saturation
// blend cross-fades a tanh-saturated copy of the loop signal against
// the clean one, so saturation amounts below 1 fade the nonlinearity
// out smoothly.
//
// MakeCoefficients runs at control rate; ProcessLowpass and
// ProcessHighpass run once per audio sample, never allocate and never
// fail. The resonance scaling is clamped to [0.01, 1.96]: outside that
// range the closed-form feedback solution is unstable, so the clamp is
// a correctness requirement rather than a convenience. A freshly zeroed
// state must receive its first coefficients with rampSamples <= 0; the
// output is normalized by the resonance coefficient, and ramping up
// from the zero state would divide by values near zero during the
// first block.
package k35
