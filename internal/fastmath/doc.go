// Package fastmath provides single-precision rational approximations of
// the transcendental functions used on the audio-rate filter paths.
//
// The approximants are continued-fraction (Padé) forms chosen for their
// accuracy over the limited argument ranges the filter code actually
// produces, and for being branch-free polynomials that vectorize well.
// The filter coefficients in dsp/filter were derived against exactly
// these shapes, so callers should not substitute math.* equivalents on
// the hot path.
package fastmath
