package fastmath

// Sin approximates sin(x) for x in [-pi, pi] using a [7/6] Padé
// approximant. Outside that range the approximation diverges; callers
// are responsible for range reduction.
func Sin(x float32) float32 {
	x2 := x * x
	num := -x * (-11511339840 + x2*(1640635920+x2*(-52785432+x2*479249)))
	den := 11511339840 + x2*(277920720+x2*(3177720+x2*18361))

	return num / den
}

// Cos approximates cos(x) for x in [-pi, pi] using a [6/6] Padé
// approximant.
func Cos(x float32) float32 {
	x2 := x * x
	num := -(-39251520 + x2*(18471600+x2*(-1075032+14615*x2)))
	den := 39251520 + x2*(1154160+x2*(16632+x2*127))

	return num / den
}

// Tan approximates tan(x) for x in (-pi/2, pi/2) using the truncated
// continued fraction of tan. Accuracy degrades as |x| approaches pi/2;
// the coefficient makers only feed it arguments below 0.3*pi.
func Tan(x float32) float32 {
	x2 := x * x
	num := x * (-135135 + x2*(17325+x2*(-378+x2)))
	den := -135135 + x2*(62370+x2*(-3150+28*x2))

	return num / den
}

// Tanh approximates tanh(x) using the truncated continued fraction of
// tanh. The raw approximant exceeds magnitude 1 for |x| above roughly
// 5.7; use TanhClamped when the argument is unbounded.
func Tanh(x float32) float32 {
	x2 := x * x
	num := x * (135135 + x2*(17325+x2*(378+x2)))
	den := 135135 + x2*(62370+x2*(3150+28*x2))

	return num / den
}

// TanhClamped clamps x to [-5, 5] and applies Tanh. The result is
// strictly inside (-1, 1) for every finite input, which is what bounds
// the nonlinear feedback paths in dsp/filter.
func TanhClamped(x float32) float32 {
	if x > 5 {
		x = 5
	} else if x < -5 {
		x = -5
	}

	return Tanh(x)
}

// SoftClip is a cheap polynomial soft clipper: the input is hard
// limited to [-1.5, 1.5] and shaped with x - (4/27)x^3, which maps the
// limits to exactly -1 and 1 with a continuous derivative.
func SoftClip(x float32) float32 {
	if x > 1.5 {
		x = 1.5
	} else if x < -1.5 {
		x = -1.5
	}

	return x - (4.0/27.0)*x*x*x
}
