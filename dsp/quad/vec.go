package quad

// Width is the number of parallel filter lanes processed per call.
const Width = 4

// Vec holds one single-precision sample per lane.
type Vec [Width]float32

// Splat returns a Vec with every lane set to v.
func Splat(v float32) Vec {
	return Vec{v, v, v, v}
}

// Add returns the lane-wise sum a + b.
func (a Vec) Add(b Vec) Vec {
	for l := 0; l < Width; l++ {
		a[l] += b[l]
	}

	return a
}

// Sub returns the lane-wise difference a - b.
func (a Vec) Sub(b Vec) Vec {
	for l := 0; l < Width; l++ {
		a[l] -= b[l]
	}

	return a
}

// Mul returns the lane-wise product a * b.
func (a Vec) Mul(b Vec) Vec {
	for l := 0; l < Width; l++ {
		a[l] *= b[l]
	}

	return a
}

// Div returns the lane-wise quotient a / b.
func (a Vec) Div(b Vec) Vec {
	for l := 0; l < Width; l++ {
		a[l] /= b[l]
	}

	return a
}
