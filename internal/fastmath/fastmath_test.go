package fastmath

import (
	"math"
	"testing"
)

func TestSinMatchesMath(t *testing.T) {
	for x := -math.Pi; x <= math.Pi; x += 0.01 {
		got := float64(Sin(float32(x)))
		want := math.Sin(x)

		if math.Abs(got-want) > 2e-3 {
			t.Fatalf("Sin(%v): got %v, want %v", x, got, want)
		}
	}
}

func TestCosMatchesMath(t *testing.T) {
	for x := -math.Pi; x <= math.Pi; x += 0.01 {
		got := float64(Cos(float32(x)))
		want := math.Cos(x)

		if math.Abs(got-want) > 2e-3 {
			t.Fatalf("Cos(%v): got %v, want %v", x, got, want)
		}
	}
}

func TestTanMatchesMath(t *testing.T) {
	// The coefficient makers only feed Tan arguments below 0.3*pi;
	// test a little beyond that.
	for x := -1.3; x <= 1.3; x += 0.01 {
		got := float64(Tan(float32(x)))
		want := math.Tan(x)

		tol := 1e-4 + 1e-3*math.Abs(want)
		if math.Abs(got-want) > tol {
			t.Fatalf("Tan(%v): got %v, want %v", x, got, want)
		}
	}
}

func TestTanhMatchesMath(t *testing.T) {
	for x := -5.0; x <= 5.0; x += 0.01 {
		got := float64(Tanh(float32(x)))
		want := math.Tanh(x)

		if math.Abs(got-want) > 2e-3 {
			t.Fatalf("Tanh(%v): got %v, want %v", x, got, want)
		}
	}
}

func TestTanhClampedBounded(t *testing.T) {
	inputs := []float32{-1e6, -1000, -100, -10, -5.5, -1, 0, 1, 5.5, 10, 100, 1000, 1e6}

	for _, x := range inputs {
		got := TanhClamped(x)
		if got <= -1 || got >= 1 {
			t.Fatalf("TanhClamped(%v) = %v, want inside (-1, 1)", x, got)
		}
	}
}

func TestTanhClampedOdd(t *testing.T) {
	for x := float32(0); x <= 8; x += 0.25 {
		if TanhClamped(x) != -TanhClamped(-x) {
			t.Fatalf("TanhClamped not odd at %v", x)
		}
	}
}

func TestSoftClipBounds(t *testing.T) {
	inputs := []float32{-1e6, -100, -2, -1.5, -1, 0, 1, 1.5, 2, 100, 1e6}

	for _, x := range inputs {
		got := SoftClip(x)
		if got < -1 || got > 1 {
			t.Fatalf("SoftClip(%v) = %v, want within [-1, 1]", x, got)
		}
	}

	// The limits map exactly onto +-1.
	if got := SoftClip(1.5); math.Abs(float64(got)-1) > 1e-6 {
		t.Fatalf("SoftClip(1.5) = %v, want 1", got)
	}

	if got := SoftClip(-1.5); math.Abs(float64(got)+1) > 1e-6 {
		t.Fatalf("SoftClip(-1.5) = %v, want -1", got)
	}
}

func TestSoftClipNearlyLinearForSmallInputs(t *testing.T) {
	for x := float32(-0.1); x <= 0.1; x += 0.01 {
		got := SoftClip(x)
		if math.Abs(float64(got-x)) > 2e-4 {
			t.Fatalf("SoftClip(%v) = %v, want approximately %v", x, got, x)
		}
	}
}

func BenchmarkSin(b *testing.B) {
	b.ReportAllocs()

	var acc float32
	for i := 0; i < b.N; i++ {
		acc += Sin(float32(i%628)*0.01 - 3.14)
	}

	_ = acc
}

func BenchmarkTanhClamped(b *testing.B) {
	b.ReportAllocs()

	var acc float32
	for i := 0; i < b.N; i++ {
		acc += TanhClamped(float32(i%1000)*0.01 - 5)
	}

	_ = acc
}

func BenchmarkSoftClip(b *testing.B) {
	b.ReportAllocs()

	var acc float32
	for i := 0; i < b.N; i++ {
		acc += SoftClip(float32(i%400)*0.01 - 2)
	}

	_ = acc
}
