package quad

import "testing"

func TestVecArithmetic(t *testing.T) {
	a := Vec{1, 2, 3, 4}
	b := Vec{4, 3, 2, 1}

	if got := a.Add(b); got != (Vec{5, 5, 5, 5}) {
		t.Fatalf("Add: got %v", got)
	}

	if got := a.Sub(b); got != (Vec{-3, -1, 1, 3}) {
		t.Fatalf("Sub: got %v", got)
	}

	if got := a.Mul(b); got != (Vec{4, 6, 6, 4}) {
		t.Fatalf("Mul: got %v", got)
	}

	if got := a.Div(Splat(2)); got != (Vec{0.5, 1, 1.5, 2}) {
		t.Fatalf("Div: got %v", got)
	}
}

func TestSplat(t *testing.T) {
	if got := Splat(0.25); got != (Vec{0.25, 0.25, 0.25, 0.25}) {
		t.Fatalf("Splat: got %v", got)
	}
}
