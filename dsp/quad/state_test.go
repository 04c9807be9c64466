package quad

import (
	"math"
	"testing"
)

func TestSetTargetImmediate(t *testing.T) {
	var st State

	target := []float32{0.5, -0.25, 1, 0, 2}
	st.SetTarget(2, target, 0)

	for i, want := range target {
		if got := st.C[i][2]; got != want {
			t.Fatalf("C[%d] lane 2: got %v, want %v", i, got, want)
		}

		if st.DC[i][2] != 0 {
			t.Fatalf("DC[%d] lane 2: got %v, want 0", i, st.DC[i][2])
		}
	}

	// Other lanes untouched.
	for i := range target {
		if st.C[i][0] != 0 || st.C[i][1] != 0 || st.C[i][3] != 0 {
			t.Fatalf("C[%d]: other lanes modified: %v", i, st.C[i])
		}
	}
}

func TestRampReachesTargetExactly(t *testing.T) {
	var st State

	// Binary-exact values so N ramp steps land on the target without
	// rounding.
	target := []float32{1, -2, 0.5, 0.25}
	const rampLen = 4

	st.SetTarget(0, target, rampLen)

	for step := 0; step < rampLen; step++ {
		st.StepRamp(len(target))
	}

	for i, want := range target {
		if got := st.C[i][0]; got != want {
			t.Fatalf("C[%d] after %d steps: got %v, want %v", i, rampLen, got, want)
		}
	}
}

func TestRampIsLinear(t *testing.T) {
	var st State

	st.SetTarget(1, []float32{1}, 8)

	prev := float32(0)
	for step := 1; step <= 8; step++ {
		st.StepRamp(1)

		got := st.C[0][1]
		want := float32(step) * 0.125

		if math.Abs(float64(got-want)) > 1e-6 {
			t.Fatalf("step %d: got %v, want %v", step, got, want)
		}

		if got <= prev {
			t.Fatalf("step %d: ramp not increasing: %v -> %v", step, prev, got)
		}

		prev = got
	}
}

func TestRampRetargetsFromCurrentValue(t *testing.T) {
	var st State

	st.SetTarget(0, []float32{1}, 0)
	st.SetTarget(0, []float32{0}, 4)

	st.StepRamp(1)
	st.StepRamp(1)

	if got := st.C[0][0]; math.Abs(float64(got-0.5)) > 1e-6 {
		t.Fatalf("mid-ramp value: got %v, want 0.5", got)
	}
}

func TestStepRampOnlyTouchesRequestedSlots(t *testing.T) {
	var st State

	for i := 0; i < NumCoeffs; i++ {
		st.DC[i] = Splat(1)
	}

	st.StepRamp(3)

	for i := 0; i < NumCoeffs; i++ {
		want := float32(0)
		if i < 3 {
			want = 1
		}

		if st.C[i][0] != want {
			t.Fatalf("C[%d]: got %v, want %v", i, st.C[i][0], want)
		}
	}
}

func TestResetClearsRegistersOnly(t *testing.T) {
	var st State

	st.SetTarget(0, []float32{0.5}, 0)
	st.R[3] = Splat(0.9)

	st.Reset()

	if st.R[3] != (Vec{}) {
		t.Fatalf("registers not cleared: %v", st.R[3])
	}

	if st.C[0][0] != 0.5 {
		t.Fatalf("coefficients clobbered by Reset: %v", st.C[0][0])
	}

	st.ResetAll()

	if st.C[0][0] != 0 {
		t.Fatalf("ResetAll left coefficients: %v", st.C[0][0])
	}
}

func TestLaneIndependentTargets(t *testing.T) {
	var st State

	for lane := 0; lane < Width; lane++ {
		st.SetTarget(lane, []float32{float32(lane + 1)}, 0)
	}

	for lane := 0; lane < Width; lane++ {
		if got := st.C[0][lane]; got != float32(lane+1) {
			t.Fatalf("lane %d: got %v, want %v", lane, got, float32(lane+1))
		}
	}
}
