package nlbiquad

import (
	"fmt"

	"github.com/cwbudde/algo-quadfilter/dsp/quad"
	"github.com/cwbudde/algo-quadfilter/internal/fastmath"
)

// Saturator selects the register nonlinearity.
type Saturator int

const (
	// SaturatorTanh is a clamped tanh approximation bounding the
	// registers strictly inside (-1, 1).
	SaturatorTanh Saturator = iota
	// SaturatorSoftClip is a cheaper cubic soft clip bounding the
	// registers to [-1, 1].
	SaturatorSoftClip
)

// String returns a human-readable name for the saturator.
func (s Saturator) String() string {
	switch s {
	case SaturatorTanh:
		return "tanh"
	case SaturatorSoftClip:
		return "softclip"
	default:
		return "unknown"
	}
}

// Config is the resolved processing configuration: response type, stage
// count and saturator. Build it once with NewConfig when a filter
// instance is (re)configured; the per-sample path does not re-validate.
//
// The zero value has a stage count of zero and passes input through.
type Config struct {
	typ    Type
	stages int
	sat    Saturator
}

// NewConfig validates and returns a processing configuration.
func NewConfig(typ Type, stages int, sat Saturator) (Config, error) {
	if typ < Lowpass || typ > Allpass {
		return Config{}, fmt.Errorf("nlbiquad: invalid type: %d", typ)
	}

	if stages < 1 || stages > MaxStages {
		return Config{}, fmt.Errorf("nlbiquad: stage count must be in [1, %d]: %d", MaxStages, stages)
	}

	if sat != SaturatorTanh && sat != SaturatorSoftClip {
		return Config{}, fmt.Errorf("nlbiquad: invalid saturator: %d", sat)
	}

	return Config{typ: typ, stages: stages, sat: sat}, nil
}

// Type returns the configured response type.
func (c Config) Type() Type { return c.typ }

// Stages returns the configured cascade depth.
func (c Config) Stages() int { return c.stages }

// Saturator returns the configured register nonlinearity.
func (c Config) Saturator() Saturator { return c.sat }

// Process filters one 4-lane sample through the configured cascade and
// advances the coefficient ramp.
//
// Stages run in series, each using its own register pair but the shared
// coefficients. Both registers of a stage are saturated before they are
// stored, which is what keeps the recursion bounded for any finite
// input. The ramp step is applied after the stage loop, so every stage
// of one call sees identical coefficients.
func Process(st *quad.State, cfg Config, in quad.Vec) quad.Vec {
	sat := fastmath.TanhClamped
	if cfg.sat == SaturatorSoftClip {
		sat = fastmath.SoftClip
	}

	for stage := 0; stage < cfg.stages; stage++ {
		in = processStage(st, sat, stage, in)
	}

	st.StepRamp(NumCoeffs)

	return in
}

func processStage(st *quad.State, sat func(float32) float32, stage int, in quad.Vec) quad.Vec {
	z1 := &st.R[2*stage]
	z2 := &st.R[2*stage+1]

	var out quad.Vec

	for l := 0; l < quad.Width; l++ {
		x := in[l]

		// Direct form II transposed, with both delay registers
		// passed through the saturator before storage.
		y := z1[l] + st.C[CoeffB0][l]*x
		t1 := z2[l] + st.C[CoeffB1][l]*x - st.C[CoeffA1][l]*y
		t2 := st.C[CoeffB2][l]*x - st.C[CoeffA2][l]*y

		z1[l] = sat(t1)
		z2[l] = sat(t2)
		out[l] = y
	}

	return out
}
