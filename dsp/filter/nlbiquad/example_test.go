package nlbiquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-quadfilter/dsp/filter/nlbiquad"
	"github.com/cwbudde/algo-quadfilter/dsp/quad"
)

func ExampleProcess() {
	var st quad.State

	// Four voices at the same cutoff and resonance.
	for lane := 0; lane < quad.Width; lane++ {
		nlbiquad.MakeCoefficients(&st, lane, 0, 0.5, nlbiquad.Lowpass,
			48000, 0, quad.EqualTemperament{})
	}

	cfg, err := nlbiquad.NewConfig(nlbiquad.Lowpass, 1, nlbiquad.SaturatorSoftClip)
	if err != nil {
		panic(err)
	}

	// The first impulse output is the b0 coefficient: the saturator
	// sits inside the recursion, not on the output.
	out := nlbiquad.Process(&st, cfg, quad.Splat(1))
	fmt.Println(out[0] == st.C[nlbiquad.CoeffB0][0])

	// Output:
	// true
}

func ExampleNewConfig() {
	cfg, err := nlbiquad.NewConfig(nlbiquad.Bandpass, 2, nlbiquad.SaturatorTanh)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s, %d stages, %s\n", cfg.Type(), cfg.Stages(), cfg.Saturator())

	// Output:
	// bandpass, 2 stages, tanh
}
