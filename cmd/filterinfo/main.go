// Command filterinfo prints coefficient and magnitude-response tables
// for the quad voice filters.
//
// Usage:
//
//	filterinfo [flags]
//
// Examples:
//
//	filterinfo -family nlbiquad -type lowpass -stages 2 -reso 0.5
//	filterinfo -family k35 -mode highpass -pitch -12 -reso 0.8
//	filterinfo -family k35 -rate 44100 -points 24
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-quadfilter/dsp/filter/k35"
	"github.com/cwbudde/algo-quadfilter/dsp/filter/nlbiquad"
	"github.com/cwbudde/algo-quadfilter/dsp/quad"
	"github.com/cwbudde/algo-quadfilter/measure/response"
)

var typeNames = map[string]nlbiquad.Type{
	"lowpass":  nlbiquad.Lowpass,
	"highpass": nlbiquad.Highpass,
	"notch":    nlbiquad.Notch,
	"bandpass": nlbiquad.Bandpass,
	"allpass":  nlbiquad.Allpass,
}

var satNames = map[string]nlbiquad.Saturator{
	"tanh":     nlbiquad.SaturatorTanh,
	"softclip": nlbiquad.SaturatorSoftClip,
}

var modeNames = map[string]k35.Mode{
	"lowpass":  k35.ModeLowpass,
	"highpass": k35.ModeHighpass,
}

func main() {
	var (
		family  = flag.String("family", "nlbiquad", "filter family: nlbiquad or k35")
		typName = flag.String("type", "lowpass", "nlbiquad type: lowpass, highpass, notch, bandpass, allpass")
		satName = flag.String("sat", "tanh", "nlbiquad saturator: tanh or softclip")
		stages  = flag.Int("stages", 1, "nlbiquad stage count (1-4)")
		mode    = flag.String("mode", "lowpass", "k35 mode: lowpass or highpass")
		pitch   = flag.Float64("pitch", 0, "pitch in semitones relative to A440")
		reso    = flag.Float64("reso", 0.5, "resonance (nlbiquad: 0-1, k35: pre-scale units)")
		drive   = flag.Float64("drive", 0, "k35 drive/saturation amount")
		rate    = flag.Float64("rate", 48000, "sample rate in Hz")
		size    = flag.Int("n", 8192, "measurement length (power of two)")
		points  = flag.Int("points", 16, "number of response table rows")
	)

	flag.Parse()

	if *rate <= 0 {
		fail(fmt.Errorf("sample rate must be > 0: %f", *rate))
	}

	tuning := quad.EqualTemperament{}
	sr := float32(*rate)

	var (
		process func(quad.Vec) quad.Vec
		st      quad.State
		nCoeffs int
		header  string
	)

	switch *family {
	case "nlbiquad":
		typ, ok := typeNames[*typName]
		if !ok {
			fail(fmt.Errorf("unknown type: %q", *typName))
		}

		sat, ok := satNames[*satName]
		if !ok {
			fail(fmt.Errorf("unknown saturator: %q", *satName))
		}

		cfg, err := nlbiquad.NewConfig(typ, *stages, sat)
		if err != nil {
			fail(err)
		}

		for lane := 0; lane < quad.Width; lane++ {
			nlbiquad.MakeCoefficients(&st, lane, float32(*pitch), float32(*reso), typ, sr, 0, tuning)
		}

		process = func(in quad.Vec) quad.Vec { return nlbiquad.Process(&st, cfg, in) }
		nCoeffs = nlbiquad.NumCoeffs
		header = fmt.Sprintf("nlbiquad %s, %d stage(s), %s saturator", typ, cfg.Stages(), sat)

	case "k35":
		m, ok := modeNames[*mode]
		if !ok {
			fail(fmt.Errorf("unknown mode: %q", *mode))
		}

		srInv := 1 / sr
		for lane := 0; lane < quad.Width; lane++ {
			k35.MakeCoefficients(&st, lane, float32(*pitch), float32(*reso), float32(*drive),
				m, sr, srInv, 0, tuning)
		}

		if m == k35.ModeLowpass {
			process = func(in quad.Vec) quad.Vec { return k35.ProcessLowpass(&st, in) }
		} else {
			process = func(in quad.Vec) quad.Vec { return k35.ProcessHighpass(&st, in) }
		}

		nCoeffs = k35.NumCoeffs
		header = fmt.Sprintf("k35 %s, drive %.2f", m, *drive)

	default:
		fail(fmt.Errorf("unknown family: %q", *family))
	}

	fmt.Println(header)
	fmt.Printf("pitch %.2f st, resonance %.3f, sample rate %.0f Hz\n\n", *pitch, *reso, *rate)

	printCoefficients(&st, nCoeffs)

	// Measuring mutates the registers; the printed coefficients above
	// are unaffected because the ramp deltas are zero.
	res, err := response.Measure(process, *size, *rate)
	if err != nil {
		fail(err)
	}

	printResponse(res, *points, *rate)
}

func printCoefficients(st *quad.State, n int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "slot\tlane 0\tlane 1\tlane 2\tlane 3")

	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "C[%d]\t%.6g\t%.6g\t%.6g\t%.6g\n",
			i, st.C[i][0], st.C[i][1], st.C[i][2], st.C[i][3])
	}

	w.Flush()
	fmt.Println()
}

func printResponse(res response.Result, points int, rate float64) {
	if points < 2 {
		points = 2
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "frequency\tmagnitude")

	lo := math.Log10(20)
	hi := math.Log10(rate * 0.45)

	for i := 0; i < points; i++ {
		f := math.Pow(10, lo+(hi-lo)*float64(i)/float64(points-1))
		fmt.Fprintf(w, "%.1f Hz\t%+.2f dB\n", f, response.MagnitudeDB(res.At(f)))
	}

	w.Flush()

	peakF, peakM := res.Peak()
	fmt.Printf("\npeak %+.2f dB at %.1f Hz\n", response.MagnitudeDB(peakM), peakF)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "filterinfo: %v\n", err)
	os.Exit(1)
}
