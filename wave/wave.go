package wave

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sum — sinusoid superposition
//
// Description:
//
//	Sum evaluates one sinusoid per frequency elementwise over the sample
//	grid x and accumulates the results into a zero-initialized buffer.
//	The number of samples is independent of the number of frequencies.
//
// Algorithm Outline:
//  1. Allocate sum[0..len(x)) = 0.
//  2. For each f in freqs:
//     evaluate the selected sinusoid at every x[i] into a scratch buffer,
//     then add the scratch buffer elementwise into sum.
//  3. Return sum.
//
// Variants (Options.Form):
//   - Sine   — sin(2π·f·x)
//   - Cosine — cos(π·f·x)
//
// Complexity:
//
//	Time   = O(len(x)·len(freqs))
//	Memory = O(len(x))
//
// Errors:
//   - ErrBadWaveform — if opts names an unknown Form.
var (
	// ErrBadSampleCount indicates a requested grid size below one sample.
	ErrBadSampleCount = errors.New("wave: sample count must be at least 1")

	// ErrBadInterval indicates non-finite bounds or min ≥ max on a multi-sample grid.
	ErrBadInterval = errors.New("wave: interval bounds must be finite with min < max")

	// ErrBadWaveform indicates an Options.Form outside the declared variants.
	ErrBadWaveform = errors.New("wave: unknown waveform variant")
)

// tau = 2π, precomputed once for the angular Sine form.
const tau = 2.0 * math.Pi

// minSamples is the smallest legal grid size.
const minSamples = 1

// Sum superposes one sinusoid per frequency over x and returns the
// accumulated waveform. The result always has len(x) samples; an empty
// frequency list yields an all-zero result. A nil opts selects
// DefaultOptions.
//
// Example:
//
//	y, err := Sum(x, freqs, nil) // Sine form
func Sum(x, freqs []float64, opts *Options) ([]float64, error) {
	form := Sine
	if opts != nil {
		form = opts.Form
	}
	if form != Sine && form != Cosine {
		return nil, ErrBadWaveform
	}

	// Zero-initialized accumulator, one slot per grid sample.
	sum := make([]float64, len(x))
	if len(x) == 0 || len(freqs) == 0 {
		return sum, nil
	}

	// Scratch buffer reused across frequencies.
	comp := make([]float64, len(x))
	for _, f := range freqs {
		component(comp, x, f, form)
		floats.Add(sum, comp)
	}

	return sum, nil
}

// Frames returns the superposition for every prefix of freqs: frame n holds
// Sum(x, freqs[:n+1], opts). Each frame is recomputed from scratch so no
// incremental state can drift between frames. An animation driver renders
// one frame per tick; pacing and drawing stay outside this package.
//
// Complexity: O(len(x)·len(freqs)²) time, O(len(x)·len(freqs)) memory.
func Frames(x, freqs []float64, opts *Options) ([][]float64, error) {
	frames := make([][]float64, 0, len(freqs))
	for n := 1; n <= len(freqs); n++ {
		y, err := Sum(x, freqs[:n], opts)
		if err != nil {
			return nil, err
		}
		frames = append(frames, y)
	}

	return frames, nil
}

// component evaluates the sinusoid for a single frequency elementwise into dst.
func component(dst, x []float64, f float64, form Waveform) {
	if form == Cosine {
		w := math.Pi * f
		for i, xi := range x {
			dst[i] = math.Cos(w * xi)
		}

		return
	}

	w := tau * f
	for i, xi := range x {
		dst[i] = math.Sin(w * xi)
	}
}
