package wave

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid returns count uniformly spaced samples across [min, max], endpoints
// included. The slice is freshly allocated on every call; callers own it.
//
// Rules:
//   - count must be ≥ 1, otherwise ErrBadSampleCount.
//   - bounds must be finite, otherwise ErrBadInterval.
//   - for count > 1, min must be strictly below max (ErrBadInterval);
//     a single-sample grid collapses to [min].
//
// Complexity: O(count) time, O(count) space.
func Grid(min, max float64, count int) ([]float64, error) {
	if count < minSamples {
		return nil, ErrBadSampleCount
	}
	if !finite(min) || !finite(max) {
		return nil, ErrBadInterval
	}
	if count == minSamples {
		return []float64{min}, nil
	}
	if min >= max {
		return nil, ErrBadInterval
	}

	return floats.Span(make([]float64, count), min, max), nil
}

// Frequencies returns count uniformly spaced frequencies across [lo, hi].
// It shares Grid's spacing and validation rules; the frequency axis is just
// another uniform grid. Incremental animation takes prefixes of the result
// (freqs[:n]) — see Frames.
//
// Complexity: O(count) time, O(count) space.
func Frequencies(lo, hi float64, count int) ([]float64, error) {
	return Grid(lo, hi, count)
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
