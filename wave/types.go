// Package wave defines waveform variants and options for sinusoid superposition.
package wave

// Waveform selects the sinusoid evaluated for each frequency.
//
//   - Sine   — y(x) = sin(2π·f·x). The angular form: f is a true frequency
//     in cycles per unit of x (Hz when x is seconds).
//
//   - Cosine — y(x) = cos(π·f·x). The half-angle form: phase grows at half
//     the angular rate and the curve starts at its crest (cos 0 = 1).
//
// Both forms share the same superposition structure; only the per-frequency
// formula differs.
type Waveform int

const (
	// Sine mode: accumulate sin(2π·f·x) per frequency. The default.
	Sine Waveform = iota

	// Cosine mode: accumulate cos(π·f·x) per frequency.
	Cosine
)

// Options configures sinusoid superposition.
//
// Fields:
//   - Form — which sinusoid variant to evaluate (Sine or Cosine).
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Form = Cosine
//
//	y, err := Sum(x, freqs, &opts)
//	if err != nil {
//	  // handle ErrBadWaveform
//	}
type Options struct {
	Form Waveform
}

// DefaultOptions returns the canonical configuration: the Sine form.
// Complexity: O(1) time, O(1) space.
func DefaultOptions() Options {
	return Options{Form: Sine}
}
