// Package wave superposes sinusoids over a uniform sample grid, producing
// the flat (x, y) sequences an external plotting or animation surface
// consumes.
//
// 🚀 What is wave superposition?
//
//	Summing sinusoids of different frequencies over the same x axis shows
//	how simple tones combine into rich waveforms.  It underlies:
//	  • Fourier-series intuition (square/triangle waves from harmonics)
//	  • Audio synthesis & beat phenomena demos
//	  • Classroom animations that add one frequency per frame
//
// ✨ Key features:
//   - Grid / Frequencies: uniform linear spacing between two bounds
//   - Sum: zero-initialized accumulator, one elementwise sinusoid per frequency
//   - Frames: the n-th frame is the sum of the first n+1 frequencies,
//     recomputed from scratch (no incremental state to drift)
//   - two formula variants, Sine sin(2πfx) and Cosine cos(πfx), via Options
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/kinetiq/wave"
//
//	x, _  := wave.Grid(-0.9, 0.9, 1000)   // 1000 samples across [-0.9, 0.9]
//	fs, _ := wave.Frequencies(1, 100, 100) // 1 Hz … 100 Hz
//
//	y, err := wave.Sum(x, fs, nil)         // nil → DefaultOptions (Sine)
//
// An empty frequency list yields an all-zero result of len(x); the engine
// itself never touches a rendering surface.
//
// Performance:
//
//   - Time:   O(samples × frequencies) for Sum,
//     O(samples × frequencies²) for Frames (each frame re-summed)
//   - Memory: O(samples) per returned curve
//
// See examples in example_test.go and the frame-loop walkthrough in
// examples/wave_superposition_frames.go.
package wave
