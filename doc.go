// Package kinetiq is a small numeric toolbox for educational physics:
// wave superposition and the Maxwell–Boltzmann distribution, as pure
// in-memory computations over flat float64 sequences.
//
// 🚀 What is kinetiq?
//
//	A deterministic, side-effect-free library that brings together:
//		• Wave synthesis: superpose growing sets of sinusoids over a sample grid
//		• Kinetic gas theory: speed & energy Boltzmann distributions
//		• Characteristic speeds: most probable, mean and RMS velocities
//		• Scalar plumbing: gas-name resolution, Celsius↔Kelvin, list parsing
//
// ✨ Why choose kinetiq?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Plot-agnostic – engines return (x, y, label) data; rendering is yours
//   - Pure Go – no cgo, no hidden state, every call runs to completion
//   - Strict errors – sentinel values only, branch with errors.Is
//
// Under the hood, everything is organized under two subpackages:
//
//	wave/      — sample grids, frequency sets, sinusoid superposition & frames
//	boltzmann/ — speed/energy distributions, characteristic speeds, constants
//
// Quick sketch:
//
//	x, _  := wave.Grid(-0.9, 0.9, 1000)
//	fs, _ := wave.Frequencies(1, 100, 100)
//	y, _  := wave.Sum(x, fs, nil)          // superposition of 100 sinusoids
//
//	curve, _ := boltzmann.SpeedDistribution(boltzmann.MassWater,
//		boltzmann.CelsiusToKelvin(25), boltzmann.DefaultMaxSpeed, boltzmann.DefaultSteps)
//
// Dive into examples/ for runnable walkthroughs: an animation frame loop and
// a multi-gas distribution comparison.
//
//	go get github.com/katalvlaran/kinetiq
package kinetiq
