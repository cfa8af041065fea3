// Package boltzmann computes Maxwell–Boltzmann speed and energy
// distributions for an ideal gas, plus the three classical characteristic
// speeds, as pure functions over flat float64 sequences.
//
// 🚀 What is the Boltzmann distribution?
//
//	The statistical spread of particle speeds (or kinetic energies) in a
//	gas at thermal equilibrium.  Hotter gas → flatter, wider curve; heavier
//	molecules → slower, narrower curve.  Classic classroom material for:
//	  • Comparing gases (hydrogen vs air vs water vapor)
//	  • Comparing temperatures of the same gas
//	  • Deriving most-probable / mean / RMS speeds
//
// ✨ Key features:
//   - SpeedDistribution / EnergyDistribution: discretized curves built by
//     stepping the scalar variable from 0 until the requested maximum
//   - Speeds: closed-form most-probable, mean and RMS velocities
//   - SpeedSeries / EnergySeries: one labeled curve per Celsius temperature,
//     input order preserved — ready for a multi-line plot legend
//   - ResolveMass: named gases (hyd/oxy/air/wat) or a literal numeric token
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/kinetiq/boltzmann"
//
//	mass, title, err := boltzmann.ResolveMass("air") // 28.97 g/mol, "Aire"
//	curve, err := boltzmann.SpeedDistribution(mass,
//		boltzmann.CelsiusToKelvin(25),
//		boltzmann.DefaultMaxSpeed, boltzmann.DefaultSteps)
//
// Known quirk (kept on purpose): the energy curve folds the step width Δe
// into each value — it approximates per-bin probability mass — while the
// speed curve is a pointwise density; both are scaled ×100 into a
// percent-like display unit. Unifying the two would change every published
// plot, so the asymmetry is preserved and pinned by tests.
//
// Errors are sentinels only; branch with errors.Is:
//   - ErrUnknownMass          — mass token neither a known gas nor a number
//   - ErrInvalidNumber        — non-numeric scalar in a value list
//   - ErrNonPositiveParameter — mass/temperature/maximum/steps out of domain
//
// Performance: every call is O(steps) (distributions) or O(1) (speeds),
// no I/O, no shared state, runs to completion.
package boltzmann
