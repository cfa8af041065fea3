// SPDX-License-Identifier: MIT
// Package: kinetiq/boltzmann
//
// constants.go — physical constants, molar masses and display defaults.
//
// Purpose:
//   - Hold the fixed numeric inputs of the distribution formulas.
//   - Provide small named constants to avoid magic literals in loops.
//
// Contract:
//   - Values are package-level constants; nothing here is configurable.

package boltzmann

// Physical constants.
const (
	// R is the universal gas constant [J/(K·mol)].
	R = 8.3144598

	// Kb is the Boltzmann constant [J/K]. Unused by the molar-form
	// distribution formulas below; exported for per-molecule work.
	Kb = 1.38064852e-23
)

// Molar masses [kg/mol] of the selectable gases.
const (
	MassHydrogen = 1.00794 / 1000
	MassOxygen   = 15.999 / 1000
	MassAir      = 28.97 / 1000
	MassWater    = 18.01528 / 1000
)

// Default sweep bounds for distribution curves.
const (
	// DefaultMaxEnergy caps the energy axis [J].
	DefaultMaxEnergy = 25000.0

	// DefaultMaxSpeed caps the speed axis [m/s].
	DefaultMaxSpeed = 3000.0

	// DefaultSteps is the number of increments across either axis.
	DefaultSteps = 300
)

// absoluteZeroOffset converts between Celsius and Kelvin scales.
const absoluteZeroOffset = 273.15

// percentScale lifts raw densities into the percent-like display unit
// every curve is published in.
const percentScale = 100.0

// minSteps is the smallest legal step count for a distribution sweep.
const minSteps = 1
