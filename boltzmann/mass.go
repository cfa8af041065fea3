// SPDX-License-Identifier: MIT
// Package: kinetiq/boltzmann
//
// mass.go — molecular-mass resolution from short gas names or numeric tokens.
//
// Contract:
//   - Fixed, canonical gas table (hyd/oxy/air/wat); no runtime registration.
//   - Empty token falls back to water, the historical default.
//   - Numeric tokens pass through ParseFloat with an empty display title.
//   - Everything else → ErrUnknownMass (wrapped with the token).

package boltzmann

import (
	"fmt"
	"strconv"
)

// defaultGasToken is substituted for an empty mass token.
const defaultGasToken = "wat"

// gas couples a molar mass with its display title for plot legends.
type gas struct {
	mass  float64 // molar mass [kg/mol]
	title string  // display title handed to the plotting surface
}

// gasTable maps the selectable short names to their gas records.
// The titles are the historical display strings and are treated as opaque.
var gasTable = map[string]gas{
	"hyd": {mass: MassHydrogen, title: "Hidrogeno"},
	"oxy": {mass: MassOxygen, title: "Oxigeno"},
	"air": {mass: MassAir, title: "Aire"},
	"wat": {mass: MassWater, title: "Agua"},
}

// ResolveMass maps a token to a molar mass and a default display title.
//
// Resolution order:
//  1. Empty token → the water entry.
//  2. Known short name (hyd/oxy/air/wat) → its table entry.
//  3. Numeric literal → (parsed value, "").
//  4. Anything else → ErrUnknownMass.
//
// ResolveMass classifies token shape only; value-domain checks (mass > 0)
// happen at computation entry, see SpeedDistribution and Speeds.
//
// Complexity: O(len(token)) time, O(1) space.
func ResolveMass(token string) (mass float64, title string, err error) {
	if token == "" {
		token = defaultGasToken
	}
	if g, ok := gasTable[token]; ok {
		return g.mass, g.title, nil
	}

	mass, parseErr := strconv.ParseFloat(token, 64)
	if parseErr != nil {
		return 0, "", fmt.Errorf("ResolveMass(%q): %w", token, ErrUnknownMass)
	}

	return mass, "", nil
}
