// SPDX-License-Identifier: MIT
// Package: kinetiq/boltzmann
//
// temperature.go — Celsius↔Kelvin conversion and temperature-list parsing.
//
// Contract:
//   - CelsiusToKelvin and KelvinToCelsius are exact inverses.
//   - ParseTemperatures preserves input order and fails on the first
//     unparseable token (all-or-nothing, no partial result).

package boltzmann

import (
	"fmt"
	"strconv"
)

// CelsiusToKelvin converts a temperature from Celsius to Kelvin.
// Complexity: O(1) time, O(1) space.
func CelsiusToKelvin(t float64) float64 {
	return t + absoluteZeroOffset
}

// KelvinToCelsius converts a temperature from Kelvin to Celsius.
// Complexity: O(1) time, O(1) space.
func KelvinToCelsius(t float64) float64 {
	return t - absoluteZeroOffset
}

// ParseTemperatures converts a list of numeric tokens (Celsius) into
// float64 values, preserving order. The first token that fails to parse
// aborts the call with ErrInvalidNumber wrapped around the offender.
//
// Complexity: O(len(tokens)) time, O(len(tokens)) space.
func ParseTemperatures(tokens []string) ([]float64, error) {
	temps := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("ParseTemperatures(%q): %w", tok, ErrInvalidNumber)
		}
		temps = append(temps, v)
	}

	return temps, nil
}
