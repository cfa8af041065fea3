// SPDX-License-Identifier: MIT
// Package: kinetiq/boltzmann
//
// errors.go — sentinel errors for the boltzmann package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context (token, parameter name) via `%w`.
//   • Computations never panic; every domain violation surfaces as an error.

package boltzmann

import "errors"

// ErrUnknownMass indicates that a mass token is neither a recognized gas
// name (hyd/oxy/air/wat) nor a parseable numeric literal.
// Classification: Validation error (token shape).
// Usage: if errors.Is(err, ErrUnknownMass) { /* report the bad token */ }.
var ErrUnknownMass = errors.New("boltzmann: unknown molecular mass token")

// ErrInvalidNumber indicates a scalar value (e.g. a temperature in a list)
// that could not be parsed as a floating-point number.
// Classification: Validation error (value shape).
// Usage: if errors.Is(err, ErrInvalidNumber) { /* report the bad value */ }.
var ErrInvalidNumber = errors.New("boltzmann: value is not a number")

// ErrNonPositiveParameter indicates a physical parameter outside its domain:
// mass, absolute temperature, maximum speed/energy must be > 0 and the step
// count must be ≥ 1. Formulas divide by these and take square roots, so
// non-positive inputs are rejected up front rather than left undefined.
// Classification: Validation error (value domain).
// Usage: if errors.Is(err, ErrNonPositiveParameter) { /* fix the input */ }.
var ErrNonPositiveParameter = errors.New("boltzmann: parameter must be positive")
