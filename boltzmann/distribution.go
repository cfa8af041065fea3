package boltzmann

import (
	"fmt"
	"math"
)

// Curve is a discretized distribution: X holds the swept variable (speed
// [m/s] or energy [J]) and Y the display value per step. Both slices always
// have equal length and X is strictly increasing from 0.
type Curve struct {
	X []float64
	Y []float64
}

// TemperatureCurve labels one Curve with the Celsius temperature that
// produced it, ready for a multi-line plot legend.
type TemperatureCurve struct {
	Celsius float64 // requested temperature [°C]
	Label   string  // legend label, "<t> C"
	Curve   Curve
}

// threeHalves is the exponent of the Maxwell–Boltzmann normalization term.
const threeHalves = 1.5

// SpeedDistribution — Maxwell–Boltzmann speed curve
//
// Description:
//
//	Discretizes the molar-form speed distribution for one gas at one
//	absolute temperature.
//
// Algorithm Outline:
//  1. k  = 4π · (m / (2πRT))^1.5          (normalization constant)
//  2. Δv = maxSpeed / steps
//  3. For v = 0; v < maxSpeed; v += Δv:
//     X ← v
//     Y ← k · v² · exp(−m·v² / (2RT)) · 100
//
// The loop stops once v reaches or exceeds maxSpeed, so the point count is
// ⌈maxSpeed/Δv⌉ under float accumulation: the final bin may be partial, and
// exactly `steps` points appear only when maxSpeed divides evenly. That
// boundary behavior is part of the contract — callers pad or trim, the
// engine does not.
//
// Complexity:
//
//	Time   = O(steps)
//	Memory = O(steps)
//
// Errors:
//   - ErrNonPositiveParameter — mass, tempK or maxSpeed ≤ 0 (or non-finite),
//     or steps < 1.
func SpeedDistribution(mass, tempK, maxSpeed float64, steps int) (Curve, error) {
	if err := validateSweep(mass, tempK, maxSpeed, "maxSpeed", steps); err != nil {
		return Curve{}, err
	}

	k := 4 * math.Pi * math.Pow(mass/(2*math.Pi*R*tempK), threeHalves)
	delta := maxSpeed / float64(steps)

	var xs, ys []float64
	for speed := 0.0; speed < maxSpeed; speed += delta {
		v2 := speed * speed
		xs = append(xs, speed)
		ys = append(ys, k*v2*math.Exp(-mass*v2/(2*R*tempK))*percentScale)
	}

	return Curve{X: xs, Y: ys}, nil
}

// EnergyDistribution — Maxwell–Boltzmann kinetic-energy curve
//
// Description:
//
//	Discretizes the molar-form energy distribution at one absolute
//	temperature. Mass cancels out of the energy form entirely.
//
// Algorithm Outline:
//  1. k  = 2π · (πRT)^−1.5
//  2. Δe = maxEnergy / steps
//  3. For e = 0; e < maxEnergy; e += Δe:
//     X ← e
//     Y ← k · √e · exp(−e / (RT)) · Δe · 100
//
// Unlike SpeedDistribution, each value folds in the step width Δe: the
// curve approximates per-bin probability mass rather than pointwise
// density. The asymmetry is intentional and pinned by tests — see the
// package doc.
//
// Complexity:
//
//	Time   = O(steps)
//	Memory = O(steps)
//
// Errors:
//   - ErrNonPositiveParameter — tempK or maxEnergy ≤ 0 (or non-finite),
//     or steps < 1.
func EnergyDistribution(tempK, maxEnergy float64, steps int) (Curve, error) {
	if err := requirePositive("tempK", tempK); err != nil {
		return Curve{}, err
	}
	if err := requirePositive("maxEnergy", maxEnergy); err != nil {
		return Curve{}, err
	}
	if steps < minSteps {
		return Curve{}, fmt.Errorf("steps=%d: %w", steps, ErrNonPositiveParameter)
	}

	k := 2 * math.Pi * math.Pow(math.Pi*R*tempK, -threeHalves)
	delta := maxEnergy / float64(steps)

	var xs, ys []float64
	for energy := 0.0; energy < maxEnergy; energy += delta {
		xs = append(xs, energy)
		ys = append(ys, k*math.Sqrt(energy)*math.Exp(-energy/(R*tempK))*delta*percentScale)
	}

	return Curve{X: xs, Y: ys}, nil
}

// SpeedSeries computes one labeled speed curve per Celsius temperature,
// preserving input order. Any invalid parameter aborts the whole call;
// no partial series is returned.
//
// Complexity: O(len(tempsC) · steps) time and memory.
func SpeedSeries(mass float64, tempsC []float64, maxSpeed float64, steps int) ([]TemperatureCurve, error) {
	series := make([]TemperatureCurve, 0, len(tempsC))
	for _, tc := range tempsC {
		curve, err := SpeedDistribution(mass, CelsiusToKelvin(tc), maxSpeed, steps)
		if err != nil {
			return nil, err
		}
		series = append(series, TemperatureCurve{Celsius: tc, Label: tempLabel(tc), Curve: curve})
	}

	return series, nil
}

// EnergySeries computes one labeled energy curve per Celsius temperature,
// preserving input order. All-or-nothing like SpeedSeries.
//
// Complexity: O(len(tempsC) · steps) time and memory.
func EnergySeries(tempsC []float64, maxEnergy float64, steps int) ([]TemperatureCurve, error) {
	series := make([]TemperatureCurve, 0, len(tempsC))
	for _, tc := range tempsC {
		curve, err := EnergyDistribution(CelsiusToKelvin(tc), maxEnergy, steps)
		if err != nil {
			return nil, err
		}
		series = append(series, TemperatureCurve{Celsius: tc, Label: tempLabel(tc), Curve: curve})
	}

	return series, nil
}

// tempLabel renders the legend label for a Celsius temperature.
func tempLabel(tc float64) string {
	return fmt.Sprintf("%g C", tc)
}

// validateSweep bundles the precondition checks shared by mass-bearing sweeps.
func validateSweep(mass, tempK, maximum float64, maxName string, steps int) error {
	if err := requirePositive("mass", mass); err != nil {
		return err
	}
	if err := requirePositive("tempK", tempK); err != nil {
		return err
	}
	if err := requirePositive(maxName, maximum); err != nil {
		return err
	}
	if steps < minSteps {
		return fmt.Errorf("steps=%d: %w", steps, ErrNonPositiveParameter)
	}

	return nil
}

// requirePositive rejects non-positive or non-finite physical parameters.
func requirePositive(name string, v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s=%v: %w", name, v, ErrNonPositiveParameter)
	}

	return nil
}
