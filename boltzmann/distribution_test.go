package boltzmann_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/kinetiq/boltzmann"
)

// formulaTol bounds the drift allowed when a test re-derives a curve value
// from the closed-form expression.
const formulaTol = 1e-12

// TestSpeedDistribution_ReferenceShape pins the canonical water sweep:
// 3000 m/s across 300 steps divides evenly, so exactly 300 points appear,
// starting at 0, strictly increasing, never negative.
func TestSpeedDistribution_ReferenceShape(t *testing.T) {
	curve, err := boltzmann.SpeedDistribution(boltzmann.MassWater, 300, 3000, 300)
	require.NoError(t, err)

	require.Len(t, curve.X, 300, "even division yields exactly `steps` points")
	require.Len(t, curve.Y, len(curve.X), "axes must stay paired")
	assert.Equal(t, 0.0, curve.X[0], "sweep starts at rest")

	for i := range curve.X {
		assert.GreaterOrEqual(t, curve.Y[i], 0.0, "density can never go negative (i=%d)", i)
		if i > 0 {
			assert.Greater(t, curve.X[i], curve.X[i-1], "speed axis must strictly increase (i=%d)", i)
		}
	}
}

// TestSpeedDistribution_PeakNearMostProbable cross-checks the discretized
// curve against the closed form: the argmax must land within one step of
// the most probable speed.
func TestSpeedDistribution_PeakNearMostProbable(t *testing.T) {
	const (
		tempK    = 300.0
		maxSpeed = 3000.0
		steps    = 300
	)
	curve, err := boltzmann.SpeedDistribution(boltzmann.MassWater, tempK, maxSpeed, steps)
	require.NoError(t, err)

	cs, err := boltzmann.Speeds(boltzmann.MassWater, tempK)
	require.NoError(t, err)

	peak := curve.X[floats.MaxIdx(curve.Y)]
	assert.InDelta(t, cs.MostProbable, peak, maxSpeed/steps,
		"discretized peak must sit within one step of √(2RT/m)")
}

// TestDistribution_StepWidthAsymmetry pins the deliberate formula split:
// the energy value folds in Δe (per-bin mass), the speed value does not
// (pointwise density). Both carry the ×100 display scale.
func TestDistribution_StepWidthAsymmetry(t *testing.T) {
	const (
		tempK = 300.0
		maxV  = 3000.0
		maxE  = 25000.0
		steps = 300
	)
	mass := boltzmann.MassWater

	speed, err := boltzmann.SpeedDistribution(mass, tempK, maxV, steps)
	require.NoError(t, err)
	energy, err := boltzmann.EnergyDistribution(tempK, maxE, steps)
	require.NoError(t, err)

	kv := 4 * math.Pi * math.Pow(mass/(2*math.Pi*boltzmann.R*tempK), 1.5)
	for _, i := range []int{1, 50, 150, 299} {
		v := speed.X[i]
		want := kv * v * v * math.Exp(-mass*v*v/(2*boltzmann.R*tempK)) * 100
		assert.InDelta(t, want, speed.Y[i], formulaTol, "speed value has no Δv factor (i=%d)", i)
	}

	ke := 2 * math.Pi * math.Pow(math.Pi*boltzmann.R*tempK, -1.5)
	deltaE := maxE / float64(steps)
	for _, i := range []int{1, 50, 150, 299} {
		e := energy.X[i]
		want := ke * math.Sqrt(e) * math.Exp(-e/(boltzmann.R*tempK)) * deltaE * 100
		assert.InDelta(t, want, energy.Y[i], formulaTol, "energy value folds in Δe (i=%d)", i)
	}
}

// TestEnergyDistribution_Shape verifies non-negativity and a strictly
// increasing axis; the point count is ⌈maxEnergy/Δe⌉ under float
// accumulation, so only the bound is asserted, not an exact figure.
func TestEnergyDistribution_Shape(t *testing.T) {
	curve, err := boltzmann.EnergyDistribution(300, boltzmann.DefaultMaxEnergy, boltzmann.DefaultSteps)
	require.NoError(t, err)

	require.Equal(t, len(curve.X), len(curve.Y))
	require.NotEmpty(t, curve.X)
	assert.Equal(t, 0.0, curve.X[0])
	assert.Less(t, curve.X[len(curve.X)-1], float64(boltzmann.DefaultMaxEnergy),
		"sweep stops strictly below the maximum")

	for i := range curve.X {
		assert.GreaterOrEqual(t, curve.Y[i], 0.0, "energy density can never go negative (i=%d)", i)
		if i > 0 {
			assert.Greater(t, curve.X[i], curve.X[i-1], "energy axis must strictly increase (i=%d)", i)
		}
	}
}

// TestSpeedDistribution_RejectsNonPositive walks the precondition matrix.
func TestSpeedDistribution_RejectsNonPositive(t *testing.T) {
	cases := []struct {
		name     string
		mass     float64
		tempK    float64
		maxSpeed float64
		steps    int
	}{
		{"zero mass", 0, 300, 3000, 300},
		{"negative mass", -1, 300, 3000, 300},
		{"zero temperature", boltzmann.MassAir, 0, 3000, 300},
		{"negative temperature", boltzmann.MassAir, -10, 3000, 300},
		{"NaN temperature", boltzmann.MassAir, math.NaN(), 3000, 300},
		{"zero max speed", boltzmann.MassAir, 300, 0, 300},
		{"zero steps", boltzmann.MassAir, 300, 3000, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := boltzmann.SpeedDistribution(tc.mass, tc.tempK, tc.maxSpeed, tc.steps)
			assert.ErrorIs(t, err, boltzmann.ErrNonPositiveParameter)
		})
	}
}

// TestEnergyDistribution_RejectsNonPositive covers the energy preconditions.
func TestEnergyDistribution_RejectsNonPositive(t *testing.T) {
	_, err := boltzmann.EnergyDistribution(0, 25000, 300)
	assert.ErrorIs(t, err, boltzmann.ErrNonPositiveParameter, "temperature must be positive")

	_, err = boltzmann.EnergyDistribution(300, -1, 300)
	assert.ErrorIs(t, err, boltzmann.ErrNonPositiveParameter, "maximum must be positive")

	_, err = boltzmann.EnergyDistribution(300, 25000, -5)
	assert.ErrorIs(t, err, boltzmann.ErrNonPositiveParameter, "steps must be at least 1")
}

// TestSpeedSeries_OrderAndLabels verifies one labeled curve per requested
// temperature, in the requested order.
func TestSpeedSeries_OrderAndLabels(t *testing.T) {
	temps := []float64{100, -10, 25}

	series, err := boltzmann.SpeedSeries(boltzmann.MassAir, temps, 3000, 300)
	require.NoError(t, err)
	require.Len(t, series, len(temps))

	wantLabels := []string{"100 C", "-10 C", "25 C"}
	for i, tc := range series {
		assert.Equal(t, temps[i], tc.Celsius, "input order must be preserved")
		assert.Equal(t, wantLabels[i], tc.Label)
		assert.NotEmpty(t, tc.Curve.X, "each temperature yields a non-empty curve")
	}
}

// TestEnergySeries_AllOrNothing verifies a single bad temperature aborts
// the whole series with no partial result.
func TestEnergySeries_AllOrNothing(t *testing.T) {
	series, err := boltzmann.EnergySeries([]float64{25, -300}, 25000, 300)
	assert.ErrorIs(t, err, boltzmann.ErrNonPositiveParameter, "-300°C is below absolute zero")
	assert.Nil(t, series, "no partial series on failure")
}
