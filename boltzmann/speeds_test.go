package boltzmann_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kinetiq/boltzmann"
)

// TestSpeeds_PhysicalOrdering verifies most probable < mean < RMS across
// gases and temperatures — the fixed ordering of the three closed forms.
func TestSpeeds_PhysicalOrdering(t *testing.T) {
	masses := []float64{
		boltzmann.MassHydrogen,
		boltzmann.MassOxygen,
		boltzmann.MassAir,
		boltzmann.MassWater,
	}
	for _, mass := range masses {
		for _, tempK := range []float64{1, 73, 300, 5000} {
			cs, err := boltzmann.Speeds(mass, tempK)
			require.NoError(t, err, "mass=%v tempK=%v", mass, tempK)

			assert.Less(t, cs.MostProbable, cs.Mean, "mass=%v tempK=%v", mass, tempK)
			assert.Less(t, cs.Mean, cs.RMS, "mass=%v tempK=%v", mass, tempK)
		}
	}
}

// TestSpeeds_ClosedForms re-derives the three formulas for water at 300 K.
func TestSpeeds_ClosedForms(t *testing.T) {
	const tempK = 300.0
	cs, err := boltzmann.Speeds(boltzmann.MassWater, tempK)
	require.NoError(t, err)

	factor := boltzmann.R * tempK / boltzmann.MassWater
	assert.Equal(t, math.Sqrt(2*factor), cs.MostProbable)
	assert.Equal(t, math.Sqrt(8*factor/math.Pi), cs.Mean)
	assert.Equal(t, math.Sqrt(3*factor), cs.RMS)
}

// TestSpeeds_RejectsNonPositive walks the precondition checks.
func TestSpeeds_RejectsNonPositive(t *testing.T) {
	_, err := boltzmann.Speeds(0, 300)
	assert.ErrorIs(t, err, boltzmann.ErrNonPositiveParameter, "zero mass")

	_, err = boltzmann.Speeds(boltzmann.MassAir, 0)
	assert.ErrorIs(t, err, boltzmann.ErrNonPositiveParameter, "zero temperature")

	_, err = boltzmann.Speeds(boltzmann.MassAir, math.Inf(1))
	assert.ErrorIs(t, err, boltzmann.ErrNonPositiveParameter, "infinite temperature")
}
