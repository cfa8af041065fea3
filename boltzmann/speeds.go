package boltzmann

import "math"

// CharacteristicSpeeds bundles the three classical velocities derived from
// the Maxwell–Boltzmann speed distribution. The physical ordering
// MostProbable < Mean < RMS holds for every valid gas and temperature.
type CharacteristicSpeeds struct {
	MostProbable float64 // √(2RT/m), the distribution peak [m/s]
	Mean         float64 // √(8RT/(πm)), the expected speed [m/s]
	RMS          float64 // √(3RT/m), root-mean-square speed [m/s]
}

// Speeds computes the characteristic speeds for a gas of molar mass `mass`
// [kg/mol] at absolute temperature tempK [K], using the closed forms:
//
//	most probable = √(2RT/m)
//	mean          = √(8RT/(πm))
//	rms           = √(3RT/m)
//
// Complexity: O(1) time, O(1) space.
//
// Errors:
//   - ErrNonPositiveParameter — mass or tempK ≤ 0 (or non-finite).
func Speeds(mass, tempK float64) (CharacteristicSpeeds, error) {
	if err := requirePositive("mass", mass); err != nil {
		return CharacteristicSpeeds{}, err
	}
	if err := requirePositive("tempK", tempK); err != nil {
		return CharacteristicSpeeds{}, err
	}

	// Shared factor RT/m of all three closed forms.
	factor := R * tempK / mass

	return CharacteristicSpeeds{
		MostProbable: math.Sqrt(2 * factor),
		Mean:         math.Sqrt(8 * factor / math.Pi),
		RMS:          math.Sqrt(3 * factor),
	}, nil
}
