package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"volgrid/internal/models"
)

// clampCeiling is the upper bound applied to normalized samples. Values
// are clamped down to it but never pushed up toward it; the asymmetry
// keeps the maximum strictly below 1 while leaving the minimum at 0.
const clampCeiling = 0.9999

// Normalize rescales values in place into the range [0, clampCeiling]
// using min-max normalization, destroying the original physical units.
// A constant field normalizes entirely to zero rather than failing.
// Non-finite samples are excluded from the extrema scan but still pass
// through the affine rescale. The extrema observed before normalization
// are returned as a diagnostic.
func Normalize(values []float64) models.Extrema {
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min > max {
		// No finite samples to scan
		min, max = 0, 0
	}

	diff := max - min
	if diff == 0 {
		diff = 1
	}
	floats.AddConst(-min, values)
	for i, v := range values {
		v /= diff
		if v > clampCeiling {
			v = clampCeiling
		}
		values[i] = v
	}
	return models.Extrema{Min: min, Max: max}
}
