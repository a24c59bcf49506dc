package simulation

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds x to the given number of decimal places, half away from zero.
//
// Rounding operates on the shortest decimal representation of x rather than
// on its exact binary value, so 1.005 rounds to 1.01 even though the nearest
// float64 is slightly below 1.005. x must be finite.
func Round(x float64, places int32) float64 {
	rounded, _ := decimal.NewFromFloat(x).Round(places).Float64()
	return rounded
}

// checkFinite returns ErrInvalidInput if any value is NaN or infinite.
// Overflowing exponents and negative bases raised to fractional powers end up
// here instead of leaking NaN into JSON output.
func checkFinite(values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: result is not a finite number", ErrInvalidInput)
		}
	}
	return nil
}
