package common

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ModSigned returns aa modulo bb in the range [0, bb) for positive bb.
// Unlike the % operator the result is never negative for a negative dividend.
// The divisor is not validated, zero bb panics like % does.
func ModSigned[T constraints.Signed](aa, bb T) T {
	if aa >= 0 {
		return aa % bb
	}
	if r := -aa % bb; r != 0 {
		return bb - r
	}
	return 0
}

// ModInt is ModSigned for int.
func ModInt(aa, bb int) int {
	return ModSigned(aa, bb)
}

// ModFloat64 returns aa modulo bb in the range [0, bb) for positive bb.
// Zero bb yields NaN, see math.Mod.
func ModFloat64(aa, bb float64) float64 {
	if aa >= 0 {
		return math.Mod(aa, bb)
	}
	if r := math.Mod(-aa, bb); r != 0 {
		return bb - r
	}
	return 0
}

// Checked ModInt, fails on non-positive divisor.
func CheckedModInt(aa, bb int) (int, error) {
	if bb <= 0 {
		return 0, errors.Wrapf(ErrNonPositiveDivisor, "mod(%d, %d)", aa, bb)
	}
	return ModInt(aa, bb), nil
}

// Checked ModFloat64, fails on non-positive or NaN divisor.
func CheckedModFloat64(aa, bb float64) (float64, error) {
	if !(bb > 0) {
		return 0, errors.Wrapf(ErrNonPositiveDivisor, "mod(%g, %g)", aa, bb)
	}
	return ModFloat64(aa, bb), nil
}
