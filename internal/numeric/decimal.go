// Package numeric provides the decimal conversion and arithmetic helpers
// shared by every scoring rule. All float-to-decimal conversion in the module
// goes through this package so rounding behaviour stays in one place.
package numeric

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrDomain indicates a transcendental helper was evaluated outside its domain.
var ErrDomain = errors.New("value outside function domain")

var one = decimal.NewFromInt(1)

// FromFloat converts a float64 through its shortest decimal string
// representation, so 0.1 becomes exactly "0.1" rather than the nearest
// representable binary double.
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// FromInt converts an integer exactly.
func FromInt(i int64) decimal.Decimal {
	return decimal.NewFromInt(i)
}

// Parse converts a decimal string literal.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse decimal %q: %w", s, err)
	}
	return d, nil
}

// Inverse returns 1 - p.
func Inverse(p decimal.Decimal) decimal.Decimal {
	return one.Sub(p)
}

// Log2 returns the base-2 logarithm of value. The logarithm is computed in
// float64 and re-quantized through FromFloat, so every rule built on it agrees
// to the same working precision.
func Log2(value decimal.Decimal) (decimal.Decimal, error) {
	if value.Sign() <= 0 {
		return decimal.Decimal{}, fmt.Errorf("log2 of %s: %w", value, ErrDomain)
	}
	f, _ := value.Float64()
	return FromFloat(math.Log2(f)), nil
}

// Pow returns base raised to exponent, computed in float64 and re-quantized.
// Negative bases are rejected because fractional exponents would leave the
// reals.
func Pow(base, exponent decimal.Decimal) (decimal.Decimal, error) {
	if base.Sign() < 0 {
		return decimal.Decimal{}, fmt.Errorf("pow with negative base %s: %w", base, ErrDomain)
	}
	b, _ := base.Float64()
	e, _ := exponent.Float64()
	return FromFloat(math.Pow(b, e)), nil
}
