// Package rules implements the scoring-rule formulas that grade a single
// probability assigned to the true outcome. Probabilities are unit-scaled:
// the valid domain is the closed interval [0, 1].
package rules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yourusername/prediction-scorer/internal/numeric"
)

var (
	one = decimal.NewFromInt(1)
	two = decimal.NewFromInt(2)

	// DefaultMaxProbability is the highest probability the practical score
	// accepts unless the caller overrides it.
	DefaultMaxProbability = decimal.RequireFromString("0.9999")

	// DefaultMaxScore is the practical score awarded at DefaultMaxProbability.
	DefaultMaxScore = two
)

// Brier returns 2 * (1 - p)^2. The worst possible score is 2, the best is 0.
func Brier(probability decimal.Decimal) (decimal.Decimal, error) {
	if err := validateProbability(probability); err != nil {
		return decimal.Decimal{}, err
	}
	inverse := numeric.Inverse(probability)
	return two.Mul(inverse.Mul(inverse)), nil
}

// Quadratic returns p * (2 - p) - (1 - p)^2. The worst possible score is -1,
// the best is 1.
func Quadratic(probability decimal.Decimal) (decimal.Decimal, error) {
	if err := validateProbability(probability); err != nil {
		return decimal.Decimal{}, err
	}
	inverse := numeric.Inverse(probability)
	return probability.Mul(two.Sub(probability)).Sub(inverse.Mul(inverse)), nil
}

// Logarithmic returns -log2(p). It approaches infinity as p approaches zero;
// the best possible score is 0.
func Logarithmic(probability decimal.Decimal) (decimal.Decimal, error) {
	if err := validateProbability(probability); err != nil {
		return decimal.Decimal{}, err
	}
	if probability.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("logarithmic score at probability zero, the logarithm of zero is not defined: %w", ErrUndefinedScore)
	}
	log, err := numeric.Log2(probability)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return log.Neg(), nil
}

// Practical returns maxScore * (log2(p) + 1) / log2(maxProbability + 1),
// clamped to maxScore. It is a bounded rescaling of the logarithmic score for
// human-readable reporting; it approaches negative infinity as p approaches
// zero and maxScore is the best possible result.
func Practical(probability, maxProbability, maxScore decimal.Decimal) (decimal.Decimal, error) {
	if err := validateProbability(probability); err != nil {
		return decimal.Decimal{}, err
	}
	if maxProbability.Sign() <= 0 || maxProbability.GreaterThan(one) {
		return decimal.Decimal{}, fmt.Errorf("max probability %s must be greater than zero and at most one: %w", maxProbability, ErrInvalidPracticalParameters)
	}
	if maxScore.Sign() <= 0 {
		return decimal.Decimal{}, fmt.Errorf("max score %s must be greater than zero: %w", maxScore, ErrInvalidPracticalParameters)
	}
	if probability.GreaterThan(maxProbability) {
		return decimal.Decimal{}, fmt.Errorf("probability %s cannot be greater than max probability %s: %w", probability, maxProbability, ErrInvalidPracticalParameters)
	}
	if probability.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("practical score at probability zero, the logarithm of zero is not defined: %w", ErrUndefinedScore)
	}
	logProbability, err := numeric.Log2(probability)
	if err != nil {
		return decimal.Decimal{}, err
	}
	logMax, err := numeric.Log2(maxProbability.Add(one))
	if err != nil {
		return decimal.Decimal{}, err
	}
	score := maxScore.Mul(logProbability.Add(one)).Div(logMax)
	if score.GreaterThan(maxScore) {
		return maxScore, nil
	}
	return score, nil
}

func validateProbability(probability decimal.Decimal) error {
	if probability.Sign() < 0 {
		return fmt.Errorf("probability %s is less than zero, where zero already expresses absolute certainty of the false outcome: %w", probability, ErrInvalidProbability)
	}
	if probability.GreaterThan(one) {
		return fmt.Errorf("probability %s is greater than one, where one already expresses absolute certainty of the true outcome: %w", probability, ErrInvalidProbability)
	}
	return nil
}
