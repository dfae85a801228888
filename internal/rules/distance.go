package rules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yourusername/prediction-scorer/internal/numeric"
)

// DefaultDistancePenalty is awarded when the outcome falls outside the
// claimed interval.
var DefaultDistancePenalty = decimal.RequireFromString("-20.5")

// DefaultDistanceExponent controls how sharply the score decays with distance
// from the interval's center. The normalized distance is raised to
// 1/exponent, so the default squares it.
var DefaultDistanceExponent = decimal.RequireFromString("0.5")

// DistanceOptions parameterize the Distance rule. Zero-value fields are
// replaced by the package defaults, so DistanceOptions{} selects the
// documented behaviour.
type DistanceOptions struct {
	MaxScore decimal.Decimal
	Penalty  decimal.Decimal
	Exponent decimal.Decimal
}

// DefaultDistanceOptions returns the documented default parameterization.
func DefaultDistanceOptions() DistanceOptions {
	return DistanceOptions{
		MaxScore: DefaultMaxScore,
		Penalty:  DefaultDistancePenalty,
		Exponent: DefaultDistanceExponent,
	}
}

// Distance scores an observed outcome against a claimed [low, high] interval.
// Outcomes outside the interval receive the fixed penalty. Inside it the score
// is maxScore * (1 - nd^(1/exponent)) / (width + 1), where nd is the outcome's
// distance from the interval center normalized by the half-width, so narrower
// intervals earn more and centered outcomes earn the most. A zero-width
// interval is rejected as ill-posed.
func Distance(outcome, low, high decimal.Decimal, opts DistanceOptions) (decimal.Decimal, error) {
	if low.Equal(high) {
		return decimal.Decimal{}, fmt.Errorf("interval [%s, %s] has zero width, a perfect interval is ill-posed: %w", low, high, ErrDegenerateInterval)
	}
	if low.GreaterThan(high) {
		return decimal.Decimal{}, fmt.Errorf("interval bounds [%s, %s] are reversed: %w", low, high, ErrDegenerateInterval)
	}
	opts = opts.withDefaults()
	if opts.Exponent.Sign() <= 0 {
		return decimal.Decimal{}, fmt.Errorf("exponent %s must be greater than zero: %w", opts.Exponent, ErrInvalidDistanceParameters)
	}
	if opts.MaxScore.Sign() <= 0 {
		return decimal.Decimal{}, fmt.Errorf("max score %s must be greater than zero: %w", opts.MaxScore, ErrInvalidDistanceParameters)
	}
	if outcome.LessThan(low) || outcome.GreaterThan(high) {
		return opts.Penalty, nil
	}

	width := high.Sub(low)
	center := low.Add(high).Div(two)
	halfWidth := width.Div(two)
	normalized := outcome.Sub(center).Abs().Div(halfWidth)
	decay, err := numeric.Pow(normalized, one.Div(opts.Exponent))
	if err != nil {
		return decimal.Decimal{}, err
	}
	return opts.MaxScore.Mul(one.Sub(decay)).Div(width.Add(one)), nil
}

func (o DistanceOptions) withDefaults() DistanceOptions {
	if o.MaxScore.IsZero() {
		o.MaxScore = DefaultMaxScore
	}
	if o.Penalty.IsZero() {
		o.Penalty = DefaultDistancePenalty
	}
	if o.Exponent.IsZero() {
		o.Exponent = DefaultDistanceExponent
	}
	return o
}
