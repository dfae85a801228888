// Package scoring provides the Prediction aggregate: an immutable set of
// probabilities over two or more alternatives, one of which is true, with
// memoized scoring-rule values.
//
// Prediction keeps percent-scaled probabilities that must sum to exactly 100;
// it divides by 100 at the boundary to the unit-scaled rules package.
package scoring

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/yourusername/prediction-scorer/internal/rules"
)

var (
	one        = decimal.NewFromInt(1)
	oneHundred = decimal.NewFromInt(100)
)

// Prediction holds probabilities for the alternatives of one question and
// identifies which alternative turned out to be true. Once constructed it
// never changes; score accessors compute on first use and cache forever.
type Prediction struct {
	probabilities        []decimal.Decimal
	trueAlternativeIndex int
	orderMatters         bool

	brier       scoreCell
	quadratic   scoreCell
	logarithmic scoreCell
	practical   scoreCell
}

// NewPrediction validates and builds a Prediction. Probabilities are
// percent-scaled and must sum to exactly 100. When orderMatters is true the
// Brier score uses the ordered pairwise decomposition instead of the flat
// multiclass formula.
func NewPrediction(probabilities []decimal.Decimal, trueAlternativeIndex int, orderMatters bool) (*Prediction, error) {
	length := len(probabilities)
	if length < 2 {
		return nil, fmt.Errorf("a prediction needs at least two probabilities, got %d: %w", length, ErrInvalidPredictionShape)
	}
	sum := decimal.Sum(probabilities[0], probabilities[1:]...)
	if !sum.Equal(oneHundred) {
		return nil, fmt.Errorf("probabilities need to sum to 100, got %s: %w", sum, ErrInvalidPredictionShape)
	}
	if trueAlternativeIndex > length-1 {
		return nil, fmt.Errorf("probabilities need to contain the true alternative, index %d exceeds %d: %w", trueAlternativeIndex, length-1, ErrInvalidPredictionShape)
	}
	if trueAlternativeIndex < 0 {
		return nil, fmt.Errorf("the true alternative index cannot be negative, got %d: %w", trueAlternativeIndex, ErrInvalidPredictionShape)
	}
	for i, probability := range probabilities {
		if probability.Sign() < 0 || probability.GreaterThan(oneHundred) {
			return nil, fmt.Errorf("probability %s at index %d is outside [0, 100]: %w", probability, i, ErrInvalidPredictionShape)
		}
	}

	owned := make([]decimal.Decimal, length)
	copy(owned, probabilities)
	return &Prediction{
		probabilities:        owned,
		trueAlternativeIndex: trueAlternativeIndex,
		orderMatters:         orderMatters,
	}, nil
}

// Probabilities returns a copy of the percent-scaled probabilities.
func (p *Prediction) Probabilities() []decimal.Decimal {
	out := make([]decimal.Decimal, len(p.probabilities))
	copy(out, p.probabilities)
	return out
}

// TrueAlternativeIndex returns the index of the alternative that came true.
func (p *Prediction) TrueAlternativeIndex() int {
	return p.trueAlternativeIndex
}

// OrderMatters reports whether the ordered pairwise decomposition is used.
func (p *Prediction) OrderMatters() bool {
	return p.orderMatters
}

// BrierScore returns the prediction's Brier score: the flat multiclass sum of
// squared errors, or the mean of the ordered pairwise decomposition when order
// matters. Computed once and cached.
func (p *Prediction) BrierScore() decimal.Decimal {
	score, _ := p.brier.get(func() (decimal.Decimal, error) {
		if p.orderMatters {
			return p.orderedBrier(), nil
		}
		return flatBrier(p.probabilities, p.trueAlternativeIndex), nil
	})
	return score
}

// QuadraticScore returns the quadratic score of the probability assigned to
// the true alternative.
func (p *Prediction) QuadraticScore() decimal.Decimal {
	score, _ := p.quadratic.get(func() (decimal.Decimal, error) {
		return rules.Quadratic(p.trueProbability())
	})
	return score
}

// LogarithmicScore returns the logarithmic score of the probability assigned
// to the true alternative. It fails when that probability is zero.
func (p *Prediction) LogarithmicScore() (decimal.Decimal, error) {
	return p.logarithmic.get(func() (decimal.Decimal, error) {
		return rules.Logarithmic(p.trueProbability())
	})
}

// PracticalScore returns the practical score of the probability assigned to
// the true alternative, using the package default parameterization. It fails
// when that probability is zero or exceeds the default maximum.
func (p *Prediction) PracticalScore() (decimal.Decimal, error) {
	return p.practical.get(func() (decimal.Decimal, error) {
		return rules.Practical(p.trueProbability(), rules.DefaultMaxProbability, rules.DefaultMaxScore)
	})
}

func (p *Prediction) trueProbability() decimal.Decimal {
	return p.probabilities[p.trueAlternativeIndex].Div(oneHundred)
}

// flatBrier is the multiclass Brier formula: the sum over alternatives of
// (p_i/100 - 1{i = trueIndex})^2.
func flatBrier(probabilities []decimal.Decimal, trueIndex int) decimal.Decimal {
	score := decimal.Zero
	for i, probability := range probabilities {
		term := probability.Div(oneHundred)
		if i == trueIndex {
			term = term.Sub(one)
		}
		score = score.Add(term.Mul(term))
	}
	return score
}

// orderedBrier splits the n alternatives into n-1 nested binary predictions
// and averages their flat Brier scores. Split k groups alternatives [0..k]
// against [k+1..n-1]; once the split point has passed the true alternative the
// whole truth sits in the first group, so the binary true index flips to 0.
func (p *Prediction) orderedBrier() decimal.Decimal {
	pairCount := len(p.probabilities) - 1
	total := decimal.Zero
	for split := 0; split < pairCount; split++ {
		lower := decimal.Sum(p.probabilities[0], p.probabilities[1:split+1]...)
		upper := decimal.Sum(p.probabilities[split+1], p.probabilities[split+2:]...)
		trueIndex := 1
		if split > p.trueAlternativeIndex {
			trueIndex = 0
		}
		total = total.Add(flatBrier([]decimal.Decimal{lower, upper}, trueIndex))
	}
	return total.Div(decimal.NewFromInt(int64(pairCount)))
}
