package rules

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/prediction-scorer/internal/numeric"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertApproximately(t *testing.T, expected string, actual decimal.Decimal, tolerance float64) {
	t.Helper()
	delta, _ := actual.Sub(d(expected)).Abs().Float64()
	assert.Less(t, delta, tolerance, "expected %s, got %s", expected, actual)
}

func TestBrier(t *testing.T) {
	cases := []struct {
		probability string
		expected    string
	}{
		{"0", "2"},
		{"0.20", "1.28"},
		{"0.50", "0.5"},
		{"0.80", "0.08"},
		{"1", "0"},
	}
	for _, tc := range cases {
		score, err := Brier(d(tc.probability))
		require.NoError(t, err)
		assert.True(t, score.Equal(d(tc.expected)), "brier(%s) = %s, want %s", tc.probability, score, tc.expected)
	}
}

func TestBrierDomain(t *testing.T) {
	_, err := Brier(d("-0.01"))
	require.ErrorIs(t, err, ErrInvalidProbability)
	assert.Contains(t, err.Error(), "less than zero")

	_, err = Brier(d("1.01"))
	require.ErrorIs(t, err, ErrInvalidProbability)
	assert.Contains(t, err.Error(), "greater than one")
}

func TestQuadratic(t *testing.T) {
	cases := []struct {
		probability string
		expected    string
	}{
		{"0", "-1"},
		{"0.20", "-0.28"},
		{"0.50", "0.5"},
		{"0.80", "0.92"},
		{"1", "1"},
	}
	for _, tc := range cases {
		score, err := Quadratic(d(tc.probability))
		require.NoError(t, err)
		assert.True(t, score.Equal(d(tc.expected)), "quadratic(%s) = %s, want %s", tc.probability, score, tc.expected)
	}
}

func TestQuadraticDomain(t *testing.T) {
	_, err := Quadratic(d("1.5"))
	assert.ErrorIs(t, err, ErrInvalidProbability)
}

func TestLogarithmic(t *testing.T) {
	score, err := Logarithmic(d("0.50"))
	require.NoError(t, err)
	assert.True(t, score.Equal(d("1")))

	score, err = Logarithmic(d("1"))
	require.NoError(t, err)
	assert.True(t, score.IsZero())

	score, err = Logarithmic(d("0.20"))
	require.NoError(t, err)
	assertApproximately(t, "2.321928094887362", score, 1e-9)

	score, err = Logarithmic(d("0.80"))
	require.NoError(t, err)
	assertApproximately(t, "0.321928094887362", score, 1e-9)
}

func TestLogarithmicUndefinedAtZero(t *testing.T) {
	_, err := Logarithmic(decimal.Zero)
	assert.ErrorIs(t, err, ErrUndefinedScore)
}

func TestPractical(t *testing.T) {
	score, err := Practical(d("0.50"), DefaultMaxProbability, DefaultMaxScore)
	require.NoError(t, err)
	assert.True(t, score.IsZero(), "practical(0.5) = %s, want 0", score)

	score, err = Practical(d("0.20"), DefaultMaxProbability, DefaultMaxScore)
	require.NoError(t, err)
	assertApproximately(t, "-2.644", score, 1e-3)

	score, err = Practical(d("0.80"), DefaultMaxProbability, DefaultMaxScore)
	require.NoError(t, err)
	assertApproximately(t, "1.356", score, 1e-3)

	score, err = Practical(d("0.9999"), DefaultMaxProbability, DefaultMaxScore)
	require.NoError(t, err)
	assertApproximately(t, "2", score, 1e-2)
}

func TestPracticalMonotonicAndBounded(t *testing.T) {
	previous := decimal.NewFromInt(-1000)
	for p := 1; p <= 99; p++ {
		probability := decimal.NewFromInt(int64(p)).Div(decimal.NewFromInt(100))
		score, err := Practical(probability, DefaultMaxProbability, DefaultMaxScore)
		require.NoError(t, err)
		assert.True(t, score.GreaterThanOrEqual(previous), "practical must be non-decreasing, %s < %s at p=%d%%", score, previous, p)
		assert.True(t, score.LessThanOrEqual(DefaultMaxScore))
		previous = score
	}
}

func TestPracticalParameterValidation(t *testing.T) {
	_, err := Practical(decimal.Zero, DefaultMaxProbability, DefaultMaxScore)
	assert.ErrorIs(t, err, ErrUndefinedScore)

	_, err = Practical(d("0.5"), decimal.Zero, DefaultMaxScore)
	assert.ErrorIs(t, err, ErrInvalidPracticalParameters)

	_, err = Practical(d("0.5"), d("1.5"), DefaultMaxScore)
	assert.ErrorIs(t, err, ErrInvalidPracticalParameters)

	_, err = Practical(d("0.5"), DefaultMaxProbability, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidPracticalParameters)

	_, err = Practical(d("0.9999"), d("0.99"), DefaultMaxScore)
	assert.ErrorIs(t, err, ErrInvalidPracticalParameters)
}

func TestPracticalSharesLog2WithLogarithmic(t *testing.T) {
	// practical = maxScore * (log2(p) + 1) / log2(maxProbability + 1), and
	// log2(p) = -logarithmic(p); both must agree to the working precision.
	probability := d("0.37")
	logarithmic, err := Logarithmic(probability)
	require.NoError(t, err)
	practical, err := Practical(probability, DefaultMaxProbability, DefaultMaxScore)
	require.NoError(t, err)

	logMax, err := numeric.Log2(DefaultMaxProbability.Add(one))
	require.NoError(t, err)
	reconstructed := DefaultMaxScore.Mul(logarithmic.Neg().Add(decimal.NewFromInt(1))).Div(logMax)
	delta, _ := practical.Sub(reconstructed).Abs().Float64()
	assert.Less(t, delta, 1e-12)
}
