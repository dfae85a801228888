package numeric

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFloatUsesStringRepresentation(t *testing.T) {
	// 0.1 has no exact binary representation; conversion must go through the
	// shortest decimal string, not the raw double.
	assert.Equal(t, "0.1", FromFloat(0.1).String())
	assert.Equal(t, "0.3", FromFloat(0.3).String())
	assert.Equal(t, "0.9999", FromFloat(0.9999).String())
}

func TestFromInt(t *testing.T) {
	assert.True(t, FromInt(100).Equal(decimal.RequireFromString("100")))
	assert.True(t, FromInt(-3).Equal(decimal.RequireFromString("-3")))
}

func TestParse(t *testing.T) {
	d, err := Parse("25.01")
	require.NoError(t, err)
	assert.Equal(t, "25.01", d.String())

	_, err = Parse("not-a-number")
	assert.Error(t, err)
}

func TestInverse(t *testing.T) {
	assert.True(t, Inverse(decimal.RequireFromString("0.3")).Equal(decimal.RequireFromString("0.7")))
	assert.True(t, Inverse(decimal.NewFromInt(1)).IsZero())
}

func TestLog2(t *testing.T) {
	log, err := Log2(decimal.NewFromInt(8))
	require.NoError(t, err)
	assert.True(t, log.Equal(decimal.NewFromInt(3)))

	log, err = Log2(decimal.RequireFromString("0.5"))
	require.NoError(t, err)
	assert.True(t, log.Equal(decimal.NewFromInt(-1)))

	log, err = Log2(decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.True(t, log.IsZero())
}

func TestLog2Domain(t *testing.T) {
	_, err := Log2(decimal.Zero)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = Log2(decimal.NewFromInt(-2))
	assert.ErrorIs(t, err, ErrDomain)
}

func TestPow(t *testing.T) {
	result, err := Pow(decimal.NewFromInt(2), decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.True(t, result.Equal(decimal.NewFromInt(8)))

	result, err = Pow(decimal.NewFromInt(9), decimal.RequireFromString("0.5"))
	require.NoError(t, err)
	assert.True(t, result.Equal(decimal.NewFromInt(3)))

	result, err = Pow(decimal.RequireFromString("0.2"), decimal.NewFromInt(2))
	require.NoError(t, err)
	delta, _ := result.Sub(decimal.RequireFromString("0.04")).Abs().Float64()
	assert.Less(t, delta, 1e-9)
}

func TestPowNegativeBase(t *testing.T) {
	_, err := Pow(decimal.NewFromInt(-2), decimal.RequireFromString("0.5"))
	assert.ErrorIs(t, err, ErrDomain)
}
