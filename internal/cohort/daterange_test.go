package cohort

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/prediction-scorer/internal/scoring"
)

func mustPrediction(t *testing.T, forecasterID string, createdAt time.Time, probabilities []string, trueIndex int) *scoring.AttributedPrediction {
	t.Helper()
	values := make([]decimal.Decimal, len(probabilities))
	for i, p := range probabilities {
		values[i] = decimal.RequireFromString(p)
	}
	prediction, err := scoring.NewAttributedPrediction(values, trueIndex, false, createdAt, forecasterID, uuid.Nil)
	require.NoError(t, err)
	return prediction
}

func at(day int, hour int) time.Time {
	return time.Date(2019, 7, day, hour, 0, 0, 0, time.UTC)
}

func onDate(day int) time.Time {
	return time.Date(2019, 7, day, 0, 0, 0, 0, time.UTC)
}

func TestGenerateDateRange(t *testing.T) {
	predictions := []*scoring.AttributedPrediction{
		mustPrediction(t, "george", at(4, 10), []string{"60", "40"}, 1),
		mustPrediction(t, "kramer", at(1, 9), []string{"70", "30"}, 0),
	}

	dates := GenerateDateRange(predictions)
	require.Len(t, dates, 4)
	assert.Equal(t, onDate(1), dates[0])
	assert.Equal(t, onDate(2), dates[1])
	assert.Equal(t, onDate(3), dates[2])
	assert.Equal(t, onDate(4), dates[3])
}

func TestGenerateDateRangeEmpty(t *testing.T) {
	assert.Nil(t, GenerateDateRange(nil))
}

func TestGenerateDateRangeSingleDay(t *testing.T) {
	predictions := []*scoring.AttributedPrediction{
		mustPrediction(t, "george", at(2, 10), []string{"60", "40"}, 1),
		mustPrediction(t, "kramer", at(2, 12), []string{"70", "30"}, 0),
	}
	dates := GenerateDateRange(predictions)
	require.Len(t, dates, 1)
	assert.Equal(t, onDate(2), dates[0])
}

func TestEliminateOverwritten(t *testing.T) {
	morning := mustPrediction(t, "george", at(1, 9), []string{"70", "30"}, 1)
	noon := mustPrediction(t, "george", at(1, 12), []string{"60", "40"}, 1)
	evening := mustPrediction(t, "george", at(1, 18), []string{"50", "50"}, 1)
	nextDay := mustPrediction(t, "george", at(2, 9), []string{"40", "60"}, 1)
	other := mustPrediction(t, "kramer", at(1, 9), []string{"30", "70"}, 1)

	kept := EliminateOverwritten([]*scoring.AttributedPrediction{morning, noon, evening, nextDay, other})
	require.Len(t, kept, 3)

	// Same-day same-forecaster duplicates collapse to the latest timestamp;
	// other days and other forecasters are untouched.
	assert.Contains(t, kept, evening)
	assert.Contains(t, kept, nextDay)
	assert.Contains(t, kept, other)
	assert.NotContains(t, kept, morning)
	assert.NotContains(t, kept, noon)
}

func TestEliminateOverwrittenIsDeterministic(t *testing.T) {
	predictions := []*scoring.AttributedPrediction{
		mustPrediction(t, "kramer", at(1, 9), []string{"30", "70"}, 1),
		mustPrediction(t, "george", at(1, 9), []string{"70", "30"}, 1),
		mustPrediction(t, "george", at(2, 9), []string{"60", "40"}, 1),
	}

	first := EliminateOverwritten(predictions)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, EliminateOverwritten(predictions))
	}

	// Sorted by timestamp, forecaster id breaking ties.
	assert.Equal(t, "george", first[0].ForecasterID())
	assert.Equal(t, "kramer", first[1].ForecasterID())
	assert.Equal(t, onDate(2), first[2].CreatedOn())
}
