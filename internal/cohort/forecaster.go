package cohort

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yourusername/prediction-scorer/internal/numeric"
	"github.com/yourusername/prediction-scorer/internal/scoring"
)

// Forecaster is one author's view of a question: the predictions they posted
// within the window and the accuracy metrics derived from them.
type Forecaster struct {
	id          string
	question    *Question
	predictions []*scoring.AttributedPrediction // ascending by timestamp
}

// ID returns the forecaster's identifier.
func (f *Forecaster) ID() string {
	return f.id
}

// Predictions returns the forecaster's deduplicated predictions, ascending by
// timestamp.
func (f *Forecaster) Predictions() []*scoring.AttributedPrediction {
	out := make([]*scoring.AttributedPrediction, len(f.predictions))
	copy(out, f.predictions)
	return out
}

// FirstPredictionDate returns the date of the forecaster's earliest
// prediction. The second return is false when the forecaster has none.
func (f *Forecaster) FirstPredictionDate() (time.Time, bool) {
	if len(f.predictions) == 0 {
		return time.Time{}, false
	}
	return f.predictions[0].CreatedOn(), true
}

// NumberOfDaysWithActivePrediction counts the days from the forecaster's first
// submission through the window's last date, inclusive. Once posted, a
// prediction stays active until replaced, so every later day counts.
func (f *Forecaster) NumberOfDaysWithActivePrediction() int {
	firstPrediction, ok := f.FirstPredictionDate()
	if !ok || firstPrediction.After(f.question.lastDate) {
		return 0
	}
	return daysBetween(firstPrediction, f.question.lastDate) + 1
}

// AverageDailyBrierScore walks every day of the window carrying the active
// prediction's score forward, sums the per-day scores and divides by the
// number of active days. Days before the first submission contribute nothing
// and are excluded via the denominator. The second return is false when the
// forecaster was never active in the window.
func (f *Forecaster) AverageDailyBrierScore() (decimal.Decimal, bool) {
	activeDays := f.NumberOfDaysWithActivePrediction()
	if activeDays == 0 {
		return decimal.Decimal{}, false
	}
	sum := decimal.Zero
	for _, date := range f.question.dates {
		if active := f.question.LatestPredictionAsOf(date, f.id); active != nil {
			sum = sum.Add(active.BrierScore())
		}
	}
	return sum.Div(numeric.FromInt(int64(activeDays))), true
}

// ParticipationRate returns the fraction of the entire window, not just the
// forecaster's active span, during which the forecaster had an active
// prediction.
func (f *Forecaster) ParticipationRate() decimal.Decimal {
	windowDays := daysBetween(f.question.firstDate, f.question.lastDate) + 1
	activeDays := f.NumberOfDaysWithActivePrediction()
	return numeric.FromInt(int64(activeDays)).Div(numeric.FromInt(int64(windowDays)))
}

// AccuracyScore returns the forecaster's average daily Brier score minus the
// question's average of daily medians, divided by the participation rate.
// Lower is better; dividing by the participation rate penalizes forecasters
// who participated for less of the window. The second return is false when
// the forecaster was never active or the question has no daily medians.
func (f *Forecaster) AccuracyScore() (decimal.Decimal, bool) {
	average, ok := f.AverageDailyBrierScore()
	if !ok {
		return decimal.Decimal{}, false
	}
	questionAverage, ok := f.question.AverageMedianDailyBrierScore()
	if !ok {
		return decimal.Decimal{}, false
	}
	return average.Sub(questionAverage).Div(f.ParticipationRate()), true
}
