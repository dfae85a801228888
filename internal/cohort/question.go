package cohort

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yourusername/prediction-scorer/internal/scoring"
)

var two = decimal.NewFromInt(2)

// ErrInvalidWindow indicates the question's date window is empty or reversed.
var ErrInvalidWindow = errors.New("invalid question window")

// Question binds a set of attributed predictions to an explicit
// [firstDate, lastDate] scoring window. The window is independent from, and
// may be wider than, the range implied by the predictions themselves. All
// derived views are built once at construction and are read-only thereafter.
type Question struct {
	firstDate time.Time
	lastDate  time.Time

	predictions  []*scoring.AttributedPrediction            // deduplicated, sorted by timestamp
	byForecaster map[string][]*scoring.AttributedPrediction // each ascending by timestamp
	forecasters  []*Forecaster                              // sorted by id
	dates        []time.Time
	days         []*Day
}

// NewQuestion deduplicates the given predictions (latest per day per
// forecaster wins) and derives the full day-by-day view of the window. Dates
// are truncated to UTC calendar days.
func NewQuestion(predictions []*scoring.AttributedPrediction, firstDate, lastDate time.Time) (*Question, error) {
	first := truncateToDate(firstDate)
	last := truncateToDate(lastDate)
	if first.After(last) {
		return nil, fmt.Errorf("first date %s is after last date %s: %w", first.Format(time.DateOnly), last.Format(time.DateOnly), ErrInvalidWindow)
	}

	q := &Question{
		firstDate:   first,
		lastDate:    last,
		predictions: EliminateOverwritten(predictions),
		dates:       datesBetween(first, last),
	}

	q.byForecaster = make(map[string][]*scoring.AttributedPrediction)
	for _, prediction := range q.predictions {
		id := prediction.ForecasterID()
		q.byForecaster[id] = append(q.byForecaster[id], prediction)
	}
	ids := make([]string, 0, len(q.byForecaster))
	for id := range q.byForecaster {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	q.forecasters = make([]*Forecaster, len(ids))
	for i, id := range ids {
		q.forecasters[i] = &Forecaster{
			id:          id,
			question:    q,
			predictions: q.byForecaster[id],
		}
	}

	q.days = make([]*Day, len(q.dates))
	for i, date := range q.dates {
		day := &Day{date: date}
		for _, id := range ids {
			if latest := q.LatestPredictionAsOf(date, id); latest != nil {
				day.active = append(day.active, latest)
			}
		}
		q.days[i] = day
	}
	return q, nil
}

// FirstDate returns the window's first calendar date.
func (q *Question) FirstDate() time.Time {
	return q.firstDate
}

// LastDate returns the window's last calendar date.
func (q *Question) LastDate() time.Time {
	return q.lastDate
}

// Predictions returns the deduplicated predictions, sorted by timestamp.
func (q *Question) Predictions() []*scoring.AttributedPrediction {
	out := make([]*scoring.AttributedPrediction, len(q.predictions))
	copy(out, q.predictions)
	return out
}

// Dates returns every calendar date in the window, inclusive and contiguous.
func (q *Question) Dates() []time.Time {
	out := make([]time.Time, len(q.dates))
	copy(out, q.dates)
	return out
}

// Days returns one Day per date in the window.
func (q *Question) Days() []*Day {
	out := make([]*Day, len(q.days))
	copy(out, q.days)
	return out
}

// Forecasters returns every forecaster who authored at least one prediction,
// ordered by identifier.
func (q *Question) Forecasters() []*Forecaster {
	out := make([]*Forecaster, len(q.forecasters))
	copy(out, q.forecasters)
	return out
}

// LatestPredictionAsOf returns the forecaster's most recent prediction created
// on or before the given date, or nil if the forecaster had not posted yet.
func (q *Question) LatestPredictionAsOf(date time.Time, forecasterID string) *scoring.AttributedPrediction {
	date = truncateToDate(date)
	var latest *scoring.AttributedPrediction
	for _, prediction := range q.byForecaster[forecasterID] {
		if prediction.CreatedOn().After(date) {
			break
		}
		latest = prediction
	}
	return latest
}

// AverageMedianDailyBrierScore returns the mean of the daily median Brier
// scores over the days that have one. Days with no active forecaster are
// excluded from both the sum and the count. The second return is false when
// no day has a median.
func (q *Question) AverageMedianDailyBrierScore() (decimal.Decimal, bool) {
	sum := decimal.Zero
	count := 0
	for _, day := range q.days {
		if medianScore, ok := day.MedianBrierScore(); ok {
			sum = sum.Add(medianScore)
			count++
		}
	}
	if count == 0 {
		return decimal.Decimal{}, false
	}
	return sum.Div(decimal.NewFromInt(int64(count))), true
}

func truncateToDate(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
