// Package cohort aggregates attributed predictions across forecasters and
// time. Given a question's date window and prediction set, it reconstructs
// which prediction each forecaster had active on each day, computes daily
// median Brier scores and derives participation-penalized relative accuracy
// per forecaster. Everything is derived deterministically at construction:
// iteration always follows sorted dates and forecaster identifiers.
package cohort

import (
	"sort"
	"time"

	"github.com/yourusername/prediction-scorer/internal/scoring"
)

// GenerateDateRange returns every calendar date from the earliest to the
// latest creation date among the given predictions, inclusive and contiguous.
// Dates with no predictions are still included.
func GenerateDateRange(predictions []*scoring.AttributedPrediction) []time.Time {
	if len(predictions) == 0 {
		return nil
	}
	first := predictions[0].CreatedOn()
	last := first
	for _, prediction := range predictions[1:] {
		createdOn := prediction.CreatedOn()
		if createdOn.Before(first) {
			first = createdOn
		}
		if createdOn.After(last) {
			last = createdOn
		}
	}
	return datesBetween(first, last)
}

// EliminateOverwritten drops predictions that were superseded on the same day
// by the same forecaster, keeping only the one with the latest timestamp per
// (date, forecaster) pair. Predictions from different days or different
// forecasters never compete. The result is sorted by timestamp, then
// forecaster.
func EliminateOverwritten(predictions []*scoring.AttributedPrediction) []*scoring.AttributedPrediction {
	type key struct {
		date       time.Time
		forecaster string
	}
	latest := make(map[key]*scoring.AttributedPrediction, len(predictions))
	for _, prediction := range predictions {
		k := key{date: prediction.CreatedOn(), forecaster: prediction.ForecasterID()}
		current, ok := latest[k]
		if !ok || prediction.CreatedAt().After(current.CreatedAt()) {
			latest[k] = prediction
		}
	}
	kept := make([]*scoring.AttributedPrediction, 0, len(latest))
	for _, prediction := range latest {
		kept = append(kept, prediction)
	}
	sortPredictions(kept)
	return kept
}

func sortPredictions(predictions []*scoring.AttributedPrediction) {
	sort.Slice(predictions, func(i, j int) bool {
		if !predictions[i].CreatedAt().Equal(predictions[j].CreatedAt()) {
			return predictions[i].CreatedAt().Before(predictions[j].CreatedAt())
		}
		return predictions[i].ForecasterID() < predictions[j].ForecasterID()
	})
}

func datesBetween(first, last time.Time) []time.Time {
	var dates []time.Time
	for date := first; !date.After(last); date = date.AddDate(0, 0, 1) {
		dates = append(dates, date)
	}
	return dates
}

func daysBetween(first, last time.Time) int {
	return int(last.Sub(first).Hours() / 24)
}
