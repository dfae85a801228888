package cohort

import (
	"sort"

	"time"

	"github.com/shopspring/decimal"

	"github.com/yourusername/prediction-scorer/internal/scoring"
)

// Day is one calendar date within a question's window. It holds the latest
// prediction per forecaster as of that date; forecasters who have not posted
// yet are absent rather than counted as zero.
type Day struct {
	date   time.Time
	active []*scoring.AttributedPrediction // ordered by forecaster id
}

// RelativeScore is one forecaster's Brier score on a day expressed relative
// to the day's median; negative means better than the median.
type RelativeScore struct {
	ForecasterID string
	Score        decimal.Decimal
}

// Date returns the calendar date this day represents.
func (d *Day) Date() time.Time {
	return d.date
}

// ActivePredictions returns the latest prediction per forecaster as of this
// date, ordered by forecaster identifier.
func (d *Day) ActivePredictions() []*scoring.AttributedPrediction {
	out := make([]*scoring.AttributedPrediction, len(d.active))
	copy(out, d.active)
	return out
}

// MedianBrierScore returns the statistical median of the active predictions'
// Brier scores: the middle value, or the mean of the two middle values for
// even counts. The second return is false when no forecaster is active yet.
func (d *Day) MedianBrierScore() (decimal.Decimal, bool) {
	if len(d.active) == 0 {
		return decimal.Decimal{}, false
	}
	scores := make([]decimal.Decimal, len(d.active))
	for i, prediction := range d.active {
		scores[i] = prediction.BrierScore()
	}
	return median(scores), true
}

// RelativeBrierScores returns each active forecaster's Brier score minus the
// day's median, ordered by forecaster identifier. Nil when no forecaster is
// active.
func (d *Day) RelativeBrierScores() []RelativeScore {
	medianScore, ok := d.MedianBrierScore()
	if !ok {
		return nil
	}
	out := make([]RelativeScore, len(d.active))
	for i, prediction := range d.active {
		out[i] = RelativeScore{
			ForecasterID: prediction.ForecasterID(),
			Score:        prediction.BrierScore().Sub(medianScore),
		}
	}
	return out
}

func median(scores []decimal.Decimal) decimal.Decimal {
	sorted := make([]decimal.Decimal, len(scores))
	copy(sorted, scores)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(two)
}
