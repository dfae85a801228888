// Package report renders forecaster rankings for external consumption. The
// core returns plain decimal values; rounding happens only here, at the
// presentation boundary.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/yourusername/prediction-scorer/internal/cohort"
)

// DefaultDecimalPlaces is the rounding applied to rendered scores.
const DefaultDecimalPlaces = 2

// Row is one forecaster's line in a ranking.
type Row struct {
	Rank                   int             `json:"rank"`
	ForecasterID           string          `json:"forecaster_id"`
	ParticipationRate      decimal.Decimal `json:"participation_rate"`
	AverageDailyBrierScore decimal.Decimal `json:"average_daily_brier_score"`
	AccuracyScore          decimal.Decimal `json:"accuracy_score"`
}

// Ranking is a question's forecasters ordered by accuracy score ascending;
// lower is better.
type Ranking struct {
	AverageMedianDailyBrierScore decimal.Decimal `json:"average_median_daily_brier_score"`
	Rows                         []Row           `json:"rows"`
}

// BuildRanking derives a ranking from a question. Forecasters that were never
// active in the window are skipped: they have no accuracy score.
func BuildRanking(question *cohort.Question) Ranking {
	ranking := Ranking{}
	if average, ok := question.AverageMedianDailyBrierScore(); ok {
		ranking.AverageMedianDailyBrierScore = average
	}
	for _, forecaster := range question.Forecasters() {
		accuracy, ok := forecaster.AccuracyScore()
		if !ok {
			continue
		}
		average, _ := forecaster.AverageDailyBrierScore()
		ranking.Rows = append(ranking.Rows, Row{
			ForecasterID:           forecaster.ID(),
			ParticipationRate:      forecaster.ParticipationRate(),
			AverageDailyBrierScore: average,
			AccuracyScore:          accuracy,
		})
	}
	sort.SliceStable(ranking.Rows, func(i, j int) bool {
		return ranking.Rows[i].AccuracyScore.LessThan(ranking.Rows[j].AccuracyScore)
	})
	for i := range ranking.Rows {
		ranking.Rows[i].Rank = i + 1
	}
	return ranking
}

// RenderTable writes the ranking as an aligned text table, scores rounded to
// the given number of decimal places.
func (r Ranking) RenderTable(w io.Writer, places int32) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tFORECASTER\tPARTICIPATION\tAVG DAILY BRIER\tACCURACY")
	for _, row := range r.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			row.Rank,
			row.ForecasterID,
			row.ParticipationRate.Round(places).String(),
			row.AverageDailyBrierScore.Round(places).String(),
			row.AccuracyScore.Round(places).String(),
		)
	}
	fmt.Fprintf(tw, "\nAverage median daily Brier score: %s\n", r.AverageMedianDailyBrierScore.Round(places).String())
	return tw.Flush()
}

// RenderJSON writes the ranking as indented JSON with unrounded scores.
func (r Ranking) RenderJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}
