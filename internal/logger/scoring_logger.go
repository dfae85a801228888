// Package logger provides scoring-run logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// ScoringLogger provides dedicated logging for scoring pipeline runs.
type ScoringLogger struct {
	*logrus.Entry
}

// NewScoringLogger creates a new scoring logger.
func NewScoringLogger(baseLogger *logrus.Logger) *ScoringLogger {
	return &ScoringLogger{
		Entry: baseLogger.WithField("component", "scoring"),
	}
}

// LogPredictionsLoaded logs a completed input load.
func (sl *ScoringLogger) LogPredictionsLoaded(path string, loaded int) {
	sl.WithFields(logrus.Fields{
		"path":   path,
		"loaded": loaded,
	}).Info("Predictions loaded")
}

// LogQuestionScored logs a completed question scoring pass.
func (sl *ScoringLogger) LogQuestionScored(firstDate, lastDate time.Time, predictions, forecasters, days int) {
	sl.WithFields(logrus.Fields{
		"first_date":  firstDate.Format(time.DateOnly),
		"last_date":   lastDate.Format(time.DateOnly),
		"predictions": predictions,
		"forecasters": forecasters,
		"days":        days,
	}).Info("Question scored")
}

// LogRankingRendered logs a rendered ranking report.
func (sl *ScoringLogger) LogRankingRendered(format string, rows int) {
	sl.WithFields(logrus.Fields{
		"format": format,
		"rows":   rows,
	}).Info("Ranking rendered")
}
