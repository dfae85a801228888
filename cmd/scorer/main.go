package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/prediction-scorer/internal/cohort"
	"github.com/yourusername/prediction-scorer/internal/config"
	"github.com/yourusername/prediction-scorer/internal/ingest"
	"github.com/yourusername/prediction-scorer/internal/logger"
	"github.com/yourusername/prediction-scorer/internal/numeric"
	"github.com/yourusername/prediction-scorer/internal/report"
	"github.com/yourusername/prediction-scorer/internal/rules"
	"github.com/yourusername/prediction-scorer/internal/scoring"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	appLogger  *logrus.Logger
	cfg        *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")

	rankCmd.Flags().StringVarP(&rankInput, "input", "i", "", "Path to JSON predictions file (required)")
	rankCmd.Flags().StringVar(&rankFirstDate, "first-date", "", "Window start (YYYY-MM-DD, default: earliest prediction)")
	rankCmd.Flags().StringVar(&rankLastDate, "last-date", "", "Window end (YYYY-MM-DD, default: latest prediction)")
	rankCmd.Flags().StringVar(&rankFormat, "format", "", "Output format: table or json (default from config)")
	_ = rankCmd.MarkFlagRequired("input")

	scoreCmd.Flags().StringVar(&scoreRule, "rule", "brier", "Scoring rule: brier, quadratic, logarithmic, practical, distance")
	scoreCmd.Flags().StringVarP(&scoreProbability, "probability", "p", "", "Probability assigned to the true outcome, unit-scaled")
	scoreCmd.Flags().StringVar(&scoreOutcome, "outcome", "", "Observed outcome (distance rule)")
	scoreCmd.Flags().StringVar(&scoreLow, "low", "", "Claimed interval lower bound (distance rule)")
	scoreCmd.Flags().StringVar(&scoreHigh, "high", "", "Claimed interval upper bound (distance rule)")

	rootCmd.AddCommand(rankCmd, scoreCmd)
}

var rootCmd = &cobra.Command{
	Use:   "scorer",
	Short: "Score probabilistic forecasts against observed outcomes",
	Long: `Computes scoring-rule values (Brier, quadratic, logarithmic, practical,
distance) for already-elicited probabilities and ranks forecasters by
participation-penalized relative accuracy over a question's date window.`,
	Version: fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		appLogger = logger.NewLogger(cfg.App.LogLevel)
		return nil
	},
}

var (
	rankInput     string
	rankFirstDate string
	rankLastDate  string
	rankFormat    string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank forecasters by relative accuracy over a question window",
	RunE: func(cmd *cobra.Command, args []string) error {
		scoringLogger := logger.NewScoringLogger(appLogger)

		predictions, err := ingest.Load(rankInput)
		if err != nil {
			return err
		}
		if len(predictions) == 0 {
			return fmt.Errorf("no predictions in %s", rankInput)
		}
		scoringLogger.LogPredictionsLoaded(rankInput, len(predictions))

		firstDate, lastDate, err := resolveWindow(predictions)
		if err != nil {
			return err
		}

		question, err := cohort.NewQuestion(predictions, firstDate, lastDate)
		if err != nil {
			return err
		}
		scoringLogger.LogQuestionScored(question.FirstDate(), question.LastDate(), len(question.Predictions()), len(question.Forecasters()), len(question.Days()))

		ranking := report.BuildRanking(question)
		format := cfg.Report.Format
		if rankFormat != "" {
			format = rankFormat
		}
		switch format {
		case "json":
			err = ranking.RenderJSON(os.Stdout)
		case "table":
			err = ranking.RenderTable(os.Stdout, cfg.Report.DecimalPlaces)
		default:
			return fmt.Errorf("unknown format %q, want table or json", format)
		}
		if err != nil {
			return err
		}
		scoringLogger.LogRankingRendered(format, len(ranking.Rows))
		return nil
	},
}

var (
	scoreRule        string
	scoreProbability string
	scoreOutcome     string
	scoreLow         string
	scoreHigh        string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Evaluate a single scoring rule",
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := evaluateRule()
		if err != nil {
			return err
		}
		fmt.Println(score.Round(cfg.Report.DecimalPlaces).String())
		return nil
	},
}

func evaluateRule() (decimal.Decimal, error) {
	if scoreRule == "distance" {
		outcome, err := numeric.Parse(scoreOutcome)
		if err != nil {
			return decimal.Decimal{}, err
		}
		low, err := numeric.Parse(scoreLow)
		if err != nil {
			return decimal.Decimal{}, err
		}
		high, err := numeric.Parse(scoreHigh)
		if err != nil {
			return decimal.Decimal{}, err
		}
		return rules.Distance(outcome, low, high, cfg.Scoring.DistanceOptions())
	}

	probability, err := numeric.Parse(scoreProbability)
	if err != nil {
		return decimal.Decimal{}, err
	}
	switch scoreRule {
	case "brier":
		return rules.Brier(probability)
	case "quadratic":
		return rules.Quadratic(probability)
	case "logarithmic":
		return rules.Logarithmic(probability)
	case "practical":
		return rules.Practical(probability, cfg.Scoring.MaxProbabilityDecimal(), cfg.Scoring.MaxScoreDecimal())
	default:
		return decimal.Decimal{}, fmt.Errorf("unknown rule %q", scoreRule)
	}
}

func resolveWindow(predictions []*scoring.AttributedPrediction) (time.Time, time.Time, error) {
	dates := cohort.GenerateDateRange(predictions)
	firstDate := dates[0]
	lastDate := dates[len(dates)-1]
	if rankFirstDate != "" {
		parsed, err := time.Parse(time.DateOnly, rankFirstDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse first date: %w", err)
		}
		firstDate = parsed
	}
	if rankLastDate != "" {
		parsed, err := time.Parse(time.DateOnly, rankLastDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse last date: %w", err)
		}
		lastDate = parsed
	}
	return firstDate, lastDate, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
