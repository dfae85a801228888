// Package config provides configuration management for the prediction scorer.
package config

import (
	"github.com/shopspring/decimal"

	"github.com/yourusername/prediction-scorer/internal/rules"
)

// Config represents the complete application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Scoring ScoringConfig `mapstructure:"scoring" validate:"required"`
	Report  ReportConfig  `mapstructure:"report" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name     string `mapstructure:"name" validate:"required"`
	LogLevel string `mapstructure:"log_level" validate:"required,loglevel"`
}

// ScoringConfig represents scoring-rule parameter defaults. Values are decimal
// string literals so binary floating point never leaks into the scoring
// domain.
type ScoringConfig struct {
	MaxProbability   string `mapstructure:"max_probability" validate:"required,decimalstr"`
	MaxScore         string `mapstructure:"max_score" validate:"required,decimalstr"`
	DistancePenalty  string `mapstructure:"distance_penalty" validate:"required,decimalstr"`
	DistanceExponent string `mapstructure:"distance_exponent" validate:"required,decimalstr"`
}

// ReportConfig represents ranking report configuration
type ReportConfig struct {
	Format        string `mapstructure:"format" validate:"required,oneof=table json"`
	DecimalPlaces int32  `mapstructure:"decimal_places" validate:"gte=0,lte=12"`
}

// MaxProbabilityDecimal returns the practical rule's maximum probability.
// Call only after validation.
func (s ScoringConfig) MaxProbabilityDecimal() decimal.Decimal {
	return decimal.RequireFromString(s.MaxProbability)
}

// MaxScoreDecimal returns the practical rule's maximum score. Call only after
// validation.
func (s ScoringConfig) MaxScoreDecimal() decimal.Decimal {
	return decimal.RequireFromString(s.MaxScore)
}

// DistanceOptions returns the configured distance-rule parameterization. Call
// only after validation.
func (s ScoringConfig) DistanceOptions() rules.DistanceOptions {
	return rules.DistanceOptions{
		MaxScore: decimal.RequireFromString(s.MaxScore),
		Penalty:  decimal.RequireFromString(s.DistancePenalty),
		Exponent: decimal.RequireFromString(s.DistanceExponent),
	}
}
