// Package config provides configuration management for the prediction scorer.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() (*CustomValidator, error) {
	v := validator.New()

	// Register custom validation functions
	if err := v.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return nil, fmt.Errorf("register loglevel validator: %w", err)
	}
	if err := v.RegisterValidation("decimalstr", validateDecimalString); err != nil {
		return nil, fmt.Errorf("register decimalstr validator: %w", err)
	}

	return &CustomValidator{validator: v}, nil
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv, err := NewValidator()
	if err != nil {
		return err
	}
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	// Additional cross-field validations
	return validateScoringBounds(cfg.Scoring)
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateDecimalString validates that a field holds a decimal literal
func validateDecimalString(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(fl.Field().String())
	return err == nil
}

// validateScoringBounds checks the constraints the struct tags cannot express:
// the practical maximum probability must be in (0, 1], the maximum score and
// distance exponent must be positive.
func validateScoringBounds(s ScoringConfig) error {
	one := decimal.NewFromInt(1)
	maxProbability := decimal.RequireFromString(s.MaxProbability)
	if maxProbability.Sign() <= 0 || maxProbability.GreaterThan(one) {
		return fmt.Errorf("scoring.max_probability %s must be greater than zero and at most one", s.MaxProbability)
	}
	if decimal.RequireFromString(s.MaxScore).Sign() <= 0 {
		return fmt.Errorf("scoring.max_score %s must be greater than zero", s.MaxScore)
	}
	if decimal.RequireFromString(s.DistanceExponent).Sign() <= 0 {
		return fmt.Errorf("scoring.distance_exponent %s must be greater than zero", s.DistanceExponent)
	}
	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) error {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, fmt.Sprintf("%s failed on '%s'", err.Namespace(), err.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}
