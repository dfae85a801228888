package scoring

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AttributedPrediction is a Prediction extended with its author, its creation
// timestamp and an optional external identifier. CreatedOn is the timestamp
// truncated to a UTC calendar date, derived once at construction.
type AttributedPrediction struct {
	*Prediction

	id           uuid.UUID
	forecasterID string
	createdAt    time.Time
	createdOn    time.Time
}

// NewAttributedPrediction validates and builds an AttributedPrediction. Pass
// uuid.Nil when there is no external identifier.
func NewAttributedPrediction(probabilities []decimal.Decimal, trueAlternativeIndex int, orderMatters bool, createdAt time.Time, forecasterID string, id uuid.UUID) (*AttributedPrediction, error) {
	prediction, err := NewPrediction(probabilities, trueAlternativeIndex, orderMatters)
	if err != nil {
		return nil, err
	}
	if forecasterID == "" {
		return nil, fmt.Errorf("forecaster id is required: %w", ErrMissingAttribution)
	}
	if createdAt.IsZero() {
		return nil, fmt.Errorf("creation timestamp is required: %w", ErrMissingAttribution)
	}
	utc := createdAt.UTC()
	return &AttributedPrediction{
		Prediction:   prediction,
		id:           id,
		forecasterID: forecasterID,
		createdAt:    createdAt,
		createdOn:    time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC),
	}, nil
}

// ID returns the external identifier, or uuid.Nil when none was supplied.
func (ap *AttributedPrediction) ID() uuid.UUID {
	return ap.id
}

// ForecasterID returns the identity of the prediction's author.
func (ap *AttributedPrediction) ForecasterID() string {
	return ap.forecasterID
}

// CreatedAt returns the elicitation timestamp.
func (ap *AttributedPrediction) CreatedAt() time.Time {
	return ap.createdAt
}

// CreatedOn returns the elicitation date: CreatedAt truncated to a UTC
// calendar day.
func (ap *AttributedPrediction) CreatedOn() time.Time {
	return ap.createdOn
}
