// Package ingest loads attributed predictions from JSON files so the CLI can
// feed them to the cohort layer. It is an input adapter for external records,
// not a persistence layer: records are validated, converted to entities and
// discarded.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yourusername/prediction-scorer/internal/scoring"
)

// PredictionRecord is the wire shape of one prediction in an input file.
// Probabilities are percent-scaled and may be JSON numbers or strings; strings
// preserve exact decimal values like "25.01".
type PredictionRecord struct {
	ID                   string            `json:"id" validate:"omitempty,uuid4"`
	ForecasterID         string            `json:"forecaster_id" validate:"required"`
	CreatedAt            time.Time         `json:"created_at" validate:"required"`
	Probabilities        []decimal.Decimal `json:"probabilities" validate:"required,min=2"`
	TrueAlternativeIndex int               `json:"true_alternative_index" validate:"gte=0"`
	OrderMatters         bool              `json:"order_matters"`
}

// Load reads a JSON array of prediction records from path and converts it to
// attributed predictions. The first invalid record fails the whole load.
func Load(path string) ([]*scoring.AttributedPrediction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read predictions file: %w", err)
	}
	return Parse(data)
}

// Parse converts a JSON array of prediction records to attributed predictions.
func Parse(data []byte) ([]*scoring.AttributedPrediction, error) {
	var records []PredictionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse predictions file: %w", err)
	}

	validate := validator.New()
	predictions := make([]*scoring.AttributedPrediction, 0, len(records))
	for i, record := range records {
		if err := validate.Struct(record); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		prediction, err := record.toEntity()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		predictions = append(predictions, prediction)
	}
	return predictions, nil
}

func (r PredictionRecord) toEntity() (*scoring.AttributedPrediction, error) {
	id := uuid.Nil
	if r.ID != "" {
		parsed, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, fmt.Errorf("parse prediction id: %w", err)
		}
		id = parsed
	}
	return scoring.NewAttributedPrediction(r.Probabilities, r.TrueAlternativeIndex, r.OrderMatters, r.CreatedAt, r.ForecasterID, id)
}
