package scoring

import "errors"

// Construction errors. Raised synchronously; no partial entities are returned.
var (
	ErrInvalidPredictionShape = errors.New("invalid prediction shape")
	ErrMissingAttribution     = errors.New("missing attribution")
)
