package rules

import "errors"

// Rule input errors. All are caller errors raised synchronously; none are
// transient or retryable.
var (
	ErrInvalidProbability         = errors.New("invalid probability")
	ErrUndefinedScore             = errors.New("score undefined")
	ErrInvalidPracticalParameters = errors.New("invalid practical score parameters")
	ErrInvalidDistanceParameters  = errors.New("invalid distance score parameters")
	ErrDegenerateInterval         = errors.New("degenerate interval")
)
