package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrTaggerUnavailable = errors.New("tagger unavailable")
	ErrEmptyInput        = errors.New("empty input")
	ErrInvalidConfig     = errors.New("invalid configuration")
)
