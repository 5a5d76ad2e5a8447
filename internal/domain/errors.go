package domain

import "errors"

var (
	// Cycle errors
	ErrInvalidCycleKey  = errors.New("invalid cycle key: expected YYYY-MM")
	ErrInvalidCutoffDay = errors.New("cutoff day must be between 1 and 28")

	// Entry errors
	ErrNegativeAmount = errors.New("entry amount must not be negative")
	ErrInvalidSign    = errors.New("entry sign must be income or expense")
)
