package models

import "errors"

// Custom errors
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicateKey     = errors.New("duplicate key violation")
	ErrInvalidID        = errors.New("invalid ID format")
	ErrNoOddsData       = errors.New("no usable odds data for match")
	ErrMatchNotComplete = errors.New("match is not completed")
	ErrNoFinalScore     = errors.New("completed match has no final score")
)
