package models

import "errors"

var (
	// ErrValidation marks a missing or malformed required field.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateVote marks an attempt to cast the same vote twice.
	ErrDuplicateVote = errors.New("duplicate vote")
)
