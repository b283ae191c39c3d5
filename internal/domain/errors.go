package domain

import "errors"

// Domain errors
var (
	ErrNotFound    = errors.New("acronym not found")
	ErrValidation  = errors.New("validation failed")
	ErrConflict    = errors.New("acronym already exists")
	ErrInvalidVote = errors.New("invalid vote")
)
