package domain

import "errors"

// Domain errors
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidAmount   = errors.New("amount must be zero or positive")
	ErrInvalidCategory = errors.New("invalid category")
	ErrNameRequired    = errors.New("name is required")
	ErrNameTooLong     = errors.New("name exceeds maximum length")
	ErrGoalNotFound    = errors.New("goal not found")
	ErrInternalError   = errors.New("internal error")
)

// Validation constants
const (
	MaxNameLength = 255
)
