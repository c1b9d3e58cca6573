// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Storage errors.
	ErrNotFound        = errors.New("not found")
	ErrVersionConflict = errors.New("version conflict")

	// Simulation errors.
	ErrUnknownAction         = errors.New("unknown action")
	ErrUnknownClassification = errors.New("unknown classification")
	ErrDuplicatePending      = errors.New("a pending transaction already exists")
	ErrNoPending             = errors.New("no pending transaction")

	// Catalog errors.
	ErrEmptyCatalog   = errors.New("classification catalog is empty")
	ErrInvalidCatalog = errors.New("invalid catalog")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the learner.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
