// Package storage provides the SQLite persistence layer for learner
// simulation state.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/drdebit/aalp-sub001/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateState(state *model.BusinessState) error {
	if state == nil {
		return fmt.Errorf("%w: state", ErrNilParameter)
	}
	return nil
}

func validatePending(pending *model.PendingTransaction) error {
	if pending == nil {
		return fmt.Errorf("%w: pending", ErrNilParameter)
	}
	if err := validateString(pending.ActionKey, "pending.ActionKey"); err != nil {
		return err
	}
	return validateString(pending.Classification, "pending.Classification")
}

func validateEntry(entry *model.LedgerEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry", ErrNilParameter)
	}
	return validateString(entry.ActionKey, "entry.ActionKey")
}
