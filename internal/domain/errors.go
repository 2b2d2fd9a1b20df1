package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	// ErrNotFound signals an operation on a todo id that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation signals a request that fails business validation.
	ErrValidation = errors.New("validation error")

	// ErrTimeout signals an outbound call that exceeded its time budget.
	ErrTimeout = errors.New("timeout")

	// ErrUnavailable signals a downstream that responded with a server error.
	ErrUnavailable = errors.New("unavailable")
)

// MsgRequired is the standard per-field message for missing required fields.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation
// failures. Use errors.Is(err, ErrValidation) for simple checks, or
// errors.As(err, &verr) to access verr.Fields for per-field details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
