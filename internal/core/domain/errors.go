package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates the registry has no results for the query.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedCountry indicates no registry covers the requested country.
	ErrUnsupportedCountry = errors.New("unsupported country")

	// ErrMalformedRecord indicates a registry record could not be normalised.
	// It only ever affects the record it was raised for.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrConfigMissing indicates no configuration source is available.
	ErrConfigMissing = errors.New("configuration missing")

	// Authentication Errors.

	// ErrAuthRequired indicates no API token is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the registry rejected the API token.
	ErrAuthInvalid = errors.New("authentication invalid")

	// Gateway Errors.

	// ErrServiceUnavailable indicates the registry is temporarily down.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrUnknownStatus indicates the registry answered with an unexpected status.
	ErrUnknownStatus = errors.New("unknown status")
)

// RecordError describes why a single registry record could not be normalised.
type RecordError struct {
	Field string
	Value any
	Err   error
}

// NewRecordError creates a RecordError wrapping ErrMalformedRecord.
func NewRecordError(field string, value any, reason string) *RecordError {
	return &RecordError{
		Field: field,
		Value: value,
		Err:   fmt.Errorf("%w: %s", ErrMalformedRecord, reason),
	}
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("field %s (%v): %v", e.Field, e.Value, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// IsTerminal reports whether err must abort an enrichment run.
// Terminal failures are surfaced to the user as a single message; every
// other error stays scoped to the record that produced it.
func IsTerminal(err error) bool {
	return errors.Is(err, ErrAuthRequired) ||
		errors.Is(err, ErrAuthInvalid) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrServiceUnavailable) ||
		errors.Is(err, ErrUnknownStatus)
}
