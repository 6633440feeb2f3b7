package services

import (
	"errors"
	"fmt"
	"strings"
)

// --- Custom Service Errors ---
var (
	ErrValidation       = errors.New("validation failed")
	ErrMemberNotFound   = errors.New("member not found")
	ErrAlreadyCheckedIn = errors.New("member is already checked in today")
	ErrNoOpenSession    = errors.New("member has no open session today")
	ErrMemberHasRecords = errors.New("member has attendance or payment records")
	ErrStorage          = errors.New("storage failure")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// storageError wraps an unexpected repository failure.
func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
