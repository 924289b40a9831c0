// Package errors provides the sentinel errors shared by every module. Use cases wrap
// them with context and HTTP handlers map them to status codes.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors shared across modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input data is malformed or names an unknown option.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIncomplete indicates a form is well formed but not ready to be registered.
	ErrIncomplete = errors.New("incomplete")

	// ErrTooManyRequests indicates the caller exceeded the configured request rate.
	ErrTooManyRequests = errors.New("too many requests")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
