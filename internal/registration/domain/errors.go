package domain

import (
	"github.com/anylai/signup/internal/errors"
)

// Domain-specific errors for registration operations.
var (
	// ErrUnknownField indicates a change names a field the form does not have.
	ErrUnknownField = errors.Wrap(errors.ErrInvalidInput, "unknown form field")

	// ErrInvalidProfile indicates the selected profile is not offered by the form.
	ErrInvalidProfile = errors.Wrap(errors.ErrInvalidInput, "invalid profile")

	// ErrFormIncomplete indicates the form failed review and cannot be registered.
	ErrFormIncomplete = errors.Wrap(errors.ErrIncomplete, "registration form is incomplete")
)
