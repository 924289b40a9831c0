package domain

import (
	"github.com/anylai/signup/internal/errors"
)

var (
	// ErrInvalidKind indicates an unknown document kind was supplied.
	ErrInvalidKind = errors.Wrap(errors.ErrInvalidInput, "invalid document kind")

	// ErrInvalidMaskType indicates an unknown field mask was supplied.
	ErrInvalidMaskType = errors.Wrap(errors.ErrInvalidInput, "invalid mask type")
)
