// Package usecase exposes the document formatting rules to the transport layers.
package usecase

import (
	"context"

	documentDomain "github.com/anylai/signup/internal/document/domain"
)

// FormattedDocument is a document value rendered for display.
type FormattedDocument struct {
	Kind   documentDomain.Kind
	Digits string
	Masked string
	Hint   string
}

// FormattedPhone is a phone value rendered for display.
type FormattedPhone struct {
	Digits string
	Masked string
	Shape  documentDomain.PhoneShape
}

// FormattedField is a generic form field rendered for display.
type FormattedField struct {
	Mask    documentDomain.MaskType
	Value   string
	Display string
	Hint    string
}

// DocumentUseCase defines the formatting and completeness operations.
type DocumentUseCase interface {
	// Format strips the input and renders it with the mask of kind.
	Format(ctx context.Context, kind documentDomain.Kind, input string) (*FormattedDocument, error)
	// Validate reports the completeness of the input for kind.
	Validate(ctx context.Context, kind documentDomain.Kind, input string) (*documentDomain.ValidationResult, error)
	// FormatPhone strips the input and renders it as a fixed-line or mobile number.
	FormatPhone(ctx context.Context, input string) (*FormattedPhone, error)
	// FormatField applies a generic field mask, returning the value to store and the value to show.
	FormatField(ctx context.Context, mask documentDomain.MaskType, input string) (*FormattedField, error)
}
