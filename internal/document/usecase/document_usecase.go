package usecase

import (
	"context"

	documentDomain "github.com/anylai/signup/internal/document/domain"
)

// documentUseCase implements DocumentUseCase on top of the pure domain functions.
type documentUseCase struct{}

// NewDocumentUseCase creates a new DocumentUseCase.
func NewDocumentUseCase() DocumentUseCase {
	return &documentUseCase{}
}

// Format strips the input and renders it with the mask of kind.
func (d *documentUseCase) Format(
	ctx context.Context,
	kind documentDomain.Kind,
	input string,
) (*FormattedDocument, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	digits := documentDomain.ExtractDigits(input)
	return &FormattedDocument{
		Kind:   kind,
		Digits: digits,
		Masked: documentDomain.ApplyMask(kind, digits),
		Hint:   kind.MaskType().Hint(),
	}, nil
}

// Validate reports the completeness of the input for kind.
func (d *documentUseCase) Validate(
	ctx context.Context,
	kind documentDomain.Kind,
	input string,
) (*documentDomain.ValidationResult, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	result := documentDomain.Validate(kind, input)
	return &result, nil
}

// FormatPhone strips the input and renders it as a fixed-line or mobile number.
func (d *documentUseCase) FormatPhone(ctx context.Context, input string) (*FormattedPhone, error) {
	digits := documentDomain.ExtractDigits(input)
	return &FormattedPhone{
		Digits: digits,
		Masked: documentDomain.ApplyPhoneMask(digits),
		Shape:  documentDomain.PhoneShapeFor(digits),
	}, nil
}

// FormatField applies a generic field mask.
func (d *documentUseCase) FormatField(
	ctx context.Context,
	mask documentDomain.MaskType,
	input string,
) (*FormattedField, error) {
	if err := mask.Validate(); err != nil {
		return nil, err
	}

	value := documentDomain.StripField(mask, input)
	return &FormattedField{
		Mask:    mask,
		Value:   value,
		Display: documentDomain.FormatField(mask, value),
		Hint:    mask.Hint(),
	}, nil
}
