package dto

import (
	documentDomain "github.com/anylai/signup/internal/document/domain"
	documentUseCase "github.com/anylai/signup/internal/document/usecase"
)

// DocumentResponse is a document rendered for display.
type DocumentResponse struct {
	Kind   string `json:"kind"`
	Label  string `json:"label"`
	Digits string `json:"digits"`
	Masked string `json:"masked"`
	Hint   string `json:"hint"`
}

// MapDocumentToResponse converts a formatted document to an API response.
func MapDocumentToResponse(doc *documentUseCase.FormattedDocument) DocumentResponse {
	return DocumentResponse{
		Kind:   doc.Kind.String(),
		Label:  doc.Kind.Label(),
		Digits: doc.Digits,
		Masked: doc.Masked,
		Hint:   doc.Hint,
	}
}

// ValidationResponse is the completeness signal of a document value.
type ValidationResponse struct {
	Kind           string `json:"kind"`
	DigitsPresent  int    `json:"digits_present"`
	DigitsRequired int    `json:"digits_required"`
	IsComplete     bool   `json:"is_complete"`
	Status         string `json:"status"`
	Message        string `json:"message"`
	Counter        string `json:"counter"`
}

// MapValidationToResponse converts a validation result to an API response.
func MapValidationToResponse(result *documentDomain.ValidationResult) ValidationResponse {
	return ValidationResponse{
		Kind:           result.Kind.String(),
		DigitsPresent:  result.DigitsPresent,
		DigitsRequired: result.DigitsRequired,
		IsComplete:     result.IsComplete,
		Status:         string(result.Status),
		Message:        result.Message,
		Counter:        result.Counter(),
	}
}

// PhoneResponse is a phone number rendered for display.
type PhoneResponse struct {
	Digits string `json:"digits"`
	Masked string `json:"masked"`
	Shape  string `json:"shape"`
}

// MapPhoneToResponse converts a formatted phone to an API response.
func MapPhoneToResponse(phone *documentUseCase.FormattedPhone) PhoneResponse {
	return PhoneResponse{
		Digits: phone.Digits,
		Masked: phone.Masked,
		Shape:  string(phone.Shape),
	}
}

// FieldResponse is a generic field rendered for display.
type FieldResponse struct {
	Mask    string `json:"mask"`
	Value   string `json:"value"`
	Display string `json:"display"`
	Hint    string `json:"hint"`
}

// MapFieldToResponse converts a formatted field to an API response.
func MapFieldToResponse(field *documentUseCase.FormattedField) FieldResponse {
	return FieldResponse{
		Mask:    field.Mask.String(),
		Value:   field.Value,
		Display: field.Display,
		Hint:    field.Hint,
	}
}
