// Package dto provides data transfer objects for the document formatting endpoints.
package dto

import (
	"errors"

	validation "github.com/jellydator/validation"

	documentDomain "github.com/anylai/signup/internal/document/domain"
	customValidation "github.com/anylai/signup/internal/validation"
)

// DocumentRequest carries a raw document value and the kind selected for it.
type DocumentRequest struct {
	Kind  string `json:"kind"`  // "individual" or "organization" ("pf"/"pj" also accepted)
	Value string `json:"value"` // Raw input, masked or not
}

// Validate checks if the document request is valid. An empty value is allowed.
func (r *DocumentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Kind,
			validation.Required,
			customValidation.NotBlank,
			validation.By(validateKind),
		),
		validation.Field(&r.Value, validation.Length(0, 64)),
	)
}

// ParsedKind returns the kind after Validate succeeded.
func (r *DocumentRequest) ParsedKind() documentDomain.Kind {
	kind, _ := documentDomain.ParseKind(r.Kind)
	return kind
}

// PhoneRequest carries a raw phone value.
type PhoneRequest struct {
	Value string `json:"value"`
}

// Validate checks if the phone request is valid.
func (r *PhoneRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Value, validation.Length(0, 64)),
	)
}

// FieldRequest carries a raw field value and the mask applied to it.
type FieldRequest struct {
	Mask  string `json:"mask"` // "cpf", "cnpj", "phone", "password" or "none"
	Value string `json:"value"`
}

// Validate checks if the field request is valid.
func (r *FieldRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Mask,
			validation.Required,
			customValidation.NotBlank,
			validation.By(validateMask),
		),
		validation.Field(&r.Value, validation.Length(0, 255)),
	)
}

func validateKind(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if _, err := documentDomain.ParseKind(s); err != nil {
		return errors.New("must be individual or organization")
	}
	return nil
}

func validateMask(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if err := documentDomain.MaskType(s).Validate(); err != nil {
		return errors.New("must be one of cpf, cnpj, phone, password, none")
	}
	return nil
}
