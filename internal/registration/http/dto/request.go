// Package dto provides data transfer objects for the registration endpoints.
package dto

import (
	"errors"

	validation "github.com/jellydator/validation"

	documentDomain "github.com/anylai/signup/internal/document/domain"
	registrationDomain "github.com/anylai/signup/internal/registration/domain"
)

// FormPayload is the sign-up form as the client holds it.
type FormPayload struct {
	Kind     string `json:"kind"`
	Document string `json:"document"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Profile  string `json:"profile"`
}

// Validate checks payload shape only. Field rules run in the use case review.
func (p FormPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Kind, validation.By(validateKind)),
		validation.Field(&p.Document, validation.Length(0, 64)),
		validation.Field(&p.Name, validation.Length(0, 1024)),
		validation.Field(&p.Email, validation.Length(0, 1024)),
		validation.Field(&p.Phone, validation.Length(0, 64)),
		validation.Field(&p.Password, validation.Length(0, 1024)),
		validation.Field(&p.Profile, validation.Length(0, 64)),
	)
}

// ToDomain converts the payload into a form. Masked document and phone values are stripped.
func (p FormPayload) ToDomain() registrationDomain.Form {
	kind, err := documentDomain.ParseKind(p.Kind)
	if err != nil {
		kind = documentDomain.KindIndividual
	}

	return registrationDomain.Form{
		Kind:     kind,
		Document: documentDomain.StripField(kind.MaskType(), p.Document),
		Name:     p.Name,
		Email:    p.Email,
		Phone:    documentDomain.StripField(documentDomain.MaskPhone, p.Phone),
		Password: p.Password,
		Profile:  registrationDomain.Profile(p.Profile),
	}
}

// ChangePayload is a single field edit.
type ChangePayload struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Validate checks if the change names a form field.
func (c ChangePayload) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Field,
			validation.Required.Error("change field is required"),
			validation.In(
				string(registrationDomain.FieldKind),
				string(registrationDomain.FieldDocument),
				string(registrationDomain.FieldName),
				string(registrationDomain.FieldEmail),
				string(registrationDomain.FieldPhone),
				string(registrationDomain.FieldPassword),
				string(registrationDomain.FieldProfile),
			).Error("change field is not a form field"),
		),
		validation.Field(&c.Value, validation.Length(0, 1024)),
	)
}

// ApplyRequest asks for the form that results from one change.
type ApplyRequest struct {
	Form   FormPayload   `json:"form"`
	Change ChangePayload `json:"change"`
}

// Validate checks if the apply request is valid.
func (r *ApplyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Form),
		validation.Field(&r.Change),
	)
}

// ToDomain returns the change as a domain value.
func (r *ApplyRequest) ToDomain() registrationDomain.Change {
	return registrationDomain.Change{
		Field: registrationDomain.Field(r.Change.Field),
		Value: r.Change.Value,
	}
}

// FormRequest wraps a form for review and registration.
type FormRequest struct {
	Form FormPayload `json:"form"`
}

// Validate checks if the form request is valid.
func (r *FormRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Form),
	)
}

func validateKind(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := documentDomain.ParseKind(s); err != nil {
		return errors.New("must be individual or organization")
	}
	return nil
}
