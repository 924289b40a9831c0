// Package domain defines the sign-up form state and the registration entity.
package domain

import (
	documentDomain "github.com/anylai/signup/internal/document/domain"
)

// Field names a form input.
type Field string

const (
	FieldKind     Field = "kind"
	FieldDocument Field = "document"
	FieldName     Field = "name"
	FieldEmail    Field = "email"
	FieldPhone    Field = "phone"
	FieldPassword Field = "password"
	FieldProfile  Field = "profile"
)

// Change is a single edit made to the form.
type Change struct {
	Field Field
	Value string
}

// Form holds the canonical values of the sign-up form. Document and Phone keep
// digits only; the masked text is derived on every render by View.
type Form struct {
	Kind     documentDomain.Kind
	Document string
	Name     string
	Email    string
	Phone    string
	Password string
	Profile  Profile
}

// NewForm returns an empty form with the individual kind selected.
func NewForm() Form {
	return Form{Kind: documentDomain.KindIndividual}
}

// Normalize fills the default kind on forms built from a zero value.
func (f Form) Normalize() Form {
	if f.Kind == "" {
		f.Kind = documentDomain.KindIndividual
	}
	return f
}

// Apply returns the form that results from change. The receiver is not modified.
//
// Selecting a different kind clears Document, since a partial CPF is never a valid
// prefix of a CNPJ. Selecting the kind that is already active changes nothing.
func (f Form) Apply(change Change) (Form, error) {
	next := f.Normalize()

	switch change.Field {
	case FieldKind:
		kind, err := documentDomain.ParseKind(change.Value)
		if err != nil {
			return f, err
		}
		if kind != next.Kind {
			next.Kind = kind
			next.Document = ""
		}
	case FieldDocument:
		next.Document = documentDomain.StripField(next.Kind.MaskType(), change.Value)
	case FieldPhone:
		next.Phone = documentDomain.StripField(documentDomain.MaskPhone, change.Value)
	case FieldName:
		next.Name = change.Value
	case FieldEmail:
		next.Email = change.Value
	case FieldPassword:
		next.Password = change.Value
	case FieldProfile:
		next.Profile = Profile(change.Value)
	default:
		return f, ErrUnknownField
	}

	return next, nil
}

// Badge is the status chip shown next to the document field.
type Badge string

const (
	BadgeAwaiting   Badge = "awaiting"
	BadgeValid      Badge = "valid"
	BadgeIncomplete Badge = "incomplete"
)

// FormView is everything the form renders from the current values.
type FormView struct {
	KindLabel      string
	Document       string
	DocumentHint   string
	DocumentResult documentDomain.ValidationResult
	Badge          Badge
	Phone          string
	PhoneShape     documentDomain.PhoneShape
	PhoneHint      string
	// ResetNotice is set while a document is typed, warning that a kind change clears it.
	ResetNotice bool
}

// View derives the display state of the form.
func (f Form) View() FormView {
	f = f.Normalize()
	result := documentDomain.Validate(f.Kind, f.Document)

	return FormView{
		KindLabel:      f.Kind.Label(),
		Document:       documentDomain.ApplyMask(f.Kind, f.Document),
		DocumentHint:   f.Kind.MaskType().Hint(),
		DocumentResult: result,
		Badge:          badgeFor(result.Status),
		Phone:          documentDomain.ApplyPhoneMask(f.Phone),
		PhoneShape:     documentDomain.PhoneShapeFor(f.Phone),
		PhoneHint:      documentDomain.MaskPhone.Hint(),
		ResetNotice:    f.Document != "",
	}
}

func badgeFor(status documentDomain.Status) Badge {
	switch status {
	case documentDomain.StatusEmpty:
		return BadgeAwaiting
	case documentDomain.StatusComplete:
		return BadgeValid
	default:
		return BadgeIncomplete
	}
}
