// Package domain defines the document and phone formatting rules used by the sign-up form.
// Every function in this package is pure: it never fails and never keeps state between calls.
package domain

import (
	"strings"
)

// Kind identifies whether a registrant is an individual or an organization.
type Kind string

const (
	// KindIndividual is a natural person identified by an 11 digit CPF.
	KindIndividual Kind = "individual"
	// KindOrganization is a legal entity identified by a 14 digit CNPJ.
	KindOrganization Kind = "organization"
)

// Required digit counts per kind.
const (
	IndividualDigits   = 11
	OrganizationDigits = 14
)

// ParseKind converts a selector value into a Kind. Besides the canonical names it
// accepts the short "pf"/"pj" selector values used by the web form.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "individual", "pf":
		return KindIndividual, nil
	case "organization", "pj":
		return KindOrganization, nil
	default:
		return "", ErrInvalidKind
	}
}

// Validate checks if the kind is known.
func (k Kind) Validate() error {
	switch k {
	case KindIndividual, KindOrganization:
		return nil
	default:
		return ErrInvalidKind
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// RequiredDigits returns how many digits a complete document of this kind has.
// Unknown kinds fall back to the individual length.
func (k Kind) RequiredDigits() int {
	if k == KindOrganization {
		return OrganizationDigits
	}
	return IndividualDigits
}

// Label returns the document name shown next to the field.
func (k Kind) Label() string {
	if k == KindOrganization {
		return "CNPJ"
	}
	return "CPF"
}

// MaskType returns the field mask that renders documents of this kind.
func (k Kind) MaskType() MaskType {
	if k == KindOrganization {
		return MaskCNPJ
	}
	return MaskCPF
}
