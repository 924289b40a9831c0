package domain

// MaskType selects how a form field is displayed and stored.
type MaskType string

const (
	MaskCPF      MaskType = "cpf"
	MaskCNPJ     MaskType = "cnpj"
	MaskPhone    MaskType = "phone"
	MaskPassword MaskType = "password"
	MaskNone     MaskType = "none"
)

// Validate checks if the mask type is known.
func (m MaskType) Validate() error {
	switch m {
	case MaskCPF, MaskCNPJ, MaskPhone, MaskPassword, MaskNone:
		return nil
	default:
		return ErrInvalidMaskType
	}
}

// String returns the string representation of the mask type.
func (m MaskType) String() string {
	return string(m)
}

// Hint returns the format example shown under masked fields.
// Password and unmasked fields have no hint.
func (m MaskType) Hint() string {
	switch m {
	case MaskCPF:
		return "999.999.999-99"
	case MaskCNPJ:
		return "99.999.999/9999-99"
	case MaskPhone:
		return "(99) 99999-9999"
	default:
		return ""
	}
}

// Masked reports whether the field keeps only digits.
func (m MaskType) Masked() bool {
	switch m {
	case MaskCPF, MaskCNPJ, MaskPhone:
		return true
	default:
		return false
	}
}

// FormatField renders a stored field value for display.
func FormatField(mask MaskType, value string) string {
	if value == "" {
		return ""
	}
	switch mask {
	case MaskCPF:
		return ApplyMask(KindIndividual, value)
	case MaskCNPJ:
		return ApplyMask(KindOrganization, value)
	case MaskPhone:
		return ApplyPhoneMask(value)
	default:
		return value
	}
}

// StripField converts what the user typed into the canonical value the caller stores.
// Masked fields keep digits only; password and unmasked fields are kept verbatim.
func StripField(mask MaskType, input string) string {
	if mask.Masked() {
		return ExtractDigits(input)
	}
	return input
}
