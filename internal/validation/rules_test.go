package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	documentDomain "github.com/anylai/signup/internal/document/domain"
)

func TestPasswordStrength(t *testing.T) {
	rule := PasswordStrength{
		MinLength:      8,
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	}

	tests := []struct {
		name      string
		password  string
		shouldErr bool
		errMsg    string
	}{
		{name: "valid password", password: "SecurePass123!"},
		{name: "empty left to required", password: ""},
		{name: "too short", password: "Short1!", shouldErr: true, errMsg: "at least 8 characters"},
		{name: "missing uppercase", password: "securepass123!", shouldErr: true, errMsg: "uppercase letter"},
		{name: "missing lowercase", password: "SECUREPASS123!", shouldErr: true, errMsg: "lowercase letter"},
		{name: "missing number", password: "SecurePass!", shouldErr: true, errMsg: "number"},
		{name: "missing special char", password: "SecurePass123", shouldErr: true, errMsg: "special character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rule.Validate(tt.password)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPasswordStrength_MinLengthOnly(t *testing.T) {
	rule := PasswordStrength{MinLength: 8}

	assert.NoError(t, rule.Validate("abcdefgh"))
	assert.NoError(t, rule.Validate("çãõéíúâê"))
	assert.Error(t, rule.Validate("abcdefg"))
	assert.Error(t, rule.Validate(42))
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		shouldErr bool
	}{
		{name: "valid email", email: "broker@example.com"},
		{name: "valid email with subdomain", email: "broker@mail.example.com.br"},
		{name: "valid email with plus", email: "broker+leads@example.com"},
		{name: "invalid - no @", email: "brokerexample.com", shouldErr: true},
		{name: "invalid - no domain", email: "broker@", shouldErr: true},
		{name: "invalid - no TLD", email: "broker@example", shouldErr: true},
		{name: "invalid - spaces", email: "broker @example.com", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email.Validate(tt.email)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("Maria"))
	assert.Error(t, NotBlank.Validate("   "))
	assert.Error(t, NotBlank.Validate(" \t\n "))
}

func TestDigitsOnly(t *testing.T) {
	assert.NoError(t, DigitsOnly.Validate("12345678901"))
	assert.Error(t, DigitsOnly.Validate("123.456.789-01"))
}

func TestDocumentComplete(t *testing.T) {
	tests := []struct {
		name   string
		kind   documentDomain.Kind
		value  string
		errMsg string
	}{
		{name: "complete individual", kind: documentDomain.KindIndividual, value: "12345678901"},
		{name: "complete organization", kind: documentDomain.KindOrganization, value: "12345678000199"},
		{name: "empty left to required", kind: documentDomain.KindIndividual, value: ""},
		{
			name:   "incomplete individual",
			kind:   documentDomain.KindIndividual,
			value:  "1234567890",
			errMsg: "CPF incomplete, missing 1 digit(s)",
		},
		{
			name:   "individual digits under organization",
			kind:   documentDomain.KindOrganization,
			value:  "12345678901",
			errMsg: "CNPJ incomplete, missing 3 digit(s)",
		},
		{
			name:   "overlong individual",
			kind:   documentDomain.KindIndividual,
			value:  "123456789012",
			errMsg: "CPF must have exactly 11 digits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DocumentComplete{Kind: tt.kind}.Validate(tt.value)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.errMsg)

			var vErr validation.Error
			if assert.ErrorAs(t, err, &vErr) {
				assert.Contains(t, vErr.Code(), "validation_document_")
			}
		})
	}
}

func TestPhoneDigits(t *testing.T) {
	assert.NoError(t, PhoneDigits.Validate("1133334444"))
	assert.NoError(t, PhoneDigits.Validate("11999998888"))
	assert.NoError(t, PhoneDigits.Validate(""))
	assert.Error(t, PhoneDigits.Validate("119999"))
	assert.Error(t, PhoneDigits.Validate("119999988881"))
}

func TestWrapValidationError(t *testing.T) {
	assert.NoError(t, WrapValidationError(nil))

	err := WrapValidationError(assert.AnError)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input")
}
