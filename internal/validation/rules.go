// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	documentDomain "github.com/anylai/signup/internal/document/domain"
	apperrors "github.com/anylai/signup/internal/errors"
)

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// PasswordStrength validates password meets the configured requirements.
// The sign-up form only asks for MinLength; the other switches are off by default.
type PasswordStrength struct {
	MinLength      int
	RequireUpper   bool
	RequireLower   bool
	RequireNumber  bool
	RequireSpecial bool
}

// Validate checks if the password meets the configured requirements
func (p PasswordStrength) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_password_strength", "password must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}

	if len([]rune(s)) < p.MinLength {
		return validation.NewError(
			"validation_password_min_length",
			fmt.Sprintf("password must be at least %d characters", p.MinLength),
		)
	}

	if p.RequireUpper && !hasRune(s, unicode.IsUpper) {
		return validation.NewError(
			"validation_password_uppercase",
			"password must contain at least one uppercase letter",
		)
	}

	if p.RequireLower && !hasRune(s, unicode.IsLower) {
		return validation.NewError(
			"validation_password_lowercase",
			"password must contain at least one lowercase letter",
		)
	}

	if p.RequireNumber && !hasRune(s, unicode.IsNumber) {
		return validation.NewError("validation_password_number", "password must contain at least one number")
	}

	if p.RequireSpecial && !hasRune(s, isSpecial) {
		return validation.NewError(
			"validation_password_special",
			"password must contain at least one special character",
		)
	}

	return nil
}

func hasRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}
	return false
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// DigitsOnly validates that a stored value was stripped of its mask.
var DigitsOnly = validation.NewStringRuleWithError(
	func(s string) bool {
		return documentDomain.ExtractDigits(s) == s
	},
	validation.NewError("validation_digits_only", "must contain only digits"),
)

// DocumentComplete validates that a document value has exactly the digits its kind requires.
// The rule reuses the completeness message shown under the field.
type DocumentComplete struct {
	Kind documentDomain.Kind
}

// Validate checks the digit count of the document.
func (d DocumentComplete) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_document_type", "document must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}

	result := documentDomain.Validate(d.Kind, s)
	if result.IsComplete {
		return nil
	}
	return validation.NewError("validation_document_"+string(result.Status), result.Message)
}

// PhoneDigits validates that a phone number is either a fixed line or a mobile number.
var PhoneDigits = validation.NewStringRuleWithError(
	func(s string) bool {
		n := documentDomain.CountDigits(s)
		return n == documentDomain.FixedLinePhoneDigits || n == documentDomain.MobilePhoneDigits
	},
	validation.NewError("validation_phone_digits", "must have 10 or 11 digits"),
)
