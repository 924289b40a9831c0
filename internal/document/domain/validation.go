package domain

import (
	"fmt"
)

// Status is the completeness state of a document field.
type Status string

const (
	// StatusEmpty means nothing was typed yet. It is not an error state.
	StatusEmpty Status = "empty"
	// StatusIncomplete means fewer digits than required are present.
	StatusIncomplete Status = "incomplete"
	// StatusComplete means exactly the required digits are present.
	StatusComplete Status = "complete"
	// StatusOverlong means more digits than allowed were supplied without masking.
	StatusOverlong Status = "overlong"
)

// ValidationResult is the completeness signal computed for a document value.
// IsComplete holds iff DigitsPresent equals DigitsRequired. Message is empty for
// empty and complete values.
type ValidationResult struct {
	Kind           Kind
	DigitsPresent  int
	DigitsRequired int
	IsComplete     bool
	Status         Status
	Message        string
}

// Validate counts the digits of value against the length required by kind.
// Only the digit count is checked; check digits are not verified.
func Validate(kind Kind, value string) ValidationResult {
	present := CountDigits(value)
	required := kind.RequiredDigits()

	result := ValidationResult{
		Kind:           kind,
		DigitsPresent:  present,
		DigitsRequired: required,
	}

	switch {
	case present == 0:
		result.Status = StatusEmpty
	case present < required:
		result.Status = StatusIncomplete
		result.Message = fmt.Sprintf("%s incomplete, missing %d digit(s)", kind.Label(), required-present)
	case present > required:
		result.Status = StatusOverlong
		result.Message = fmt.Sprintf("%s must have exactly %d digits", kind.Label(), required)
	default:
		result.Status = StatusComplete
		result.IsComplete = true
	}

	return result
}

// Missing returns how many digits are still needed, zero when complete or overlong.
func (r ValidationResult) Missing() int {
	if r.DigitsPresent >= r.DigitsRequired {
		return 0
	}
	return r.DigitsRequired - r.DigitsPresent
}

// Counter renders the "present/required digits" counter shown under the field.
func (r ValidationResult) Counter() string {
	return fmt.Sprintf("%d/%d digits", r.DigitsPresent, r.DigitsRequired)
}
