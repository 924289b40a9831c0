package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		value    string
		present  int
		required int
		complete bool
		status   Status
		message  string
	}{
		{
			name:     "Individual_Empty",
			kind:     KindIndividual,
			value:    "",
			present:  0,
			required: 11,
			status:   StatusEmpty,
		},
		{
			name:     "Individual_OneMissing",
			kind:     KindIndividual,
			value:    "1234567890",
			present:  10,
			required: 11,
			status:   StatusIncomplete,
			message:  "CPF incomplete, missing 1 digit(s)",
		},
		{
			name:     "Individual_Complete",
			kind:     KindIndividual,
			value:    "12345678901",
			present:  11,
			required: 11,
			complete: true,
			status:   StatusComplete,
		},
		{
			name:     "Individual_CompleteMasked",
			kind:     KindIndividual,
			value:    "123.456.789-01",
			present:  11,
			required: 11,
			complete: true,
			status:   StatusComplete,
		},
		{
			name:     "Individual_Overlong",
			kind:     KindIndividual,
			value:    "123456789012",
			present:  12,
			required: 11,
			status:   StatusOverlong,
			message:  "CPF must have exactly 11 digits",
		},
		{
			name:     "Organization_Empty",
			kind:     KindOrganization,
			value:    "",
			present:  0,
			required: 14,
			status:   StatusEmpty,
		},
		{
			name:     "Organization_Partial",
			kind:     KindOrganization,
			value:    "12345678",
			present:  8,
			required: 14,
			status:   StatusIncomplete,
			message:  "CNPJ incomplete, missing 6 digit(s)",
		},
		{
			name:     "Organization_Complete",
			kind:     KindOrganization,
			value:    "12345678000199",
			present:  14,
			required: 14,
			complete: true,
			status:   StatusComplete,
		},
		{
			name:     "Organization_Overlong",
			kind:     KindOrganization,
			value:    "123456780001990",
			present:  15,
			required: 14,
			status:   StatusOverlong,
			message:  "CNPJ must have exactly 14 digits",
		},
		{
			name:     "Individual_OnlyPunctuation",
			kind:     KindIndividual,
			value:    "..-",
			present:  0,
			required: 11,
			status:   StatusEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.kind, tt.value)

			assert.Equal(t, tt.kind, result.Kind)
			assert.Equal(t, tt.present, result.DigitsPresent)
			assert.Equal(t, tt.required, result.DigitsRequired)
			assert.Equal(t, tt.complete, result.IsComplete)
			assert.Equal(t, result.DigitsPresent == result.DigitsRequired, result.IsComplete)
			assert.Equal(t, tt.status, result.Status)
			assert.Equal(t, tt.message, result.Message)
		})
	}
}

func TestValidationResult_Missing(t *testing.T) {
	assert.Equal(t, 11, Validate(KindIndividual, "").Missing())
	assert.Equal(t, 1, Validate(KindIndividual, "1234567890").Missing())
	assert.Equal(t, 0, Validate(KindIndividual, "12345678901").Missing())
	assert.Equal(t, 0, Validate(KindIndividual, "123456789012").Missing())
}

func TestValidationResult_Counter(t *testing.T) {
	assert.Equal(t, "5/14 digits", Validate(KindOrganization, "12.345").Counter())
}

func TestValidate_StateTransitions(t *testing.T) {
	value := ""
	assert.Equal(t, StatusEmpty, Validate(KindIndividual, value).Status)

	value = "1234"
	assert.Equal(t, StatusIncomplete, Validate(KindIndividual, value).Status)

	value = "12345678901"
	assert.Equal(t, StatusComplete, Validate(KindIndividual, value).Status)

	value = value[:len(value)-1]
	assert.Equal(t, StatusIncomplete, Validate(KindIndividual, value).Status)

	value = ""
	assert.Equal(t, StatusEmpty, Validate(KindIndividual, value).Status)
}
