// Package domain defines the broker profile and the card rendered from it.
package domain

import (
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/anylai/signup/internal/errors"
	customValidation "github.com/anylai/signup/internal/validation"
)

// EmploymentType is how a broker works.
type EmploymentType string

const (
	EmploymentAutonomous EmploymentType = "autonomo"
	EmploymentMEI        EmploymentType = "mei"
	EmploymentCLT        EmploymentType = "clt"
	EmploymentPJ         EmploymentType = "pj"
)

// ErrInvalidProfile indicates a broker profile failed validation.
var ErrInvalidProfile = errors.Wrap(errors.ErrInvalidInput, "invalid broker profile")

// Profile is the data a broker publishes.
type Profile struct {
	PhotoURL          string
	Name              string
	CRECI             string
	EmploymentType    EmploymentType
	Specialties       []string
	ExperienceYears   int
	Description       string
	State             string
	City              string
	Neighborhoods     []string
	Phone             string
	WhatsApp          string
	Email             string
	AgencyName        string
	BuilderName       string
	TotalSales        int
	Rating            int // percent, 0 to 100
	SuccessfulMatches int
}

// Validate checks the profile with jellydator/validation. Errors are keyed by field name.
func (p Profile) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&p.CRECI, validation.Required, customValidation.NotBlank, validation.Length(1, 32)),
		validation.Field(&p.EmploymentType,
			validation.Required,
			validation.In(EmploymentAutonomous, EmploymentMEI, EmploymentCLT, EmploymentPJ).
				Error("must be one of autonomo, mei, clt, pj"),
		),
		validation.Field(&p.ExperienceYears, validation.Min(0)),
		validation.Field(&p.Phone, customValidation.PhoneDigits),
		validation.Field(&p.WhatsApp, customValidation.PhoneDigits),
		validation.Field(&p.Email, customValidation.Email),
		validation.Field(&p.TotalSales, validation.Min(0)),
		validation.Field(&p.Rating, validation.Min(0), validation.Max(100)),
		validation.Field(&p.SuccessfulMatches, validation.Min(0)),
	)
}

// Badge returns the upper-case employment type shown next to the CRECI.
func (e EmploymentType) Badge() string {
	return strings.ToUpper(string(e))
}

// Tone returns the color family of the employment badge.
func (e EmploymentType) Tone() string {
	switch e {
	case EmploymentAutonomous:
		return "green"
	case EmploymentMEI:
		return "yellow"
	case EmploymentCLT:
		return "purple"
	default:
		return "red"
	}
}
