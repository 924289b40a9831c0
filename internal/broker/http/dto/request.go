// Package dto provides data transfer objects for the broker card endpoint.
package dto

import (
	validation "github.com/jellydator/validation"

	brokerDomain "github.com/anylai/signup/internal/broker/domain"
)

// CardRequest is a broker profile as posted by the client.
type CardRequest struct {
	PhotoURL          string   `json:"photo_url"`
	Name              string   `json:"name"`
	CRECI             string   `json:"creci"`
	EmploymentType    string   `json:"employment_type"`
	Specialties       []string `json:"specialties"`
	ExperienceYears   int      `json:"experience_years"`
	Description       string   `json:"description"`
	State             string   `json:"state"`
	City              string   `json:"city"`
	Neighborhoods     []string `json:"neighborhoods"`
	Phone             string   `json:"phone"`
	WhatsApp          string   `json:"whatsapp"`
	Email             string   `json:"email"`
	AgencyName        string   `json:"agency_name"`
	BuilderName       string   `json:"builder_name"`
	TotalSales        int      `json:"total_sales"`
	Rating            int      `json:"rating"`
	SuccessfulMatches int      `json:"successful_matches"`
}

// Validate checks payload sizes. Profile rules are applied by the use case.
func (r *CardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PhotoURL, validation.Length(0, 2048)),
		validation.Field(&r.Specialties, validation.Length(0, 50)),
		validation.Field(&r.Description, validation.Length(0, 4096)),
		validation.Field(&r.Neighborhoods, validation.Length(0, 100)),
	)
}

// ToDomain converts the request into a broker profile.
func (r *CardRequest) ToDomain() brokerDomain.Profile {
	return brokerDomain.Profile{
		PhotoURL:          r.PhotoURL,
		Name:              r.Name,
		CRECI:             r.CRECI,
		EmploymentType:    brokerDomain.EmploymentType(r.EmploymentType),
		Specialties:       r.Specialties,
		ExperienceYears:   r.ExperienceYears,
		Description:       r.Description,
		State:             r.State,
		City:              r.City,
		Neighborhoods:     r.Neighborhoods,
		Phone:             r.Phone,
		WhatsApp:          r.WhatsApp,
		Email:             r.Email,
		AgencyName:        r.AgencyName,
		BuilderName:       r.BuilderName,
		TotalSales:        r.TotalSales,
		Rating:            r.Rating,
		SuccessfulMatches: r.SuccessfulMatches,
	}
}
