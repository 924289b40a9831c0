package domain

import (
	"fmt"
	"strings"

	documentDomain "github.com/anylai/signup/internal/document/domain"
)

// Card is the display model of a broker profile.
type Card struct {
	PhotoURL          string
	PhotoAlt          string
	Name              string
	CRECI             string
	Badge             string
	BadgeTone         string
	Affiliation       string
	Specialties       []string
	Description       string
	Location          string
	Experience        string
	Neighborhoods     []string
	Phone             string
	PhoneLink         string
	WhatsApp          string
	WhatsAppLink      string
	Email             string
	TotalSales        int
	Rating            string
	SuccessfulMatches int
}

// NewCard renders profile for display. The agency name wins over the builder name.
func NewCard(profile Profile) Card {
	affiliation := strings.TrimSpace(profile.AgencyName)
	if affiliation == "" {
		affiliation = strings.TrimSpace(profile.BuilderName)
	}

	return Card{
		PhotoURL:          profile.PhotoURL,
		PhotoAlt:          "Foto de " + profile.Name,
		Name:              profile.Name,
		CRECI:             "CRECI: " + profile.CRECI,
		Badge:             profile.EmploymentType.Badge(),
		BadgeTone:         profile.EmploymentType.Tone(),
		Affiliation:       affiliation,
		Specialties:       nonNil(profile.Specialties),
		Description:       profile.Description,
		Location:          location(profile.City, profile.State),
		Experience:        fmt.Sprintf("%d anos de experiência", profile.ExperienceYears),
		Neighborhoods:     nonNil(profile.Neighborhoods),
		Phone:             documentDomain.ApplyPhoneMask(profile.Phone),
		PhoneLink:         link("tel:+55", profile.Phone),
		WhatsApp:          documentDomain.ApplyPhoneMask(profile.WhatsApp),
		WhatsAppLink:      link("https://wa.me/55", profile.WhatsApp),
		Email:             profile.Email,
		TotalSales:        profile.TotalSales,
		Rating:            fmt.Sprintf("%d%%", profile.Rating),
		SuccessfulMatches: profile.SuccessfulMatches,
	}
}

func location(city, state string) string {
	switch {
	case city == "":
		return state
	case state == "":
		return city
	default:
		return city + " - " + state
	}
}

func link(prefix, phone string) string {
	digits := documentDomain.ExtractDigits(phone)
	if digits == "" {
		return ""
	}
	return prefix + digits
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
