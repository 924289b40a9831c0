package dto

import (
	brokerDomain "github.com/anylai/signup/internal/broker/domain"
)

// CardResponse is a rendered broker card.
type CardResponse struct {
	PhotoURL          string   `json:"photo_url"`
	PhotoAlt          string   `json:"photo_alt"`
	Name              string   `json:"name"`
	CRECI             string   `json:"creci"`
	Badge             string   `json:"badge"`
	BadgeTone         string   `json:"badge_tone"`
	Affiliation       string   `json:"affiliation,omitempty"`
	Specialties       []string `json:"specialties"`
	Description       string   `json:"description"`
	Location          string   `json:"location"`
	Experience        string   `json:"experience"`
	Neighborhoods     []string `json:"neighborhoods"`
	Phone             string   `json:"phone"`
	PhoneLink         string   `json:"phone_link,omitempty"`
	WhatsApp          string   `json:"whatsapp"`
	WhatsAppLink      string   `json:"whatsapp_link,omitempty"`
	Email             string   `json:"email"`
	TotalSales        int      `json:"total_sales"`
	Rating            string   `json:"rating"`
	SuccessfulMatches int      `json:"successful_matches"`
}

// MapCardToResponse converts a card to an API response.
func MapCardToResponse(card *brokerDomain.Card) CardResponse {
	return CardResponse{
		PhotoURL:          card.PhotoURL,
		PhotoAlt:          card.PhotoAlt,
		Name:              card.Name,
		CRECI:             card.CRECI,
		Badge:             card.Badge,
		BadgeTone:         card.BadgeTone,
		Affiliation:       card.Affiliation,
		Specialties:       card.Specialties,
		Description:       card.Description,
		Location:          card.Location,
		Experience:        card.Experience,
		Neighborhoods:     card.Neighborhoods,
		Phone:             card.Phone,
		PhoneLink:         card.PhoneLink,
		WhatsApp:          card.WhatsApp,
		WhatsAppLink:      card.WhatsAppLink,
		Email:             card.Email,
		TotalSales:        card.TotalSales,
		Rating:            card.Rating,
		SuccessfulMatches: card.SuccessfulMatches,
	}
}
