package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/anylai/signup/internal/errors"
)

func validProfile() Profile {
	return Profile{
		PhotoURL:          "https://cdn.example.com/joao.jpg",
		Name:              "João Silva",
		CRECI:             "12345-F",
		EmploymentType:    EmploymentAutonomous,
		Specialties:       []string{"Residencial", "Lançamentos"},
		ExperienceYears:   8,
		Description:       "Especialista em imóveis na zona sul.",
		State:             "SP",
		City:              "São Paulo",
		Neighborhoods:     []string{"Moema", "Vila Mariana"},
		Phone:             "1133334444",
		WhatsApp:          "11987654321",
		Email:             "joao@example.com",
		BuilderName:       "Construtora Alfa",
		TotalSales:        42,
		Rating:            95,
		SuccessfulMatches: 17,
	}
}

func TestNewCard(t *testing.T) {
	t.Run("Success_FullProfile", func(t *testing.T) {
		card := NewCard(validProfile())

		assert.Equal(t, "Foto de João Silva", card.PhotoAlt)
		assert.Equal(t, "CRECI: 12345-F", card.CRECI)
		assert.Equal(t, "AUTONOMO", card.Badge)
		assert.Equal(t, "green", card.BadgeTone)
		assert.Equal(t, "Construtora Alfa", card.Affiliation)
		assert.Equal(t, "São Paulo - SP", card.Location)
		assert.Equal(t, "8 anos de experiência", card.Experience)
		assert.Equal(t, "(11) 3333-4444", card.Phone)
		assert.Equal(t, "tel:+551133334444", card.PhoneLink)
		assert.Equal(t, "(11) 98765-4321", card.WhatsApp)
		assert.Equal(t, "https://wa.me/5511987654321", card.WhatsAppLink)
		assert.Equal(t, "95%", card.Rating)
		assert.Equal(t, 42, card.TotalSales)
		assert.Equal(t, 17, card.SuccessfulMatches)
	})

	t.Run("Success_AgencyWinsOverBuilder", func(t *testing.T) {
		profile := validProfile()
		profile.AgencyName = "Imobiliária Sol"

		assert.Equal(t, "Imobiliária Sol", NewCard(profile).Affiliation)
	})

	t.Run("Success_NoAffiliationNoContacts", func(t *testing.T) {
		profile := validProfile()
		profile.BuilderName = ""
		profile.Phone = ""
		profile.WhatsApp = ""
		profile.Specialties = nil

		card := NewCard(profile)

		assert.Empty(t, card.Affiliation)
		assert.Empty(t, card.Phone)
		assert.Empty(t, card.PhoneLink)
		assert.Empty(t, card.WhatsAppLink)
		assert.NotNil(t, card.Specialties)
	})

	t.Run("Success_BadgeTones", func(t *testing.T) {
		assert.Equal(t, "yellow", EmploymentMEI.Tone())
		assert.Equal(t, "purple", EmploymentCLT.Tone())
		assert.Equal(t, "red", EmploymentPJ.Tone())
		assert.Equal(t, "PJ", EmploymentPJ.Badge())
	})
}

func TestProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Profile)
		wantErr bool
	}{
		{name: "valid", mutate: func(p *Profile) {}},
		{name: "optional contacts", mutate: func(p *Profile) { p.Phone, p.WhatsApp, p.Email = "", "", "" }},
		{name: "missing name", mutate: func(p *Profile) { p.Name = "" }, wantErr: true},
		{name: "missing creci", mutate: func(p *Profile) { p.CRECI = " " }, wantErr: true},
		{name: "unknown employment", mutate: func(p *Profile) { p.EmploymentType = "estagio" }, wantErr: true},
		{name: "rating above 100", mutate: func(p *Profile) { p.Rating = 101 }, wantErr: true},
		{name: "negative rating", mutate: func(p *Profile) { p.Rating = -1 }, wantErr: true},
		{name: "negative experience", mutate: func(p *Profile) { p.ExperienceYears = -2 }, wantErr: true},
		{name: "negative sales", mutate: func(p *Profile) { p.TotalSales = -1 }, wantErr: true},
		{name: "short whatsapp", mutate: func(p *Profile) { p.WhatsApp = "98765" }, wantErr: true},
		{name: "malformed email", mutate: func(p *Profile) { p.Email = "joao" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			tt.mutate(&profile)

			err := profile.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
		})
	}
}

func TestErrInvalidProfile(t *testing.T) {
	assert.True(t, apperrors.Is(ErrInvalidProfile, apperrors.ErrInvalidInput))
}
