package dto

import (
	"time"

	documentDomain "github.com/anylai/signup/internal/document/domain"
	registrationDomain "github.com/anylai/signup/internal/registration/domain"
	registrationUseCase "github.com/anylai/signup/internal/registration/usecase"
)

// FormResponse is the canonical form returned to the client. The password is never echoed.
type FormResponse struct {
	Kind     string `json:"kind"`
	Document string `json:"document"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Profile  string `json:"profile"`
}

// DocumentStatusResponse is the completeness signal of the document field.
type DocumentStatusResponse struct {
	DigitsPresent  int    `json:"digits_present"`
	DigitsRequired int    `json:"digits_required"`
	IsComplete     bool   `json:"is_complete"`
	Status         string `json:"status"`
	Message        string `json:"message"`
	Counter        string `json:"counter"`
}

// ViewResponse is what the form renders.
type ViewResponse struct {
	KindLabel      string                 `json:"kind_label"`
	Document       string                 `json:"document"`
	DocumentHint   string                 `json:"document_hint"`
	DocumentStatus DocumentStatusResponse `json:"document_status"`
	Badge          string                 `json:"badge"`
	Phone          string                 `json:"phone"`
	PhoneShape     string                 `json:"phone_shape"`
	PhoneHint      string                 `json:"phone_hint"`
	ResetNotice    bool                   `json:"reset_notice"`
}

// FormStateResponse carries the updated form and its view.
type FormStateResponse struct {
	Form FormResponse `json:"form"`
	View ViewResponse `json:"view"`
}

// MapFormStateToResponse converts a form state to an API response.
func MapFormStateToResponse(state *registrationUseCase.FormState) FormStateResponse {
	return FormStateResponse{
		Form: mapForm(state.Form),
		View: mapView(state.View),
	}
}

func mapForm(form registrationDomain.Form) FormResponse {
	return FormResponse{
		Kind:     form.Kind.String(),
		Document: form.Document,
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Profile:  form.Profile.String(),
	}
}

func mapView(view registrationDomain.FormView) ViewResponse {
	result := view.DocumentResult
	return ViewResponse{
		KindLabel:    view.KindLabel,
		Document:     view.Document,
		DocumentHint: view.DocumentHint,
		DocumentStatus: DocumentStatusResponse{
			DigitsPresent:  result.DigitsPresent,
			DigitsRequired: result.DigitsRequired,
			IsComplete:     result.IsComplete,
			Status:         string(result.Status),
			Message:        result.Message,
			Counter:        result.Counter(),
		},
		Badge:       string(view.Badge),
		Phone:       view.Phone,
		PhoneShape:  string(view.PhoneShape),
		PhoneHint:   view.PhoneHint,
		ResetNotice: view.ResetNotice,
	}
}

// ReviewResponse lists the problems found in a form.
type ReviewResponse struct {
	Ready    bool              `json:"ready"`
	Problems map[string]string `json:"problems"`
}

// MapReviewToResponse converts a review to an API response.
func MapReviewToResponse(review registrationDomain.Review) ReviewResponse {
	problems := make(map[string]string, len(review.Problems))
	for field, message := range review.Problems {
		problems[string(field)] = message
	}
	return ReviewResponse{
		Ready:    review.Ready,
		Problems: problems,
	}
}

// IncompleteResponse is returned when a registration is attempted on a form that is not ready.
type IncompleteResponse struct {
	Error    string            `json:"error"`
	Message  string            `json:"message"`
	Problems map[string]string `json:"problems"`
}

// RegistrationResponse represents an accepted registration. The password hash is not exposed.
type RegistrationResponse struct {
	ID             string    `json:"id"`
	Kind           string    `json:"kind"`
	Document       string    `json:"document"`
	DocumentMasked string    `json:"document_masked"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	PhoneMasked    string    `json:"phone_masked,omitempty"`
	Profile        string    `json:"profile"`
	ProfileLabel   string    `json:"profile_label"`
	CreatedAt      time.Time `json:"created_at"`
}

// MapRegistrationToResponse converts a registration to an API response.
func MapRegistrationToResponse(registration *registrationDomain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:             registration.ID.String(),
		Kind:           registration.Kind.String(),
		Document:       registration.Document,
		DocumentMasked: documentDomain.ApplyMask(registration.Kind, registration.Document),
		Name:           registration.Name,
		Email:          registration.Email,
		Phone:          registration.Phone,
		PhoneMasked:    documentDomain.ApplyPhoneMask(registration.Phone),
		Profile:        registration.Profile.String(),
		ProfileLabel:   registration.Profile.Label(),
		CreatedAt:      registration.CreatedAt,
	}
}

// ProfileResponse is one selectable profile.
type ProfileResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ProfilesResponse lists the selectable profiles.
type ProfilesResponse struct {
	Data []ProfileResponse `json:"data"`
}

// MapProfilesToResponse converts profiles to an API response.
func MapProfilesToResponse(profiles []registrationDomain.Profile) ProfilesResponse {
	data := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		data = append(data, ProfileResponse{Value: p.String(), Label: p.Label()})
	}
	return ProfilesResponse{Data: data}
}
