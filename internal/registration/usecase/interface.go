// Package usecase implements the sign-up form workflow: field edits, review and registration.
package usecase

import (
	"context"

	registrationDomain "github.com/anylai/signup/internal/registration/domain"
)

// FormState is a form together with its rendered view.
type FormState struct {
	Form registrationDomain.Form
	View registrationDomain.FormView
}

// RegistrationUseCase defines the sign-up operations. None of them store anything.
type RegistrationUseCase interface {
	// Apply applies one field change and renders the resulting form.
	Apply(ctx context.Context, form registrationDomain.Form, change registrationDomain.Change) (*FormState, error)
	// Check reviews the whole form and reports every field problem.
	Check(ctx context.Context, form registrationDomain.Form) (*registrationDomain.Review, error)
	// Register turns a ready form into a Registration with a hashed password.
	// A form that fails review returns an *IncompleteFormError.
	Register(ctx context.Context, form registrationDomain.Form) (*registrationDomain.Registration, error)
}
