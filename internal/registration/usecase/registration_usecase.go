package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	documentDomain "github.com/anylai/signup/internal/document/domain"
	apperrors "github.com/anylai/signup/internal/errors"
	registrationDomain "github.com/anylai/signup/internal/registration/domain"
	registrationService "github.com/anylai/signup/internal/registration/service"
	customValidation "github.com/anylai/signup/internal/validation"
)

// DefaultPasswordMinLength is used when no minimum is configured.
const DefaultPasswordMinLength = 8

type registrationUseCase struct {
	passwordService   registrationService.PasswordService
	passwordMinLength int
}

// NewRegistrationUseCase creates a new RegistrationUseCase. A passwordMinLength
// below one falls back to DefaultPasswordMinLength.
func NewRegistrationUseCase(
	passwordService registrationService.PasswordService,
	passwordMinLength int,
) RegistrationUseCase {
	if passwordMinLength < 1 {
		passwordMinLength = DefaultPasswordMinLength
	}
	return &registrationUseCase{
		passwordService:   passwordService,
		passwordMinLength: passwordMinLength,
	}
}

// Apply applies one field change and renders the resulting form.
func (r *registrationUseCase) Apply(
	ctx context.Context,
	form registrationDomain.Form,
	change registrationDomain.Change,
) (*FormState, error) {
	next, err := form.Apply(change)
	if err != nil {
		return nil, err
	}
	return &FormState{Form: next, View: next.View()}, nil
}

// Check reviews the whole form without side effects.
func (r *registrationUseCase) Check(
	ctx context.Context,
	form registrationDomain.Form,
) (*registrationDomain.Review, error) {
	review := r.review(form.Normalize())
	return &review, nil
}

// Register reviews the form and, when it is ready, builds the registration.
func (r *registrationUseCase) Register(
	ctx context.Context,
	form registrationDomain.Form,
) (*registrationDomain.Registration, error) {
	form = form.Normalize()

	review := r.review(form)
	if !review.Ready {
		return nil, &registrationDomain.IncompleteFormError{Review: review}
	}

	passwordHash, err := r.passwordService.Hash(form.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash registration password")
	}

	return &registrationDomain.Registration{
		ID:           uuid.Must(uuid.NewV7()),
		Kind:         form.Kind,
		Document:     documentDomain.ExtractDigits(form.Document),
		Name:         strings.TrimSpace(form.Name),
		Email:        strings.ToLower(strings.TrimSpace(form.Email)),
		Phone:        documentDomain.ExtractDigits(form.Phone),
		PasswordHash: passwordHash,
		Profile:      form.Profile,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// review validates every field of form with jellydator/validation.
func (r *registrationUseCase) review(form registrationDomain.Form) registrationDomain.Review {
	errs := validation.Errors{
		string(registrationDomain.FieldKind): validation.Validate(form.Kind,
			validation.By(validateKind),
		),
		string(registrationDomain.FieldDocument): validation.Validate(form.Document,
			validation.Required.Error("document is required"),
			customValidation.DocumentComplete{Kind: form.Kind},
		),
		string(registrationDomain.FieldName): validation.Validate(form.Name,
			validation.Required.Error("name is required"),
			customValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		string(registrationDomain.FieldEmail): validation.Validate(form.Email,
			validation.Required.Error("email is required"),
			customValidation.NotBlank,
			customValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		string(registrationDomain.FieldPhone): validation.Validate(form.Phone,
			customValidation.PhoneDigits,
		),
		string(registrationDomain.FieldPassword): validation.Validate(form.Password,
			validation.Required.Error("password is required"),
			validation.Length(0, 128).Error("password must be at most 128 characters"),
			customValidation.PasswordStrength{MinLength: r.passwordMinLength},
		),
		string(registrationDomain.FieldProfile): validation.Validate(form.Profile,
			validation.Required.Error("profile is required"),
			validation.By(validateProfile),
		),
	}

	problems := make(map[registrationDomain.Field]string)
	for field, err := range errs {
		if err != nil {
			problems[registrationDomain.Field(field)] = err.Error()
		}
	}

	return registrationDomain.Review{
		Ready:    len(problems) == 0,
		Problems: problems,
	}
}

func validateKind(value interface{}) error {
	kind, _ := value.(documentDomain.Kind)
	if kind.Validate() != nil {
		return validation.NewError("validation_kind", "must be individual or organization")
	}
	return nil
}

func validateProfile(value interface{}) error {
	profile, _ := value.(registrationDomain.Profile)
	if profile.Validate() != nil {
		return validation.NewError("validation_profile", "must be one of the offered profiles")
	}
	return nil
}
