// Package http provides HTTP handlers for the sign-up form workflow.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/anylai/signup/internal/errors"
	"github.com/anylai/signup/internal/httputil"
	registrationDomain "github.com/anylai/signup/internal/registration/domain"
	"github.com/anylai/signup/internal/registration/http/dto"
	registrationUseCase "github.com/anylai/signup/internal/registration/usecase"
	customValidation "github.com/anylai/signup/internal/validation"
)

// RegistrationHandler handles HTTP requests for the sign-up form.
type RegistrationHandler struct {
	registrationUseCase registrationUseCase.RegistrationUseCase
	logger              *slog.Logger
}

// NewRegistrationHandler creates a new registration handler with required dependencies.
func NewRegistrationHandler(
	registrationUseCase registrationUseCase.RegistrationUseCase,
	logger *slog.Logger,
) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUseCase: registrationUseCase,
		logger:              logger,
	}
}

// ListProfilesHandler lists the selectable profiles.
// GET /v1/registrations/profiles - Returns 200 OK.
func (h *RegistrationHandler) ListProfilesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MapProfilesToResponse(registrationDomain.Profiles()))
}

// ApplyHandler applies one field change to the form.
// POST /v1/registrations/form - Returns 200 OK with the new form and its view.
func (h *RegistrationHandler) ApplyHandler(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.bind(c, &req) {
		return
	}

	state, err := h.registrationUseCase.Apply(c.Request.Context(), req.Form.ToDomain(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFormStateToResponse(state))
}

// CheckHandler reviews the whole form.
// POST /v1/registrations/check - Returns 200 OK whether or not the form is ready.
func (h *RegistrationHandler) CheckHandler(c *gin.Context) {
	var req dto.FormRequest
	if !h.bind(c, &req) {
		return
	}

	review, err := h.registrationUseCase.Check(c.Request.Context(), req.Form.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapReviewToResponse(*review))
}

// RegisterHandler registers a ready form.
// POST /v1/registrations - Returns 201 Created, or 422 with the field problems.
func (h *RegistrationHandler) RegisterHandler(c *gin.Context) {
	var req dto.FormRequest
	if !h.bind(c, &req) {
		return
	}

	registration, err := h.registrationUseCase.Register(c.Request.Context(), req.Form.ToDomain())
	if err != nil {
		var incomplete *registrationDomain.IncompleteFormError
		if apperrors.As(err, &incomplete) {
			h.logger.Warn("registration rejected", slog.String("problems", incomplete.Review.Summary()))
			review := dto.MapReviewToResponse(incomplete.Review)
			c.JSON(http.StatusUnprocessableEntity, dto.IncompleteResponse{
				Error:    "incomplete",
				Message:  registrationDomain.ErrFormIncomplete.Error(),
				Problems: review.Problems,
			})
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("registration accepted",
		slog.String("registration_id", registration.ID.String()),
		slog.String("profile", registration.Profile.String()),
	)
	c.JSON(http.StatusCreated, dto.MapRegistrationToResponse(registration))
}

type validatable interface {
	Validate() error
}

// bind parses and validates the JSON body, writing the error response on failure.
func (h *RegistrationHandler) bind(c *gin.Context, req validatable) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return false
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return false
	}

	return true
}
