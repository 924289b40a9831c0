// Package http provides HTTP handlers for document, phone and field formatting.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	documentDomain "github.com/anylai/signup/internal/document/domain"
	"github.com/anylai/signup/internal/document/http/dto"
	documentUseCase "github.com/anylai/signup/internal/document/usecase"
	"github.com/anylai/signup/internal/httputil"
	customValidation "github.com/anylai/signup/internal/validation"
)

// DocumentHandler handles HTTP requests for the formatting operations.
type DocumentHandler struct {
	documentUseCase documentUseCase.DocumentUseCase
	logger          *slog.Logger
}

// NewDocumentHandler creates a new document handler with required dependencies.
func NewDocumentHandler(documentUseCase documentUseCase.DocumentUseCase, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		documentUseCase: documentUseCase,
		logger:          logger,
	}
}

// FormatHandler masks a document value for its kind.
// POST /v1/documents/format - Returns 200 OK with digits, masked value and hint.
func (h *DocumentHandler) FormatHandler(c *gin.Context) {
	var req dto.DocumentRequest
	if !h.bind(c, &req) {
		return
	}

	formatted, err := h.documentUseCase.Format(c.Request.Context(), req.ParsedKind(), req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDocumentToResponse(formatted))
}

// ValidateHandler reports the completeness of a document value.
// POST /v1/documents/validate - Returns 200 OK for every field state, including
// incomplete values; the status field carries the outcome.
func (h *DocumentHandler) ValidateHandler(c *gin.Context) {
	var req dto.DocumentRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.documentUseCase.Validate(c.Request.Context(), req.ParsedKind(), req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapValidationToResponse(result))
}

// FormatPhoneHandler masks a phone number.
// POST /v1/phones/format - Returns 200 OK with digits, masked value and shape.
func (h *DocumentHandler) FormatPhoneHandler(c *gin.Context) {
	var req dto.PhoneRequest
	if !h.bind(c, &req) {
		return
	}

	formatted, err := h.documentUseCase.FormatPhone(c.Request.Context(), req.Value)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPhoneToResponse(formatted))
}

// FormatFieldHandler applies a generic field mask.
// POST /v1/fields/format - Returns 200 OK with the stored and displayed values.
func (h *DocumentHandler) FormatFieldHandler(c *gin.Context) {
	var req dto.FieldRequest
	if !h.bind(c, &req) {
		return
	}

	formatted, err := h.documentUseCase.FormatField(
		c.Request.Context(),
		documentDomain.MaskType(req.Mask),
		req.Value,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapFieldToResponse(formatted))
}

type validatable interface {
	Validate() error
}

// bind parses and validates the JSON body, writing the error response on failure.
func (h *DocumentHandler) bind(c *gin.Context, req validatable) bool {
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
