// Package http provides the HTTP handler for broker profile cards.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anylai/signup/internal/broker/http/dto"
	brokerUseCase "github.com/anylai/signup/internal/broker/usecase"
	"github.com/anylai/signup/internal/httputil"
	customValidation "github.com/anylai/signup/internal/validation"
)

// BrokerHandler handles HTTP requests for broker cards.
type BrokerHandler struct {
	brokerUseCase brokerUseCase.BrokerUseCase
	logger        *slog.Logger
}

// NewBrokerHandler creates a new broker handler.
func NewBrokerHandler(brokerUseCase brokerUseCase.BrokerUseCase, logger *slog.Logger) *BrokerHandler {
	return &BrokerHandler{
		brokerUseCase: brokerUseCase,
		logger:        logger,
	}
}

// CardHandler renders a broker profile card.
// POST /v1/brokers/card - Returns 200 OK with the card, 422 when the profile is invalid.
func (h *BrokerHandler) CardHandler(c *gin.Context) {
	var req dto.CardRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	card, err := h.brokerUseCase.BuildCard(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCardToResponse(card))
}
