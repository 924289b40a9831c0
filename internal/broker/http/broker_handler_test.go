package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anylai/signup/internal/broker/http/dto"
	brokerUseCase "github.com/anylai/signup/internal/broker/usecase"
)

func setupTestBrokerHandler(t *testing.T) *BrokerHandler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewBrokerHandler(brokerUseCase.NewBrokerUseCase(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBrokerHandler_CardHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler := setupTestBrokerHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/brokers/card", dto.CardRequest{
			Name:           "Carla Mendes",
			CRECI:          "54321-J",
			EmploymentType: "pj",
			State:          "RJ",
			City:           "Niterói",
			WhatsApp:       "(21) 99876-5432",
			AgencyName:     "Imobiliária Mar",
			Rating:         88,
		})

		handler.CardHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.CardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "PJ", response.Badge)
		assert.Equal(t, "Niterói - RJ", response.Location)
		assert.Equal(t, "(21) 99876-5432", response.WhatsApp)
		assert.Equal(t, "https://wa.me/5521998765432", response.WhatsAppLink)
		assert.Equal(t, "Imobiliária Mar", response.Affiliation)
		assert.Equal(t, "88%", response.Rating)
		assert.Equal(t, []string{}, response.Specialties)
	})

	t.Run("Error_InvalidProfile", func(t *testing.T) {
		handler := setupTestBrokerHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/brokers/card", dto.CardRequest{
			Name:           "Carla Mendes",
			CRECI:          "54321-J",
			EmploymentType: "pj",
			Rating:         150,
		})

		handler.CardHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "invalid_input", response["error"])
		assert.Contains(t, response["message"], "Rating")
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler := setupTestBrokerHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/brokers/card", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("[")))

		handler.CardHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
