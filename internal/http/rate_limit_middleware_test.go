package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitedRouter(t *testing.T, rps float64, burst int) *gin.Engine {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	router := gin.New()
	router.Use(RateLimitMiddleware(ctx, rps, burst, slog.New(slog.NewTextHandler(io.Discard, nil))))
	router.POST("/v1/phones/format", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"masked": "(11) 9"})
	})
	return router
}

func doRequest(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/phones/format", nil)
	req.RemoteAddr = remoteAddr
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("Success_WithinBurst", func(t *testing.T) {
		router := newRateLimitedRouter(t, 1, 3)

		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusOK, doRequest(router, "10.0.0.1:1234").Code)
		}
	})

	t.Run("Error_BurstExceeded", func(t *testing.T) {
		router := newRateLimitedRouter(t, 0.5, 2)

		assert.Equal(t, http.StatusOK, doRequest(router, "10.0.0.2:1234").Code)
		assert.Equal(t, http.StatusOK, doRequest(router, "10.0.0.2:1234").Code)

		w := doRequest(router, "10.0.0.2:1234")

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))

		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "rate_limit_exceeded", response["error"])
	})

	t.Run("Success_IndependentClients", func(t *testing.T) {
		router := newRateLimitedRouter(t, 0.1, 1)

		assert.Equal(t, http.StatusOK, doRequest(router, "10.0.0.3:1234").Code)
		assert.Equal(t, http.StatusTooManyRequests, doRequest(router, "10.0.0.3:1234").Code)
		assert.Equal(t, http.StatusOK, doRequest(router, "10.0.0.4:1234").Code)
	})
}

func TestIPLimiterStore_RemoveIdle(t *testing.T) {
	store := &ipLimiterStore{rps: 1, burst: 1}
	now := time.Now()

	first := store.getLimiter("10.0.0.5", now.Add(-2*time.Hour))
	store.getLimiter("10.0.0.6", now)

	assert.Same(t, first, store.getLimiter("10.0.0.5", now.Add(-2*time.Hour)))

	store.removeIdle(now.Add(-time.Hour))

	_, stale := store.limiters.Load("10.0.0.5")
	_, fresh := store.limiters.Load("10.0.0.6")
	assert.False(t, stale)
	assert.True(t, fresh)
}
