//go:build unit

package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/handler/middleware"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), middleware.CustomRecovery(logger), middleware.ErrorHandler(logger))
	r.GET("/rate", func(c *gin.Context) {
		_ = c.Error(&pricing.RateUnavailableError{Kind: "metal", Key: "gold/22K/yellow/INR"})
	})
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errs.New("connection reset"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})
	return r
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()

	t.Run("success: unwritten domain error maps to its status", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/rate", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "metal rate unavailable")
	})

	t.Run("success: unknown error hides its message", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/boom", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, w.Body.String(), "connection reset")
	})

	t.Run("success: panic becomes a 500", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}

func TestRequestLogger(t *testing.T) {
	r := newErrorRouter()

	t.Run("success: generates and echoes a request id", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/ok", nil, "")

		var body map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Len(t, body["request_id"], 26)
		assert.Equal(t, body["request_id"], w.Header().Get(middleware.RequestIDHeader))
	})
	t.Run("success: keeps a caller supplied id", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/ok", nil, "",
			httptest.WithHeader(middleware.RequestIDHeader, "upstream-trace-1"))

		httptest.AssertHeaders(t, w, map[string]string{middleware.RequestIDHeader: "upstream-trace-1"})
	})

	t.Run("success: replaces an oversized id", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/ok", nil, "",
			httptest.WithHeader(middleware.RequestIDHeader, strings.Repeat("x", 65)))

		assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 26)
	})
}
