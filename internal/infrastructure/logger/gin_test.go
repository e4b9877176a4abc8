package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGinMiddlewareLogsRequestAndEnrichesContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("request_id", "req-abc")
		c.Next()
	})
	r.Use(GinMiddleware(zap.New(core)))

	var gotRequestID string
	r.GET("/orders", func(c *gin.Context) {
		gotRequestID = GetRequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-abc", gotRequestID)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "request completed", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "req-abc", fields["request_id"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "/orders", fields["path"])
}

func TestGinMiddlewareWarnsOnClientError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(GinMiddleware(zap.New(core)))
	r.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zap.WarnLevel, logs.All()[0].Level)
}

func TestRecoveryReturnsInternalServerError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.ErrorLevel)

	r := gin.New()
	r.Use(Recovery(zap.New(core)))
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "panic recovered", logs.All()[0].Message)
}
