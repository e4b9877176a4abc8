package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketbay/backend/internal/interfaces/http/dto"
)

func TestSetupValidator(t *testing.T) {
	// Should not panic
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestHandleValidationError(t *testing.T) {
	type testRequest struct {
		Email string `json:"email" binding:"required,email"`
		Age   int    `json:"age" binding:"required,min=18"`
	}

	SetupValidator()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req testRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	t.Run("returns per-field details for invalid input", func(t *testing.T) {
		body := strings.NewReader(`{"email": "invalid", "age": 10}`)
		req := httptest.NewRequest(http.MethodPost, "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, "Request validation failed", resp.Error.Message)
		assert.Len(t, resp.Error.Details, 2)
	})

	t.Run("passes valid input through", func(t *testing.T) {
		body := strings.NewReader(`{"email": "test@example.com", "age": 25}`)
		req := httptest.NewRequest(http.MethodPost, "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetValidationMessage(t *testing.T) {
	type testStruct struct {
		Required string `binding:"required"`
		Min      string `binding:"min=5"`
		OneOf    string `binding:"oneof=a b c"`
		UUID     string `binding:"uuid"`
	}

	v := validator.New()
	v.SetTagName("binding")
	err := v.Struct(testStruct{Min: "ab", OneOf: "d", UUID: "nope"})
	require.Error(t, err)

	expected := map[string]string{
		"Required": "This field is required",
		"Min":      "Must be at least 5 characters",
		"OneOf":    "Must be one of: a b c",
		"UUID":     "Invalid UUID format",
	}

	validationErrs := err.(validator.ValidationErrors)
	for _, e := range validationErrs {
		want, ok := expected[e.StructField()]
		require.True(t, ok, "unexpected field %s", e.StructField())
		assert.Equal(t, want, getValidationMessage(e))
	}
}
