package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Is(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("register: %w", ErrEmailAlreadyExists)
	assert.True(t, Is(wrapped, ErrEmailAlreadyExists))
	assert.False(t, Is(wrapped, ErrSkaterNotFound))

	withDetails := ErrSkaterNotFound.WithDetails("id 9")
	assert.True(t, Is(withDetails, ErrSkaterNotFound), "copies still match the predefined error")
	assert.Nil(t, ErrSkaterNotFound.Details, "predefined errors are not modified")
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	appErr := Normalize(ErrInvalidCredentials)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode)

	cause := errors.New("dial tcp: connection refused")
	appErr = Normalize(cause)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
	assert.Equal(t, "Internal server error", appErr.Message)
	assert.ErrorIs(t, appErr, cause)
}

func TestHandleError(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	t.Run("client error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleError(c, ErrSkaterNotFound)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var body struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, string(CodeNotFound), body.Error.Code)
		assert.Equal(t, "Skater not found", body.Error.Message)
	})

	t.Run("internal error hides its cause", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleError(c, errors.New("pq: password authentication failed"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "password authentication")
	})
}
