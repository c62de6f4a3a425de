package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON envelope for errors.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler writes AppErrors as JSON.
type GinErrorHandler struct {
	Debug bool
}

// Normalize turns any error into an AppError. Unknown errors become
// internal errors whose message never carries the cause.
func Normalize(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return InternalError(err)
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr := Normalize(err)
	if appErr.HTTPCode >= 500 && !h.Debug {
		appErr = appErr.WithDetails(nil)
	}
	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleError writes err as JSON without debug details.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{}
	handler.HandleGinError(c, err)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
