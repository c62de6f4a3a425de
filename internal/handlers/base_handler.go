package handlers

import (
	"net/http"
	"strconv"

	"skaters_backend/internal/auth"
	"skaters_backend/internal/logger"
	"skaters_backend/internal/middleware"
	"skaters_backend/internal/validator"
	"skaters_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator  *validator.Validator
	adminEmail string
}

func NewBaseHandler(v *validator.Validator, adminEmail string) *BaseHandler {
	return &BaseHandler{
		validator:  v,
		adminEmail: adminEmail,
	}
}

// BindAndValidate binds the form (or JSON) body into obj and validates it.
// Field violations come back as a map for re-rendering the form; a non-nil
// error means the request itself was malformed or validation broke.
func (h *BaseHandler) BindAndValidate(c *gin.Context, obj interface{}) (map[string]string, error) {
	ctx := c.Request.Context()

	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind request body", err, "path", c.Request.URL.Path)
		return nil, apperrors.NewBadRequestError("Invalid request body")
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "fields", fieldNames(vErr.Errors), "path", c.Request.URL.Path)
			return vErr.Errors, nil
		}
		logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
		return nil, apperrors.InternalError(err)
	}
	return nil, nil
}

// Render writes an HTML page. Session details for the navigation bar are
// filled in from the context.
func (h *BaseHandler) Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if skater, ok := middleware.CurrentSkater(c); ok {
		data["Current"] = skater
		data["IsAdmin"] = auth.IsAdmin(skater, h.adminEmail)
	}
	c.HTML(status, name, data)
}

// RenderError shows err on the error page. Internal details never reach
// the page.
func (h *BaseHandler) RenderError(c *gin.Context, err error) {
	appErr := apperrors.Normalize(err)
	h.Render(c, appErr.HTTPCode, "error.html", gin.H{
		"Title":     http.StatusText(appErr.HTTPCode),
		"Status":    http.StatusText(appErr.HTTPCode),
		"Detail":    appErr.Message,
		"RequestID": logger.GetRequestID(c.Request.Context()),
	})
}

// HandleServiceError logs err and renders it as a page.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	h.logServiceError(c, err)
	h.RenderError(c, err)
}

// HandleServiceErrorJSON logs err and writes it as JSON.
func (h *BaseHandler) HandleServiceErrorJSON(c *gin.Context, err error) {
	h.logServiceError(c, err)
	apperrors.HandleError(c, err)
}

func (h *BaseHandler) logServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) && appErr.HTTPCode < http.StatusInternalServerError {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"path", c.Request.URL.Path,
		)
		return
	}
	logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
}

// ParseID converts a record id from text. Zero and negative values are rejected.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewBadRequestError("Invalid skater id")
	}
	return uint(id), nil
}

func fieldNames(errs map[string]string) []string {
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	return names
}
