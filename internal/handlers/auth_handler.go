package handlers

import (
	"net/http"
	"time"

	"skaters_backend/internal/logger"
	"skaters_backend/internal/middleware"
	"skaters_backend/internal/services"
	"skaters_backend/internal/services/dto"
	"skaters_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService   services.AuthService
	sessionTTL    time.Duration
	secureCookies bool
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, sessionTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler:   base,
		authService:   authService,
		sessionTTL:    sessionTTL,
		secureCookies: secureCookies,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/login", h.LoginForm)
	rg.POST("/login", h.Login)
	rg.GET("/register", h.RegisterForm)
	rg.POST("/register", h.Register)
	rg.POST("/logout", h.Logout)
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	h.renderLogin(c, http.StatusOK, &dto.LoginRequest{}, nil, "")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	fieldErrs, err := h.BindAndValidate(c, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		h.renderLogin(c, http.StatusBadRequest, &req, fieldErrs, apperrors.ErrInvalidCredentials.Message)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidCredentials) {
			h.renderLogin(c, http.StatusUnauthorized, &req, nil, apperrors.ErrInvalidCredentials.Message)
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	middleware.SetSessionCookie(c, result.Token, h.sessionTTL, h.secureCookies)

	if result.IsAdmin {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Redirect(http.StatusFound, "/profile")
}

func (h *AuthHandler) RegisterForm(c *gin.Context) {
	h.renderRegister(c, http.StatusOK, &dto.RegisterRequest{}, nil, "")
}

func (h *AuthHandler) Register(c *gin.Context) {
	// The photo is a precondition: without it nothing else is looked at.
	photo, err := c.FormFile("photo")
	if err != nil {
		logger.CtxWarn(c.Request.Context(), "registration without photo", "reason", err.Error())
		h.renderRegister(c, http.StatusBadRequest, &dto.RegisterRequest{}, nil, apperrors.ErrPhotoRequired.Message)
		return
	}

	var req dto.RegisterRequest
	fieldErrs, err := h.BindAndValidate(c, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		h.renderRegister(c, http.StatusBadRequest, &req, fieldErrs, "Please correct the highlighted fields.")
		return
	}

	if _, err := h.authService.Register(c.Request.Context(), &req, photo); err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.HTTPCode < http.StatusInternalServerError {
			h.renderRegister(c, appErr.HTTPCode, &req, nil, appErr.Message)
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

// Logout only drops the cookie; tokens are not tracked server side.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c, h.secureCookies)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) renderLogin(c *gin.Context, status int, form *dto.LoginRequest, errs map[string]string, msg string) {
	h.Render(c, status, "login.html", gin.H{
		"Title":  "Log in",
		"Form":   form,
		"Errors": errs,
		"Error":  msg,
	})
}

func (h *AuthHandler) renderRegister(c *gin.Context, status int, form *dto.RegisterRequest, errs map[string]string, msg string) {
	h.Render(c, status, "register.html", gin.H{
		"Title":  "Register",
		"Form":   form,
		"Errors": errs,
		"Error":  msg,
	})
}
