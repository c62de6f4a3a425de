package handlers

import (
	"net/http"
	"strconv"

	"skaters_backend/internal/middleware"
	"skaters_backend/internal/models"
	"skaters_backend/internal/services"
	"skaters_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	skaterService services.SkaterService
}

func NewProfileHandler(base *BaseHandler, skaterService services.SkaterService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:   base,
		skaterService: skaterService,
	}
}

// RegisterRoutes expects rg to be behind the auth gate.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.Show)
	rg.POST("/profile", h.Update)
}

func (h *ProfileHandler) Show(c *gin.Context) {
	skater, ok := middleware.CurrentSkater(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	h.renderProfile(c, http.StatusOK, skater, formFromSkater(skater), nil, "", "")
}

func (h *ProfileHandler) Update(c *gin.Context) {
	skater, ok := middleware.CurrentSkater(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var req dto.ProfileUpdateRequest
	fieldErrs, err := h.BindAndValidate(c, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if len(fieldErrs) > 0 {
		h.renderProfile(c, http.StatusBadRequest, skater, &req, fieldErrs, "Please correct the highlighted fields.", "")
		return
	}

	updated, err := h.skaterService.UpdateProfile(c.Request.Context(), skater.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.renderProfile(c, http.StatusOK, updated, formFromSkater(updated), nil, "", "Profile updated")
}

func (h *ProfileHandler) renderProfile(c *gin.Context, status int, skater *models.Skater, form *dto.ProfileUpdateRequest, errs map[string]string, errMsg, msg string) {
	h.Render(c, status, "profile.html", gin.H{
		"Title":   "My profile",
		"Skater":  skater,
		"Form":    form,
		"Errors":  errs,
		"Error":   errMsg,
		"Message": msg,
	})
}

func formFromSkater(s *models.Skater) *dto.ProfileUpdateRequest {
	return &dto.ProfileUpdateRequest{
		Name:               s.Name,
		YearsExperienceRaw: strconv.Itoa(s.YearsExperience),
		Specialty:          s.Specialty,
	}
}
