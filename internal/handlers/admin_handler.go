package handlers

import (
	"net/http"

	"skaters_backend/internal/services"
	"skaters_backend/internal/services/dto"
	"skaters_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

// RegisterRoutes expects rg to be behind the auth gate and the admin check.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Dashboard)
	rg.POST("", h.ToggleApproval)
	rg.PUT("/update/:id", h.UpdateApproval)
	rg.POST("/update/:id", h.UpdateApproval)
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	skaters, err := h.adminService.ListSkaters(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Render(c, http.StatusOK, "admin.html", gin.H{
		"Title":   "Admin",
		"Skaters": skaters,
	})
}

// ToggleApproval is the plain form variant used by the dashboard buttons.
func (h *AdminHandler) ToggleApproval(c *gin.Context) {
	var req dto.ApprovalRequest
	if err := c.ShouldBind(&req); err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	id, err := ParseID(req.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if _, err := h.adminService.SetApproval(c.Request.Context(), id, req.Approved()); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// UpdateApproval answers with JSON for scripted clients.
func (h *AdminHandler) UpdateApproval(c *gin.Context) {
	id, err := ParseID(c.Param("id"))
	if err != nil {
		h.HandleServiceErrorJSON(c, err)
		return
	}

	var req dto.ApprovalRequest
	if err := c.ShouldBind(&req); err != nil {
		h.HandleServiceErrorJSON(c, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	skater, err := h.adminService.SetApproval(c.Request.Context(), id, req.Approved())
	if err != nil {
		h.HandleServiceErrorJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "approval state updated",
		"id":       skater.ID,
		"approved": skater.Approved,
	})
}
