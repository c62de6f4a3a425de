package handlers

import (
	"net/http"

	"skaters_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	*BaseHandler
	skaterService services.SkaterService
}

func NewHomeHandler(base *BaseHandler, skaterService services.SkaterService) *HomeHandler {
	return &HomeHandler{
		BaseHandler:   base,
		skaterService: skaterService,
	}
}

func (h *HomeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Index)
	rg.GET("/health", h.Health)
}

// Index lists every skater, approved ones first.
func (h *HomeHandler) Index(c *gin.Context) {
	skaters, err := h.skaterService.ListPublic(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Render(c, http.StatusOK, "index.html", gin.H{
		"Skaters": skaters,
	})
}

func (h *HomeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
