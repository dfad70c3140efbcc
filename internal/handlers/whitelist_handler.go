package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type WhitelistHandler struct {
	*BaseHandler
	whitelistService services.WhitelistService
}

func NewWhitelistHandler(base *BaseHandler, whitelistService services.WhitelistService) *WhitelistHandler {
	return &WhitelistHandler{BaseHandler: base, whitelistService: whitelistService}
}

func (h *WhitelistHandler) RegisterRoutes(api *gin.RouterGroup) {
	whitelist := api.Group("/whitelist", middleware.RequireAdmin())
	{
		whitelist.GET("", h.List)
		whitelist.POST("", h.Add)
		whitelist.DELETE("/:email", h.Remove)
		whitelist.PUT("/:email/active", h.SetActive)
	}
}

func (h *WhitelistHandler) List(c *gin.Context) {
	entries, err := h.whitelistService.List(h.Identity(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

func (h *WhitelistHandler) Add(c *gin.Context) {
	var req dto.WhitelistAddRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.whitelistService.Add(h.Identity(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *WhitelistHandler) Remove(c *gin.Context) {
	if err := h.whitelistService.Remove(h.Identity(c), c.Param("email")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *WhitelistHandler) SetActive(c *gin.Context) {
	var req struct {
		Active *bool `json:"active" validate:"required"`
	}
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.whitelistService.SetActive(h.Identity(c), c.Param("email"), *req.Active)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
