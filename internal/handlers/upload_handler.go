package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{BaseHandler: base, uploadService: uploadService}
}

func (h *UploadHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/uploads", middleware.RequireAuth(), h.CreateUpload)
}

// CreateUpload reserves an upload slot and hands back the capability URL
// the client pushes the file bytes to.
func (h *UploadHandler) CreateUpload(c *gin.Context) {
	var req dto.CreateUploadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.uploadService.CreateUpload(c.Request.Context(), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
