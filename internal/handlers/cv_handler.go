package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type CVHandler struct {
	*BaseHandler
	cvService     services.CVService
	uploadService services.UploadService
}

func NewCVHandler(base *BaseHandler, cvService services.CVService, uploadService services.UploadService) *CVHandler {
	return &CVHandler{
		BaseHandler:   base,
		cvService:     cvService,
		uploadService: uploadService,
	}
}

func (h *CVHandler) RegisterRoutes(api *gin.RouterGroup) {
	cvs := api.Group("/cvs")
	{
		cvs.GET("", h.List)
		cvs.GET("/:id", h.Get)
		cvs.GET("/:id/file", h.FileURL)

		auth := cvs.Group("", middleware.RequireAuth())
		{
			auth.POST("", h.Create)
			auth.PUT("/:id", h.Update)
			auth.DELETE("/:id", h.Delete)
			auth.POST("/:id/file", h.AttachFile)
		}
	}
}

func (h *CVHandler) Create(c *gin.Context) {
	var req dto.CVRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	cv, err := h.cvService.Create(h.Identity(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cv)
}

func (h *CVHandler) Update(c *gin.Context) {
	var req dto.CVRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	cv, err := h.cvService.Update(h.Identity(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cv)
}

func (h *CVHandler) Delete(c *gin.Context) {
	if err := h.cvService.Delete(h.Identity(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *CVHandler) Get(c *gin.Context) {
	cv, err := h.cvService.Get(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cv)
}

func (h *CVHandler) List(c *gin.Context) {
	equals := make(map[string]interface{})
	for _, field := range []string{"section", "email", "title"} {
		if v, ok := c.GetQuery(field); ok {
			equals[field] = v
		}
	}

	cvs, err := h.cvService.List(equals)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cvs": cvs, "count": len(cvs)})
}

// AttachFile binds a completed upload to the CV.
func (h *CVHandler) AttachFile(c *gin.Context) {
	var req dto.AttachFileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	cv, err := h.uploadService.AttachToCV(c.Request.Context(), h.Identity(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cv)
}

// FileURL resolves the CV's attached file to a time-limited download URL.
func (h *CVHandler) FileURL(c *gin.Context) {
	url, err := h.uploadService.CVFileURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
