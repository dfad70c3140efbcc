package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

func (h *ApplicationHandler) RegisterRoutes(api *gin.RouterGroup) {
	applications := api.Group("/applications")
	{
		applications.POST("", h.Submit)
		applications.GET("", middleware.RequireAuth(), h.List)
		applications.PUT("/:id/status", middleware.RequireAdmin(), h.UpdateStatus)
	}
}

// Submit files an application against a visible job or internship.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.Submit(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// List answers one of three queries: ?job_id=, ?internship_id= (admin) or
// ?email= (owner or admin).
func (h *ApplicationHandler) List(c *gin.Context) {
	var (
		apps []models.Application
		err  error
	)

	switch {
	case c.Query("job_id") != "":
		apps, err = h.applicationService.ListForPosting(h.Identity(c), models.PostingTypeJob, c.Query("job_id"))
	case c.Query("internship_id") != "":
		apps, err = h.applicationService.ListForPosting(h.Identity(c), models.PostingTypeInternship, c.Query("internship_id"))
	case c.Query("email") != "":
		apps, err = h.applicationService.ListByEmail(h.Identity(c), c.Query("email"))
	default:
		apperrors.HandleError(c, apperrors.NewBadRequestError("one of job_id, internship_id or email is required"))
		return
	}

	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps, "count": len(apps)})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.UpdateStatus(h.Identity(c), c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
