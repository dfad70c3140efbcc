package handlers

import (
	"net/http"
	"strconv"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PostingHandler struct {
	*BaseHandler
	postingService services.PostingService
}

func NewPostingHandler(base *BaseHandler, postingService services.PostingService) *PostingHandler {
	return &PostingHandler{BaseHandler: base, postingService: postingService}
}

func (h *PostingHandler) RegisterRoutes(api *gin.RouterGroup) {
	postings := api.Group("/postings")
	{
		postings.POST("", h.Submit)
		postings.GET("", h.List)

		admin := postings.Group("", middleware.RequireAdmin())
		{
			admin.POST("/:id/approve", h.Approve)
			admin.POST("/:id/reject", h.Reject)
		}

		// Delete allows the posting owner as well; the service decides.
		postings.DELETE("/:id", middleware.RequireAuth(), h.Delete)
	}

	// The archive lives under its own prefix so its routes cannot collide
	// with the posting id parameter.
	archive := api.Group("/archive", middleware.RequireAdmin())
	{
		archive.GET("", h.ListArchive)
		archive.POST("/:id/restore", h.Restore)
		archive.DELETE("/:id", h.Purge)
	}
}

// Submit accepts a public posting submission into the pending queue.
func (h *PostingHandler) Submit(c *gin.Context) {
	var req dto.SubmitPostingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	posting, err := h.postingService.Submit(h.Identity(c), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, posting)
}

// List returns postings of the requested type matching the equality
// filters given as query parameters.
func (h *PostingHandler) List(c *gin.Context) {
	postingType := models.PostingType(c.Query("type"))
	equals := parsePostingFilters(c)

	postings, err := h.postingService.List(h.Identity(c), postingType, equals)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"postings": postings, "count": len(postings)})
}

func (h *PostingHandler) Approve(c *gin.Context) {
	posting, err := h.postingService.Approve(h.Identity(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, posting)
}

func (h *PostingHandler) Reject(c *gin.Context) {
	posting, err := h.postingService.Reject(h.Identity(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, posting)
}

func (h *PostingHandler) Delete(c *gin.Context) {
	var req dto.DeletePostingRequest
	// The body is optional; a bare delete carries no reason.
	_ = c.ShouldBindJSON(&req)

	if err := h.postingService.Delete(h.Identity(c), c.Param("id"), req.Reason); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *PostingHandler) ListArchive(c *gin.Context) {
	postingType := models.PostingType(c.Query("type"))

	archived, err := h.postingService.ListArchive(h.Identity(c), postingType)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"archived": archived, "count": len(archived)})
}

func (h *PostingHandler) Restore(c *gin.Context) {
	posting, err := h.postingService.Restore(h.Identity(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, posting)
}

func (h *PostingHandler) Purge(c *gin.Context) {
	if err := h.postingService.Purge(h.Identity(c), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// parsePostingFilters picks the supported equality filters out of the query
// string. Unknown parameters are ignored.
func parsePostingFilters(c *gin.Context) map[string]interface{} {
	equals := make(map[string]interface{})

	for _, field := range []string{"status", "company", "industry", "location", "posted_by", "title"} {
		if v, ok := c.GetQuery(field); ok {
			equals[field] = v
		}
	}
	for _, field := range []string{"is_active", "is_approved"} {
		if v, ok := c.GetQuery(field); ok {
			if b, err := strconv.ParseBool(v); err == nil {
				equals[field] = b
			}
		}
	}
	return equals
}
