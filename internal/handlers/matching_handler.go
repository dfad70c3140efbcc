package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MatchingHandler struct {
	*BaseHandler
	matchingService services.MatchingService
}

func NewMatchingHandler(base *BaseHandler, matchingService services.MatchingService) *MatchingHandler {
	return &MatchingHandler{BaseHandler: base, matchingService: matchingService}
}

func (h *MatchingHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/cvs/:id/matches", h.MatchJobsForCV)
}

// MatchJobsForCV returns visible jobs scored against the CV, best first.
func (h *MatchingHandler) MatchJobsForCV(c *gin.Context) {
	matches, err := h.matchingService.MatchJobsForCV(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches, "count": len(matches)})
}
