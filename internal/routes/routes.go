package routes

import (
	"net/http"

	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API, the websocket moderation feed and the
// local-storage file endpoints. Session resolution happens in middleware
// installed by the app before this is called.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers, wsHandler *ws.Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		h.Auth.RegisterRoutes(api)
		h.Posting.RegisterRoutes(api)
		h.Matching.RegisterRoutes(api)
		h.CV.RegisterRoutes(api)
		h.Whitelist.RegisterRoutes(api)
		h.Application.RegisterRoutes(api)
		h.Upload.RegisterRoutes(api)
	}

	// Admin moderation feed. The handler enforces the admin check itself.
	r.GET("/ws", wsHandler.ServeWS)

	h.File.RegisterRoutes(r)
}
