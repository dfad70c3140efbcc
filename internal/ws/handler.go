package ws

import (
	"net/http"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Browser admin dashboards authenticate with the session token;
		// origin is not part of the trust model.
		return true
	},
}

// Handler upgrades admin connections onto the moderation feed.
type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

// ServeWS requires an admin identity already resolved by the session
// middleware.
func (h *Handler) ServeWS(c *gin.Context) {
	val, ok := c.Get(string(contextkeys.IdentityContextKey))
	identity, _ := val.(*dto.Identity)
	if !ok || identity == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthenticated)
		return
	}
	if !identity.IsAdmin {
		apperrors.HandleError(c, apperrors.ErrForbidden)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.WithError(err).Warn("ws upgrade failed")
		return
	}

	client := &Client{
		ID:      identity.Email + "/" + uuid.NewString(),
		Conn:    conn,
		Send:    make(chan Event, 16),
		manager: h.manager,
	}

	h.manager.register <- client
	go client.writePump()
	go client.readPump()
}
