package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

func (h *AuthHandler) RegisterRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimit(), h.Login)
		auth.POST("/admin-login", middleware.LoginRateLimit(), h.AdminLogin)
		auth.GET("/session", h.Session)
		auth.POST("/logout", h.Logout)
	}
}

// Login authenticates a whitelisted resident by email.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(req.Email)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdminLogin authenticates the shared moderator credentials.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.AdminLogin(req.Username, req.Password)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Session reports the identity behind the presented token. Anonymous and
// expired sessions both answer with a null identity, not an error.
func (h *AuthHandler) Session(c *gin.Context) {
	identity := h.Identity(c)
	c.JSON(http.StatusOK, gin.H{"identity": identity})
}

// Logout drops the presented session. Idempotent.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			token = authHeader[7:]
		}
	}
	if token == "" {
		apperrors.HandleError(c, apperrors.ErrUnauthenticated)
		return
	}

	if err := h.authService.Logout(token); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
