package middleware

import (
	"strings"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// SessionAuth resolves the bearer token into an identity and stores it in
// the gin context. Anonymous requests pass through with no identity set;
// per-route guards decide what that means.
func SessionAuth(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token != "" {
			identity, err := authService.ResolveSession(token)
			if err != nil {
				apperrors.HandleError(c, err)
				c.Abort()
				return
			}
			if identity != nil {
				c.Set(string(contextkeys.IdentityContextKey), identity)
			}
		}
		c.Next()
	}
}

// RequireAuth rejects requests with no resolved identity.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetIdentity(c) == nil {
			apperrors.HandleError(c, apperrors.ErrUnauthenticated)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects anonymous callers with 401 and non-admins with 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := GetIdentity(c)
		if identity == nil {
			apperrors.HandleError(c, apperrors.ErrUnauthenticated)
			c.Abort()
			return
		}
		if !identity.IsAdmin {
			apperrors.HandleError(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetIdentity returns the resolved identity, or nil for anonymous requests.
func GetIdentity(c *gin.Context) *dto.Identity {
	val, ok := c.Get(string(contextkeys.IdentityContextKey))
	if !ok {
		return nil
	}
	identity, ok := val.(*dto.Identity)
	if !ok {
		return nil
	}
	return identity
}

// extractToken accepts the session token from the Authorization header or,
// for websocket upgrades, the "token" query parameter.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("token")
}
