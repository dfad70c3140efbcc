package middleware

import (
	"time"

	"jobboard_backend/internal/logger"
	"jobboard_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger tags each request with an id and records it on completion.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := uuid.NewString()
		c.Set(string(contextkeys.RequestIDContextKey), requestID)
		c.Request = c.Request.WithContext(
			logger.WithRequestID(c.Request.Context(), requestID),
		)

		c.Next()

		logger.HTTPLog(
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
