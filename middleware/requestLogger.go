package middleware

import (
	"photostudio/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogger attaches a logger carrying the request id, method, route and
// client IP to the context. Handlers pick it up through utils.ContextLogger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		logger := utils.GetLogger().With(
			zap.String("requestID", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("clientIP", getClientIP(c)),
		)
		c.Set(utils.ContextLogger, logger)
		c.Next()
	}
}
