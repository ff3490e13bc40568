package handlers

import (
	"photostudio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the request-scoped logger set by middleware, or the
// process logger annotated with the request path and caller.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(utils.ContextLogger); exists {
		if logger, ok := l.(*zap.Logger); ok {
			if userID := c.GetString(utils.ContextUserID); userID != "" {
				logger = logger.With(zap.String("userID", userID))
			}
			return logger
		}
	}
	logger := utils.GetLogger().With(zap.String("path", c.FullPath()))
	if userID := c.GetString(utils.ContextUserID); userID != "" {
		logger = logger.With(zap.String("userID", userID))
	}
	return logger
}
