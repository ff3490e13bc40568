package middleware

import (
	"net/http"
	"strings"

	userRepo "photostudio/database/repository/user"
	"photostudio/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// JWTAuthUserMiddleware resolves the bearer credential to a studio client
// and stores its id under utils.ContextUserID. Requests without a valid
// credential are answered with 401 and never reach the handler.
func JWTAuthUserMiddleware(userRepo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
			return
		}

		// The account must still exist.
		usr, err := userRepo.GetByIDWithProjection(c.Request.Context(), userID, bson.M{"id": 1})
		if err != nil {
			utils.GetLogger().Error("JWTAuthUserMiddleware: user lookup failed", zap.String("userID", userID), zap.Error(err))
			_ = c.Error(err)
			c.Abort()
			return
		}
		if usr == nil {
			utils.JSONError(c, http.StatusUnauthorized, "Authentication error", "")
			return
		}

		c.Set(utils.ContextUserID, userID)
		c.Next()
	}
}
