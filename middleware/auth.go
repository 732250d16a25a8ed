package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"financas-api/utils"
)

const userIDKey = "user_id"

// AuthMiddleware rejects requests without a valid bearer token and stashes
// the authenticated user id in the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid authorization header"})
			c.Abort()
			return
		}

		userID, err := utils.ParseAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
