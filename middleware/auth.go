package middleware

import (
	"net/http"
	"strings"

	"petsit/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key the authenticated user ID is stored
// under.
const ContextUserID = "userID"

// RequireAuth extracts the caller's identity from the bearer token. The token
// is an opaque capability minted by the identity service; only its subject is
// consumed here.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user ID set by RequireAuth.
func UserID(c *gin.Context) string {
	id, _ := c.Get(ContextUserID)
	s, _ := id.(string)
	return s
}
