package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaffRequired is a Gin middleware that validates a staff JWT from Authorization: Bearer <token>.
// Admin-panel routes sit behind this; public booking routes do not.
func StaffRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing Authorization header",
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid Authorization header format",
			})
			return
		}

		tokenStr := parts[1]

		claims, err := jwtManager.ParseAndValidate(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		// Store staff info into Gin context for later handlers.
		c.Set("staffID", claims.StaffID)
		c.Set("staffUsername", claims.Username)

		c.Next()
	}
}
