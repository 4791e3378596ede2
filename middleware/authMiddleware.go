package middleware

import (
	"net/http"
	"strings"

	"crmbackend/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the session token from the cookie or the
// Authorization header. An expired token is indistinguishable from a missing
// one: both force a new login.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("token")
		if err != nil {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token not provided"})
				c.Abort()
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
				c.Abort()
				return
			}
			token = parts[1]
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			c.Abort()
			return
		}

		c.Set("employeeID", claims.ID)
		c.Set("employeeName", claims.Name)
		c.Set("role", claims.Role)

		c.Next()
	}
}
