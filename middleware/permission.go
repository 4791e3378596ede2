package middleware

import (
	"net/http"

	"crmbackend/service"

	"github.com/gin-gonic/gin"
)

// RequireModule gates a route group on the caller's worker-type permission
// flags. Must run after AuthMiddleware, which puts the role into the context.
func RequireModule(permissions *service.PermissionService, module string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if !permissions.Allowed(c.Request.Context(), role, module) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Module not permitted for this worker type", "module": module})
			c.Abort()
			return
		}
		c.Next()
	}
}
