package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole creates a Gin middleware that rejects requests whose
// authenticated user does not hold the given role. It must run after
// AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, ok := GetUserRoleFromCtx(c.Request.Context())
		if !ok || userRole != role {
			GetLoggerFromCtx(c.Request.Context()).Warn("Insufficient role for request", "required_role", role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
