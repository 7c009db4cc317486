package middleware

import (
	"net/http"                       // HTTP status codes
	"social_network/internal/domain" // Roles

	"github.com/gin-gonic/gin" // Gin web framework
)

// RequireRole checks the role claim placed in the context by JWTAuthMiddleware
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, exists := c.Get(RoleKey) // Get role from context
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if r, _ := got.(string); r != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
