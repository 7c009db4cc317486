package middleware

import (
	"net/http"                      // HTTP status codes
	"social_network/internal/utils" // JWT utility functions
	"strings"                       // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework
)

// Context keys set by the auth middlewares
const (
	SubjectKey     = "subject"     // Authenticated name from the token
	RoleKey        = "role"        // Role claim from the token
	CurrentUserKey = "currentUser" // Session user for session-gated routes
)

// JWTAuthMiddleware validates JWT tokens and extracts the principal
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(SubjectKey, claims.Subject) // Store subject in context
		c.Set(RoleKey, claims.Role)       // Store role in context
		c.Next()
	}
}
