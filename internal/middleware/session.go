package middleware

import (
	"net/http"                       // HTTP status codes
	"social_network/internal/domain" // Domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// SessionReader exposes the logged-in user
type SessionReader interface {
	Current() (domain.User, bool)
}

// RequireSession aborts with message unless a user is logged in
func RequireSession(s SessionReader, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := s.Current()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
			return
		}
		c.Set(CurrentUserKey, u) // Store session user in context
		c.Next()
	}
}
