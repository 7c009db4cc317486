package api

import (
	"errors"                          // Error inspection
	"net/http"                        // HTTP status codes
	"social_network/internal/auth"    // Authenticator capability
	"social_network/internal/domain"  // Domain models
	"social_network/internal/session" // Session store
	"social_network/internal/utils"   // JWT helpers
	"time"                            // Token lifetime

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Request struct for login, accepted as a form or as JSON
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"` // Username must be provided
	Password string `json:"password" form:"password" binding:"required"` // Password must be provided
}

// Response struct for admin authentication
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

// LoginFormHandler describes the login form
func LoginFormHandler(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, loggedIn := s.Session.Current()
		c.JSON(http.StatusOK, gin.H{
			"app":    s.AppName,
			"title":  "Login",
			"nav":    navLinks(loggedIn),
			"fields": []string{"username", "password"},
		})
	}
}

// LoginHandler authenticates a directory user and makes them the session user
func LoginHandler(sess *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := sess.Login(c.Request.Context(), req.Username, req.Password)
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrForbidden) {
			logrus.WithField("username", req.Username).Warn("Login failed")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user credentials"})
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"username": req.Username, // Attempted username
				"error":    err.Error(),  // Error message
			}).Error("Login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // User ID
			"username": user.Username, // Username
		}).Info("User logged in")
		c.JSON(http.StatusOK, gin.H{
			"message":  "Logged in",
			"user":     toUserResponse(user),
			"redirect": "/profile",
		})
	}
}

// LogoffHandler clears the session unconditionally
func LogoffHandler(sess *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sess.Logoff(c.Request.Context()); err != nil {
			logrus.WithField("error", err.Error()).Error("Logoff failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
			return
		}
		logrus.Info("User logged off")
		c.JSON(http.StatusOK, gin.H{"message": "Logged off"})
	}
}

// AdminLoginHandler checks the admin pair and returns a role-admin token
func AdminLoginHandler(authenticator auth.Authenticator, jwtSecret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		principal, err := authenticator.Authenticate(req.Username, req.Password)
		if err != nil {
			logrus.WithField("username", req.Username).Warn("Admin login failed")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin credentials"})
			return
		}
		if principal.Role != domain.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		token, err := utils.GenerateJWT(principal.Username, string(principal.Role), jwtSecret, ttl)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		logrus.WithField("username", principal.Username).Info("Admin logged in")
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}
