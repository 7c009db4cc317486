package api

import (
	"net/http"                      // HTTP status codes
	"social_network/internal/auth"  // Password hashing
	"social_network/internal/store" // In-memory stores

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateUserRequest is the create-user form
type CreateUserRequest struct {
	Username   string `json:"username" form:"username" binding:"required"`     // Username must be provided
	Password   string `json:"password" form:"password" binding:"required"`     // Password must be provided
	ProfilePic string `json:"profilePic" form:"profilePic" binding:"required"` // Selected asset id
}

// CreateUserFormHandler lists the profile pictures to choose from
func CreateUserFormHandler(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, loggedIn := s.Session.Current()
		c.JSON(http.StatusOK, gin.H{
			"app":          s.AppName,
			"title":        "Create User",
			"nav":          navLinks(loggedIn),
			"fields":       []string{"username", "password", "profilePic"},
			"profile_pics": s.Assets.List(),
		})
	}
}

// CreateUserHandler adds a user to the directory
func CreateUserHandler(users *store.UserDirectory, assets *store.AssetGallery) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if _, ok := assets.Get(req.ProfilePic); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown profile picture"})
			return
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := users.Create(req.Username, hash, req.ProfilePic)
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // User ID
			"username": user.Username, // Username
		}).Info("User created")
		c.JSON(http.StatusCreated, gin.H{"message": "User created successfully!", "user": toUserResponse(user)})
	}
}
