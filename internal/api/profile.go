package api

import (
	"errors"                             // Error inspection
	"net/http"                           // HTTP status codes
	"social_network/internal/domain"     // Domain models
	"social_network/internal/middleware" // Context keys
	"social_network/internal/store"      // Feed store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreatePostRequest is the post-creation form; the image travels as a file
type CreatePostRequest struct {
	Message string `form:"message" binding:"required"` // Message must be provided
}

// ProfileHandler shows the session user's own posts
func ProfileHandler(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet(middleware.CurrentUserKey).(domain.User) // Set by RequireSession
		c.JSON(http.StatusOK, gin.H{
			"app":   s.AppName,
			"title": user.Username + "'s Profile",
			"nav":   navLinks(true),
			"user":  toUserResponse(user),
			"posts": toPostViews(s.Feed.ListByOwner(user.Username), s.Assets, user.Username),
		})
	}
}

// CreatePostHandler publishes a post with an optional image
func CreatePostHandler(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet(middleware.CurrentUserKey).(domain.User)
		var req CreatePostRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
			return
		}
		image, err := readUpload(c, "image", s.MaxUpload)
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			image, err = "", nil // Image is optional
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image"})
			return
		}
		post, err := s.Feed.Create(user, req.Message, image)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"post_id":   post.ID,          // Post id
			"username":  user.Username,    // Author
			"has_image": post.Image != "", // Image attached
		}).Info("Post created")
		c.JSON(http.StatusCreated, gin.H{"message": "Post created", "post": toPostView(post, s.Assets, user.Username)})
	}
}

// DeletePostHandler removes one of the session user's posts by id
func DeletePostHandler(feed *store.Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet(middleware.CurrentUserKey).(domain.User)
		id := c.Param("id")
		deleted := feed.Delete(id, user.Username)
		if deleted {
			logrus.WithFields(logrus.Fields{
				"post_id":  id,            // Post id
				"username": user.Username, // Owner
			}).Info("Post deleted")
		}
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	}
}
