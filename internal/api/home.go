package api

import (
	"errors"                             // Error inspection
	"net/http"                           // HTTP status codes
	"social_network/internal/domain"     // Domain models
	"social_network/internal/middleware" // Context keys

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// HomeHandler renders the whole feed, most recent first
func HomeHandler(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := ""
		current, loggedIn := s.Session.Current()
		if loggedIn {
			viewer = current.Username
		}
		posts := toPostViews(s.Feed.ListChronological(), s.Assets, viewer)
		resp := gin.H{
			"app":   s.AppName,
			"title": "Home",
			"nav":   navLinks(loggedIn),
			"posts": posts,
		}
		if len(posts) == 0 {
			resp["message"] = "No posts yet."
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ToggleLikeHandler likes or unlikes a post for the session user
func ToggleLikeHandler(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet(middleware.CurrentUserKey).(domain.User) // Set by RequireSession
		post, err := s.Feed.ToggleLike(c.Param("id"), user.Username)
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to like posts."})
			return
		}
		liked := post.Liked(user.Username)
		logrus.WithFields(logrus.Fields{
			"post_id":  post.ID,       // Post id
			"username": user.Username, // Liker
			"liked":    liked,         // New state
		}).Info("Like toggled")
		c.JSON(http.StatusOK, gin.H{"post": toPostView(post, s.Assets, user.Username)})
	}
}
