package api

import (
	"net/http"                      // HTTP status codes
	"social_network/internal/store" // In-memory stores
	"strconv"                       // String conversion

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// AdminPanelHandler lists users and profile pictures
func AdminPanelHandler(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		users := s.Users.List()
		resp := make([]UserResponse, len(users))
		for i, u := range users {
			resp[i] = toUserResponse(u)
		}
		_, loggedIn := s.Session.Current()
		c.JSON(http.StatusOK, gin.H{
			"app":          s.AppName,
			"title":        "Admin Panel",
			"nav":          navLinks(loggedIn),
			"users":        resp,
			"profile_pics": s.Assets.List(),
		})
	}
}

// DeleteUserHandler removes a user; posts and the session are left alone
func DeleteUserHandler(users *store.UserDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		deleted := users.Delete(id)
		if deleted {
			logrus.WithField("user_id", id).Info("User deleted")
		}
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	}
}

// AddAssetHandler uploads a new profile picture
func AddAssetHandler(assets *store.AssetGallery, maxUpload int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := readUpload(c, "newPic", maxUpload)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A valid image file is required"})
			return
		}
		asset := assets.Add(data)
		logrus.WithField("asset_id", asset.ID).Info("Profile picture added")
		c.JSON(http.StatusCreated, gin.H{"profile_pic": asset})
	}
}

// RemoveAssetHandler removes a profile picture; users keep their reference
func RemoveAssetHandler(assets *store.AssetGallery) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		deleted := assets.Remove(id)
		if deleted {
			logrus.WithField("asset_id", id).Info("Profile picture removed")
		}
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	}
}
