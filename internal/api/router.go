package api

import (
	"social_network/internal/auth"       // Authenticator capability
	"social_network/internal/domain"     // Roles
	"social_network/internal/middleware" // Custom middleware
	"social_network/internal/session"    // Session store
	"social_network/internal/store"      // In-memory stores
	"time"                               // Token lifetime

	"github.com/gin-gonic/gin" // Gin web framework
)

// Server is the application state owned by the composition root
type Server struct {
	AppName       string               // Name shown in every view
	Users         *store.UserDirectory // User directory
	Assets        *store.AssetGallery  // Profile picture gallery
	Feed          *store.Feed          // Global post feed
	Session       *session.Store       // Logged-in user
	AdminAuth     auth.Authenticator   // Admin credential check
	JWTSecret     string               // Secret for admin tokens
	AdminTokenTTL time.Duration        // Admin token lifetime
	MaxUpload     int64                // Upload size limit in bytes
}

// NewRouter maps every view path onto its handlers
func NewRouter(s *Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	r.MaxMultipartMemory = s.MaxUpload

	requireLogin := func(message string) gin.HandlerFunc {
		return middleware.RequireSession(s.Session, message)
	}

	// Home
	r.GET("/", HomeHandler(s))
	r.POST("/posts/:id/like", requireLogin("Please log in to like posts."), ToggleLikeHandler(s))

	// Login
	r.GET("/login", LoginFormHandler(s))
	r.POST("/login", LoginHandler(s.Session))
	r.POST("/logoff", LogoffHandler(s.Session))

	// Profile
	profile := r.Group("/profile", requireLogin("Please log in to view your profile."))
	profile.GET("", ProfileHandler(s))
	profile.POST("/posts", CreatePostHandler(s))
	profile.DELETE("/posts/:id", DeletePostHandler(s.Feed))

	// Admin
	r.POST("/admin/login", AdminLoginHandler(s.AdminAuth, s.JWTSecret, s.AdminTokenTTL))
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(s.JWTSecret), middleware.RequireRole(domain.RoleAdmin))
	adminGroup.GET("", AdminPanelHandler(s))
	adminGroup.DELETE("/users/:id", DeleteUserHandler(s.Users))
	adminGroup.POST("/assets", AddAssetHandler(s.Assets, s.MaxUpload))
	adminGroup.DELETE("/assets/:id", RemoveAssetHandler(s.Assets))

	// Create User
	r.GET("/create-user", CreateUserFormHandler(s))
	r.POST("/create-user", CreateUserHandler(s.Users, s.Assets))

	return r
}
