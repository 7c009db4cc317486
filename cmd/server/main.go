package main

import (
	"context"                         // context package is needed for Redis operations
	"social_network/internal/api"     // Custom package for API handlers
	"social_network/internal/auth"    // Custom package for authentication
	"social_network/internal/config"  // Custom package for configuration
	"social_network/internal/session" // Custom package for the session store
	"social_network/internal/store"   // Custom package for in-memory stores
	"time"                            // Token lifetime

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Warnf("unknown log level %q, using info", cfg.LogLevel)
	}

	// Stores owned by the composition root
	users := store.NewUserDirectory()
	assets := store.NewAssetGallery()
	feed := store.NewFeed()

	adminAuth, err := auth.NewStaticAuthenticator(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		logrus.Fatalf("failed to set up admin credentials: %v", err)
	}

	// Session snapshot goes to Redis when configured, to a local file otherwise
	var persister session.Persister
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		persister = session.NewRedisPersister(redisClient, cfg.SessionKey)
	} else {
		persister = session.NewFilePersister(cfg.SessionFile)
	}
	sess := session.NewStore(auth.NewDirectoryAuthenticator(users), persister)
	if err := sess.Restore(context.Background()); err != nil {
		logrus.Warnf("session not restored: %v", err) // Start logged out
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(&api.Server{
		AppName:       cfg.AppName,
		Users:         users,
		Assets:        assets,
		Feed:          feed,
		Session:       sess,
		AdminAuth:     adminAuth,
		JWTSecret:     cfg.JWTSecret,
		AdminTokenTTL: time.Duration(cfg.AdminTokenTTLMin) * time.Minute,
		MaxUpload:     int64(cfg.MaxUploadMB) << 20,
	})

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.Info("Server running on " + cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
