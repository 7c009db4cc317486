package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppName          string // Name shown in every view
	AppPort          string // Application port
	LogLevel         string // Logrus level name
	JWTSecret        string // JWT secret key
	AdminUsername    string // Admin credential pair: username
	AdminPassword    string // Admin credential pair: password
	AdminTokenTTLMin int    // Admin token lifetime in minutes
	RedisAddr        string // Redis server address, empty disables Redis
	RedisPass        string // Redis password
	RedisDB          int    // Redis database number
	SessionKey       string // Key holding the persisted session snapshot
	SessionFile      string // Snapshot file used when Redis is disabled
	MaxUploadMB      int    // Upload size limit in megabytes
	IsProd           bool   // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppName:          getEnv("APP_NAME", "AppName"),            // Application name
		AppPort:          getEnv("APP_PORT", "8080"),               // Application port
		LogLevel:         getEnv("LOG_LEVEL", "info"),              // Log level
		JWTSecret:        getEnv("JWT_SECRET", "change-me"),        // JWT secret key
		AdminUsername:    getEnv("ADMIN_USERNAME", "admin"),        // Admin username
		AdminPassword:    getEnv("ADMIN_PASSWORD", "admin"),        // Admin password
		AdminTokenTTLMin: getEnvInt("ADMIN_TOKEN_TTL_MINUTES", 60), // Admin token lifetime
		RedisAddr:        os.Getenv("REDIS_ADDR"),                  // Redis server address
		RedisPass:        os.Getenv("REDIS_PASS"),                  // Redis password
		RedisDB:          getEnvInt("REDIS_DB", 0),                 // Redis database number
		SessionKey:       getEnv("SESSION_KEY", "currentUser"),     // Persisted session key
		SessionFile:      getEnv("SESSION_FILE", ".session.json"),  // Snapshot file
		MaxUploadMB:      getEnvInt("MAX_UPLOAD_MB", 10),           // Upload limit
		IsProd:           os.Getenv("IS_PROD") == "true",           // Is production environment
	}
}

// getEnv returns the variable or def when it is unset or empty
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt parses the variable as an int, falling back to def
func getEnvInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}
