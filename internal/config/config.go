package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the application reads from the environment.
// Loaded once in main and injected into the handler set.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Upload   UploadConfig
	CORS     CORSConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds MongoDB connection settings
type DatabaseConfig struct {
	URI            string
	Name           string
	MaxPoolSize    int
	ConnectTimeout time.Duration
}

// JWTConfig holds identity token settings.
// CookieName is the single session cookie the whole app uses.
type JWTConfig struct {
	Secret     string
	Expiry     time.Duration
	CookieName string
}

// AdminConfig is the back-office credential pair. The administrator is not a
// stored user row; login checks against these values directly and the admin
// guard re-checks the token email against Email (case-insensitive).
type AdminConfig struct {
	Email    string
	Password string
}

// UploadConfig controls where product images are written and how their
// public URLs are built.
type UploadConfig struct {
	Dir     string
	BaseURL string
}

// CORSConfig holds the single allowed frontend origin.
type CORSConfig struct {
	AllowedOrigin string
}

// Load reads the configuration from environment variables, falling back to
// local-development defaults. A .env file is honored when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			URI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Name:           getEnv("MONGODB_DATABASE", "kashvi"),
			MaxPoolSize:    getEnvAsInt("MONGODB_MAX_POOL_SIZE", 100),
			ConnectTimeout: getEnvAsDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", "kashvi-dev-secret-change-me"),
			Expiry:     getEnvAsDuration("JWT_EXPIRY", 7*24*time.Hour),
			CookieName: getEnv("SESSION_COOKIE_NAME", "kashvi_token"),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", "admin@kashvijewels.com"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		Upload: UploadConfig{
			Dir:     getEnv("UPLOAD_DIR", "./uploads"),
			BaseURL: getEnv("BASE_URL", "http://localhost:8080"),
		},
		CORS: CORSConfig{
			AllowedOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
		},
	}, nil
}

// Helper functions to get environment variables with defaults

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
