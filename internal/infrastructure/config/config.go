// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// PostgreSQL (schedule projection)
	PostgresDSN string

	// MongoDB (import jobs)
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// Schedule import
	ImportPollInterval time.Duration
	InboxDir           string
	InboxPollInterval  time.Duration
	UploadDir          string
	MaxUploadBytes     int64
	SaveToDatabase     bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost user=campusops password=campusops dbname=campusops port=5432 sslmode=disable"),

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "campusops"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		ImportPollInterval: time.Duration(getEnvAsInt("IMPORT_POLL_INTERVAL", 30)) * time.Second,
		InboxDir:           getEnv("INBOX_DIR", "inbox"),
		InboxPollInterval:  time.Duration(getEnvAsInt("INBOX_POLL_INTERVAL", 10)) * time.Second,
		UploadDir:          getEnv("UPLOAD_DIR", os.TempDir()),
		MaxUploadBytes:     int64(getEnvAsInt("MAX_UPLOAD_BYTES", 5*1024*1024)),
		SaveToDatabase:     getEnvAsBool("IMPORT_SAVE_TO_DATABASE", true),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
