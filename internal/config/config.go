// Package config loads server configuration from the environment, with an
// optional .env file in front of it.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration of the imagelab server.
type Config struct {
	// Addr is the listen address of the HTTP shell.
	Addr string

	// MaxUploadMB caps the size of an uploaded image in mebibytes.
	MaxUploadMB int64

	// GridRows and GridCols are the default grid overlay dimensions.
	GridRows int
	GridCols int

	// MinArea is the default minimum contour area for object detection.
	MinArea int

	// LogLevel selects the logging verbosity: debug, info, warn or error.
	LogLevel string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment variables
// take precedence over it. Missing values fall back to defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:        getEnv("IMAGELAB_ADDR", ":8080"),
		MaxUploadMB: getEnvAsInt64("IMAGELAB_MAX_UPLOAD_MB", 16),
		GridRows:    getEnvAsInt("IMAGELAB_GRID_ROWS", 4),
		GridCols:    getEnvAsInt("IMAGELAB_GRID_COLS", 4),
		MinArea:     getEnvAsInt("IMAGELAB_MIN_AREA", 500),
		LogLevel:    getEnv("IMAGELAB_LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
