// Package config reads server configuration from the environment.
package config

import "os"

// Config holds everything the server needs to start.
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// DataDir is where the state file lives.
	DataDir string
	// StaticDir holds the frontend build; empty disables static serving.
	StaticDir string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load builds a Config from environment variables, applying defaults for
// anything unset.
func Load() Config {
	return Config{
		Port:      getEnv("HTTP_PORT", "8080"),
		DataDir:   getEnv("DATA_PATH", "./data"),
		StaticDir: getEnv("STATIC_PATH", ""),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
