// Package config provides configuration for the trip planner backend.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the backend configuration.
type Config struct {
	// Server settings
	Port       int
	APIVersion string

	// Google Gemini API
	GeminiAPIKey string
	GeminiModel  string

	// Firebase
	FirebaseCredentialsPath string

	// CORS
	CORSOrigins string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		Port:                    getEnvInt("PORT", 8000),
		APIVersion:              getEnv("API_VERSION", "v1"),
		GeminiAPIKey:            getEnv("GEMINI_API_KEY", ""),
		GeminiModel:             getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase-credentials.json"),
		CORSOrigins:             getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
	}
	return cfg
}

// CORSOriginList splits the comma-separated origins setting.
func (c *Config) CORSOriginList() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
