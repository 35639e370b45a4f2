// File: /config/config.go
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Media uploads
	UploadDir string

	// Full-text search dictionary used on postgres
	SearchLanguage string

	// Rate limiting for the auth endpoints
	AuthRequestsPerMinute int
	AuthBurst             int

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))
	authRPM, _ := strconv.Atoi(getEnv("AUTH_REQUESTS_PER_MINUTE", "30"))
	authBurst, _ := strconv.Atoi(getEnv("AUTH_BURST", "10"))

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "host=localhost user=pulsenet password=pulsenet dbname=pulsenet port=5432 sslmode=disable"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),

		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		SearchLanguage: getEnv("SEARCH_LANGUAGE", "english"),

		AuthRequestsPerMinute: authRPM,
		AuthBurst:             authBurst,

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@pulsenet.app"),
		FromName:     getEnv("FROM_NAME", "PulseNet"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
