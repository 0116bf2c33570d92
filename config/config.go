package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all configuration for the application, read once at startup.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTExpiry   int // hours
	UploadDir   string
	CORSOrigins []string

	// When true a daily job moves past confirmed bookings to completed.
	AutoCompleteBookings bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	return &Config{
		Port:                 getEnv("PORT", "8080"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		JWTSecret:            getEnv("JWT_SECRET", "massage-haven-dev-secret"),
		JWTExpiry:            getEnvInt("JWT_EXPIRY_HOURS", 24),
		UploadDir:            getEnv("UPLOAD_DIR", "client/public/images"),
		CORSOrigins:          []string{getEnv("CORS_ORIGIN", "http://localhost:3000")},
		AutoCompleteBookings: getEnvBool("AUTO_COMPLETE_BOOKINGS", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
