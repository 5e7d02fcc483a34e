package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DatabaseURL         string
	FirebaseCredentials string
	GeminiApiKey        string
	APNSAuthKeyPath     string
	APNSKeyID           string
	APNSTeamID          string
	APNSTopic           string
	APNSMode            string
	NatsURL             string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		GeminiApiKey:        getEnv("GEMINI_API_KEY", ""),
		APNSAuthKeyPath:     getEnv("APNS_AUTH_KEY_PATH", ""),
		APNSKeyID:           getEnv("APNS_KEY_ID", ""),
		APNSTeamID:          getEnv("APNS_TEAM_ID", ""),
		APNSTopic:           getEnv("APNS_TOPIC", ""),
		APNSMode:            getEnv("APNS_MODE", "development"),
		NatsURL:             getEnv("NATS_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
