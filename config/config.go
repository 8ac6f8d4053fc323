// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr    string
	DBPath        string
	SessionSecret string
	LogLevel      string

	// Bootstrap admin account, created on first run.
	AdminUsername string
	AdminPassword string

	// Shared secret for verifying voice-agent webhook signatures.
	// Empty disables verification (local development).
	WebhookSecret string
}

func Load() Config {
	// Missing .env is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	return Config{
		ListenAddr:    getenv("CHATMAN_LISTEN_ADDR", ":8080"),
		DBPath:        getenv("CHATMAN_DB_PATH", "./chatman.db"),
		SessionSecret: getenv("CHATMAN_SESSION_SECRET", "dev-secret-change-me"),
		LogLevel:      getenv("CHATMAN_LOG_LEVEL", "info"),
		AdminUsername: getenv("CHATMAN_ADMIN_USER", "admin"),
		AdminPassword: getenv("CHATMAN_ADMIN_PASSWORD", "changeme"),
		WebhookSecret: os.Getenv("CHATMAN_WEBHOOK_SECRET"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
