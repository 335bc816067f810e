package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DBPath        string
	Port          string
	SessionSecret string
	Env           string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	config := &Config{
		DBPath:        os.Getenv("DB_PATH"),
		Port:          os.Getenv("PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Env:           os.Getenv("ENV"),
	}

	return config, nil
}
