package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port            string
	DatabasePath    string
	AgentURL        string
	AccessTokenHash string
	LogLevel        string
}

// Load reads configuration from a .env file (if present) and the
// environment, falling back to defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	return &Config{
		Port:            getEnv("PORT", "5000"),
		DatabasePath:    getEnv("DATABASE_PATH", "./history.db"),
		AgentURL:        getEnv("AGENT_URL", ""),
		AccessTokenHash: getEnv("ACCESS_TOKEN_HASH", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
