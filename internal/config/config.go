package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Session  SessionConfig
}

type ServerConfig struct {
	Port      string
	Host      string
	Env       string
	PublicDir string
}

type DatabaseConfig struct {
	Path string
}

type SessionConfig struct {
	// CookieMaxAge is the rolling lifetime, in seconds, of the sessionId and
	// cartCount cookies.
	CookieMaxAge int
}

func Load() (*Config, error) {
	// Load .env files if they exist (try .env.local first, then .env)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	config := &Config{
		Server: ServerConfig{
			Port:      getEnv("PORT", "3000"),
			Host:      getEnv("HOST", "localhost"),
			Env:       getEnv("ENV", "development"),
			PublicDir: getEnv("PUBLIC_DIR", "web/public"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "concerts.db"),
		},
		Session: SessionConfig{
			CookieMaxAge: getEnvAsInt("SESSION_COOKIE_MAX_AGE", 7*24*60*60),
		},
	}

	return config, nil
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
