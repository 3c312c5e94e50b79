package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DatabaseConfig holds connection pool tunables. The recycle interval and the
// startup liveness ping are the only knobs the service exposes.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration // recycle interval for pooled connections
	PingOnStart     bool          // pre-flight liveness check
}

type Config struct {
	// Server
	Port string
	Env  string // "development", "production"

	// Database
	Database DatabaseConfig

	// CORS
	AllowedOrigins []string
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in first when present.
func Load() *Config {
	_ = godotenv.Load()

	env := getEnv("ENV", "development")

	return &Config{
		Port: getEnv("PORT", "8080"),
		Env:  env,

		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", "postgres://localhost:5432/lana?sslmode=disable"),
			MaxOpenConns:    getIntEnv("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			PingOnStart:     getBoolEnv("DB_PING_ON_START", true),
		},

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
