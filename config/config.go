package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// HTTP
	ListenAddr      string
	CORSAllowOrigin string

	// Logging
	LogLevel string

	// Exchange used when a request names none. Empty means queries without
	// an exchange get empty results.
	DefaultExchange string

	// Export targets (empty = disabled)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SQLitePath    string

	// Admin API (empty = disabled)
	AdminTOTPSecret string

	// Export failure alerts (empty = log only)
	NotifyWebhookURL string
}

// Load reads an optional .env file and then the environment, applying
// defaults for anything unset. Variables already set in the environment
// win over the .env file.
func Load() *Config {
	LoadDotEnv(".env")

	return &Config{
		ListenAddr:      getEnv("HOLIDAYS_ADDR", ":8080"),
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "*"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		DefaultExchange: strings.ToUpper(getEnv("DEFAULT_EXCHANGE", "")),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		SQLitePath:    getEnv("SQLITE_PATH", ""),

		AdminTOTPSecret:  getEnv("ADMIN_TOTP_SECRET", ""),
		NotifyWebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
	}
}

// LoadDotEnv loads path into the environment if it exists.
func LoadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		slog.Warn("[config] failed to load env file", "path", path, "error", err)
	}
}

// RedisEnabled reports whether a Redis export target is configured.
func (c *Config) RedisEnabled() bool { return c.RedisAddr != "" }

// SQLiteEnabled reports whether a SQLite export target is configured.
func (c *Config) SQLiteEnabled() bool { return c.SQLitePath != "" }

// AdminEnabled reports whether the TOTP-protected admin API is on.
func (c *Config) AdminEnabled() bool { return c.AdminTOTPSecret != "" }

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		slog.Warn("[config] invalid integer, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
