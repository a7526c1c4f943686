package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	LogLevel  string
	LogFormat string
	GinMode   string
	// HTTPPort enables the read-only front-end API when non-empty.
	// The MCP transport is always stdio and does not use this port.
	HTTPPort string
	// AllowedOrigins controls HTTP CORS for the front-end API.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
	// PythonBin is the interpreter used to run generated viewer
	// and PDF scripts.
	PythonBin string
	// ConfigDir holds the persisted settings file (config.json).
	ConfigDir string
	// SessionTTL enables the session reaper when > 0. Zero keeps
	// sessions for the lifetime of the process.
	SessionTTL time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "pretty"),
		GinMode:        getEnv("GIN_MODE", "release"),
		HTTPPort:       getEnv("HTTP_PORT", ""),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
		PythonBin:      getEnv("PYTHON_BIN", "python3"),
		ConfigDir:      getEnv("CONFIG_DIR", defaultConfigDir()),
		SessionTTL:     time.Duration(getEnvInt("SESSION_TTL_MINUTES", 0)) * time.Minute,
	}
}

// defaultConfigDir resolves the per-user configuration directory.
// Falls back to a hidden dir in the working directory if the OS
// location is unknown.
func defaultConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".quiznote"
	}
	return filepath.Join(base, "quiznote")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
