// Package config provides configuration management for the discovery server
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the discovery server
type Config struct {
	Server    ServerConfig
	Discovery DiscoveryConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DiscoveryConfig holds subproject scan configuration
type DiscoveryConfig struct {
	// BaseDir is set by DISCOVERY_BASE_DIR. It defaults to ".", the
	// process working directory, not the directory holding the binary.
	BaseDir   string
	EntryFile string
	Verbose   bool
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level slog.Level
}

// Load loads configuration from environment with defaults.
// A .env file in the working directory is read first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:         strings.TrimPrefix(getEnv("PORT", "4000"), ":"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Discovery: DiscoveryConfig{
			BaseDir:   getEnv("DISCOVERY_BASE_DIR", "."),
			EntryFile: getEnv("DISCOVERY_ENTRY_FILE", "index.py"),
			Verbose:   getBool("DISCOVERY_VERBOSE", false),
		},
		Log: LogConfig{
			Level: parseLevel(getEnv("LOG_LEVEL", "info")),
		},
	}
}

// Addr returns the listen address, binding all interfaces
func (c ServerConfig) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return v
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
