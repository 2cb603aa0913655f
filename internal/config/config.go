// Package config resolves runtime settings from the environment.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort          = "8080"
	defaultDBPath        = "inventory.db"
	defaultServerName    = "clothing-inventory-server"
	defaultServerVersion = "1.0.0"
)

// Config holds everything the entrypoints need to wire the server.
type Config struct {
	Addr          string
	DBPath        string
	LogLevel      slog.Level
	ServerName    string
	ServerVersion string
}

// Load reads configuration from the environment, with an optional .env
// file merged in first. Functions-style custom handler hosts pass the
// listen port in FUNCTIONS_CUSTOMHANDLER_PORT; an explicit PORT wins.
func Load() Config {
	_ = godotenv.Load() // .env is optional

	port := defaultPort
	if p := os.Getenv("FUNCTIONS_CUSTOMHANDLER_PORT"); p != "" {
		port = p
	}
	if p := os.Getenv("PORT"); p != "" {
		port = p
	}

	dbPath := defaultDBPath
	if p := os.Getenv("DB_PATH"); p != "" {
		dbPath = p
	}

	return Config{
		Addr:          ":" + port,
		DBPath:        dbPath,
		LogLevel:      parseLevel(os.Getenv("LOG_LEVEL")),
		ServerName:    defaultServerName,
		ServerVersion: defaultServerVersion,
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
