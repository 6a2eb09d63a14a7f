// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/brightimpact/impactboard/internal/notification"
)

// AppConfig holds all application-level configuration loaded from environment
// variables. Loaded once at startup; read-only afterwards.
type AppConfig struct {
	// Port is the HTTP server port. Defaults to 8990.
	Port int `envconfig:"PORT" default:"8990"`

	// DataDir is the root data directory. Defaults to ~/.impactboard.
	DataDir string `envconfig:"IMPACTBOARD_DATA_DIR"`

	// LogLevel sets the minimum log level (debug, info, warn, error). Defaults to info.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// DefaultLocale selects the notification message catalog (BCP 47).
	// Unsupported locales fall back to English.
	DefaultLocale string `envconfig:"IMPACTBOARD_LOCALE" default:"en"`

	// CORSOrigins is a comma-separated list of allowed browser origins.
	CORSOrigins string `envconfig:"IMPACTBOARD_CORS_ORIGINS" default:"http://localhost:5173"`

	// SMTP transport credentials.
	SMTPHost       string `envconfig:"SMTP_HOST"`
	SMTPPort       int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername   string `envconfig:"SMTP_USERNAME"`
	SMTPPassword   string `envconfig:"SMTP_PASSWORD"`
	SMTPFrom       string `envconfig:"SMTP_FROM"`
	SMTPEncryption string `envconfig:"SMTP_ENCRYPTION" default:"starttls"` // "none", "starttls", "ssl_tls"
}

// Load reads AppConfig from environment variables using envconfig.
// DataDir defaults to ~/.impactboard if not set.
func Load() (*AppConfig, error) {
	var c AppConfig
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		c.DataDir = filepath.Join(home, ".impactboard")
	}
	return &c, nil
}

// SlogLevel converts the LogLevel string to a slog.Level.
// Unknown values default to slog.LevelInfo.
func (c *AppConfig) SlogLevel() slog.Level {
	switch c.LogLevel {
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

// LogDir returns the path to the log directory.
func (c *AppConfig) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// DBPath returns the path to the SQLite database file.
func (c *AppConfig) DBPath() string {
	return filepath.Join(c.DataDir, "impactboard.db")
}

// AllowedOrigins splits CORSOrigins into a slice.
func (c *AppConfig) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// SMTP returns the notification transport configuration.
func (c *AppConfig) SMTP() notification.SMTPConfig {
	return notification.SMTPConfig{
		Host:       c.SMTPHost,
		Port:       c.SMTPPort,
		Username:   c.SMTPUsername,
		Password:   c.SMTPPassword,
		FromAddr:   c.SMTPFrom,
		Encryption: c.SMTPEncryption,
	}
}
