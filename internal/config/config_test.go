package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightimpact/impactboard/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("IMPACTBOARD_DATA_DIR", t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8990, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "starttls", cfg.SMTPEncryption)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("IMPACTBOARD_DATA_DIR", t.TempDir())
	t.Setenv("PORT", "9001")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "noreply@impactboard.example")
	t.Setenv("IMPACTBOARD_LOCALE", "es")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "es", cfg.DefaultLocale)

	smtp := cfg.SMTP()
	assert.Equal(t, "smtp.example.com", smtp.Host)
	assert.Equal(t, "noreply@impactboard.example", smtp.FromAddr)
}

func TestSlogLevel_Unknown(t *testing.T) {
	cfg := &config.AppConfig{LogLevel: "verbose"}
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &config.AppConfig{CORSOrigins: "http://localhost:5173, https://app.impactboard.example ,"}
	assert.Equal(t,
		[]string{"http://localhost:5173", "https://app.impactboard.example"},
		cfg.AllowedOrigins())
}

func TestPaths(t *testing.T) {
	cfg := &config.AppConfig{DataDir: "/var/lib/impactboard"}
	assert.Equal(t, "/var/lib/impactboard/logs", cfg.LogDir())
	assert.Equal(t, "/var/lib/impactboard/impactboard.db", cfg.DBPath())
}
