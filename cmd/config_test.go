package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	for _, key := range []string{
		"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSLMODE", "LOG_LEVEL", "REPORT_SCHEDULE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", config.HTTPPort)
	assert.Equal(t, "info", config.LogLevel)
	assert.Empty(t, config.ReportSchedule)
	assert.Empty(t, config.DSN())
}

func TestLoadConfig_EnvFileDoesNotOverrideEnvironment(t *testing.T) {
	clearConfigEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"HTTP_PORT=9090\nDB_HOST=db\nDB_NAME=logistics\nREPORT_SCHEDULE=0 */5 * * * *\n"), 0o600))
	t.Setenv("DB_HOST", "localhost")

	config, err := LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, "9090", config.HTTPPort)
	assert.Equal(t, "localhost", config.DBHost)
	assert.Equal(t, "logistics", config.DBName)
	assert.Equal(t, "0 */5 * * * *", config.ReportSchedule)
}

func TestLoadConfig_RejectsUnknownLogLevel(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid LOG_LEVEL "chatty"`)
}

func TestConfig_DSN(t *testing.T) {
	config := Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "username",
		DBPassword: "secret",
		DBName:     "logistics",
		DBSslMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=username password=secret dbname=logistics sslmode=disable",
		config.DSN())
}

func TestNewLogger_UsesConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{LogLevel: "warn"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown", "component", "test")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelWarn))
}
