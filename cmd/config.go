package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort = "8080"
	defaultLogLevel = "info"
)

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	LogLevel       string
	ReportSchedule string
}

// LoadConfig reads the configuration from the environment. Variables found in
// envFile are applied first without overriding the real environment; a
// missing file is not an error.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	config := Config{
		HTTPPort:       envOrDefault("HTTP_PORT", defaultHTTPPort),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      os.Getenv("DB_SSLMODE"),
		LogLevel:       envOrDefault("LOG_LEVEL", defaultLogLevel),
		ReportSchedule: strings.TrimSpace(os.Getenv("REPORT_SCHEDULE")),
	}

	if _, err := config.SlogLevel(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// DSN builds the postgres connection string. Empty parts are left out so the
// driver defaults apply.
func (c Config) DSN() string {
	parts := make([]string, 0, 6)
	for _, kv := range [][2]string{
		{"host", c.DBHost},
		{"port", c.DBPort},
		{"user", c.DBUser},
		{"password", c.DBPassword},
		{"dbname", c.DBName},
		{"sslmode", c.DBSslMode},
	} {
		if kv[1] != "" {
			parts = append(parts, kv[0]+"="+kv[1])
		}
	}
	return strings.Join(parts, " ")
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewLogger creates the JSON logger shared by every component.
func NewLogger(c Config, w io.Writer) *slog.Logger {
	level, err := c.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
