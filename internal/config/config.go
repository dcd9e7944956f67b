// Package config загружает настройки сервиса из окружения.
//
// Перед чтением переменных подхватывается .env из рабочего каталога,
// если он есть. Уже заданные переменные окружения не перезаписываются.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/shaiso/restaurant/internal/telemetry"
)

// Значения по умолчанию.
const (
	DefaultPort            = 3000
	DefaultShutdownTimeout = 10 * time.Second
)

// Config — настройки restaurant-api.
type Config struct {
	HTTP HTTPConfig
	Menu MenuConfig
	AMQP AMQPConfig

	// Log — из LOG_LEVEL (DEBUG, INFO, WARN, ERROR) и LOG_FORMAT (json, text).
	Log telemetry.LogOptions
}

// HTTPConfig — настройки HTTP сервера.
type HTTPConfig struct {
	Port            int
	ShutdownTimeout time.Duration
}

// Addr возвращает адрес для net/http.
func (c HTTPConfig) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// MenuConfig — настройки коллекции меню.
type MenuConfig struct {
	// SeedFile — TOML с начальным меню. Пусто — встроенное меню.
	SeedFile string
}

// AMQPConfig — настройки публикации событий.
type AMQPConfig struct {
	// URL брокера. Пусто — события не публикуются.
	URL string
}

// Enabled возвращает true, если публикация событий включена.
func (c AMQPConfig) Enabled() bool {
	return c.URL != ""
}

// Load читает .env (если есть) и переменные окружения.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}

	shutdownTimeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "INFO"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	format, err := telemetry.ParseLogFormat(os.Getenv("LOG_FORMAT"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_FORMAT: %w", err)
	}

	return &Config{
		HTTP: HTTPConfig{
			Port:            port,
			ShutdownTimeout: shutdownTimeout,
		},
		Menu: MenuConfig{
			SeedFile: getEnv("MENU_SEED_FILE", ""),
		},
		AMQP: AMQPConfig{
			URL: getEnv("AMQP_URL", ""),
		},
		Log: telemetry.LogOptions{
			Level:  level,
			Format: format,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
