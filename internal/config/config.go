// Package config содержит загрузку и валидацию конфигурации.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Режимы запуска приложения.
const (
	RunModeOnce   = "once"
	RunModeDaemon = "daemon"
)

// Config представляет конфигурацию приложения
type Config struct {
	// GitHub
	GithubToken    string
	GithubUsername string
	APIBaseURL     string

	// Telegram
	TelegramBotToken string
	TelegramChatID   int64

	// Sync
	MaxActionsPerRun int
	ActionDelayMin   time.Duration
	ActionDelayMax   time.Duration
	PageSize         int
	PageDelay        time.Duration

	// Run mode
	RunMode      string
	SyncSchedule string

	// Health
	HealthPort         string
	HealthCheckEnabled bool

	// Logging
	LogLevel string

	// App Data Directory
	AppDataDir    string
	WhitelistPath string
	BlacklistPath string
	DatabasePath  string

	// HTTP Client
	HTTPClientConfig HTTPClientConfig

	// Retry
	RetryConfig RetryConfig
}

// HTTPClientConfig представляет конфигурацию HTTP клиента
type HTTPClientConfig struct {
	Timeout               time.Duration
	MaxIdleConns          int
	MaxIdleConnsPerHost   int
	IdleConnTimeout       time.Duration
	TLSHandshakeTimeout   time.Duration
	ResponseHeaderTimeout time.Duration
	DisableKeepAlives     bool
}

// RetryConfig представляет конфигурацию retry механизма
type RetryConfig struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// Загружаем .env файл если он существует
	_ = godotenv.Load()

	dataDir := getEnv("APP_DATA_DIR", "./data")

	config := &Config{
		GithubToken:        getEnv("GITHUB_TOKEN", ""),
		GithubUsername:     getEnv("GITHUB_USERNAME", ""),
		APIBaseURL:         getEnv("GITHUB_API_BASE_URL", "https://api.github.com"),
		TelegramBotToken:   getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:     getEnvInt64("TELEGRAM_CHAT_ID", 0),
		MaxActionsPerRun:   getEnvInt("MAX_ACTIONS_PER_RUN", 10),
		ActionDelayMin:     getEnvDuration("ACTION_DELAY_MIN", 2*time.Second),
		ActionDelayMax:     getEnvDuration("ACTION_DELAY_MAX", 5*time.Second),
		PageSize:           getEnvInt("PAGE_SIZE", 100),
		PageDelay:          getEnvDuration("PAGE_DELAY", 500*time.Millisecond),
		RunMode:            getEnv("RUN_MODE", RunModeOnce),
		SyncSchedule:       getEnv("SYNC_SCHEDULE", "0 * * * *"),
		HealthPort:         getEnv("HEALTH_PORT", "8080"),
		HealthCheckEnabled: getEnvBool("HEALTH_CHECK_ENABLED", false),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		AppDataDir:         dataDir,
		WhitelistPath:      getEnv("WHITELIST_PATH", filepath.Join(dataDir, "whitelist.txt")),
		BlacklistPath:      getEnv("BLACKLIST_PATH", filepath.Join(dataDir, "blacklist.txt")),
		DatabasePath:       getEnv("DATABASE_PATH", filepath.Join(dataDir, "history.db")),
		HTTPClientConfig: HTTPClientConfig{
			Timeout:               getEnvDuration("HTTP_TIMEOUT", 30*time.Second),
			MaxIdleConns:          getEnvInt("HTTP_MAX_IDLE_CONNS", 100),
			MaxIdleConnsPerHost:   getEnvInt("HTTP_MAX_IDLE_CONNS_PER_HOST", 10),
			IdleConnTimeout:       getEnvDuration("HTTP_IDLE_CONN_TIMEOUT", 90*time.Second),
			TLSHandshakeTimeout:   getEnvDuration("HTTP_TLS_HANDSHAKE_TIMEOUT", 10*time.Second),
			ResponseHeaderTimeout: getEnvDuration("HTTP_RESPONSE_HEADER_TIMEOUT", 30*time.Second),
			DisableKeepAlives:     getEnvBool("HTTP_DISABLE_KEEP_ALIVES", false),
		},
		RetryConfig: RetryConfig{
			MaxRetries:   getEnvInt("RETRY_MAX_RETRIES", 3),
			InitialDelay: getEnvDuration("RETRY_INITIAL_DELAY", 1*time.Second),
			MaxDelay:     getEnvDuration("RETRY_MAX_DELAY", 30*time.Second),
		},
	}

	// Валидация обязательных полей
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.GithubToken == "" {
		return fmt.Errorf("GITHUB_TOKEN is required")
	}

	if c.GithubUsername == "" {
		return fmt.Errorf("GITHUB_USERNAME is required")
	}

	if c.MaxActionsPerRun < 0 {
		return fmt.Errorf("MAX_ACTIONS_PER_RUN must not be negative")
	}

	if c.ActionDelayMin < 0 || c.ActionDelayMax < c.ActionDelayMin {
		return fmt.Errorf("action delay bounds are invalid: min=%s max=%s", c.ActionDelayMin, c.ActionDelayMax)
	}

	if c.PageSize < 1 || c.PageSize > 100 {
		return fmt.Errorf("PAGE_SIZE must be between 1 and 100")
	}

	if c.RunMode != RunModeOnce && c.RunMode != RunModeDaemon {
		return fmt.Errorf("RUN_MODE must be %q or %q", RunModeOnce, RunModeDaemon)
	}

	// Telegram опционален, но настройка должна быть полной
	if c.TelegramBotToken != "" && c.TelegramChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}
	if c.TelegramChatID != 0 && c.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required when TELEGRAM_CHAT_ID is set")
	}

	return nil
}

// TelegramEnabled сообщает, настроены ли уведомления в Telegram
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != 0
}

// getEnv получает переменную окружения с значением по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает переменную окружения как int
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvInt64 получает переменную окружения как int64
func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration получает переменную окружения как time.Duration
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvBool получает переменную окружения как bool
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
