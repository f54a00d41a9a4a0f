package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Поддерживаемые бэкенды слотов
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

const (
	DefaultSuspensionThreshold       = 3
	DefaultNotificationRetentionDays = 7
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Storage Config
	StorageBackend  string `env:"STORAGE_BACKEND" envDefault:"postgres"`
	DatabaseURL     string `env:"DATABASE_URL"`
	SQLitePath      string `env:"SQLITE_PATH" envDefault:"gatepass.db"`
	StoreMaxRetries int    `env:"STORE_MAX_RETRIES" envDefault:"5"`

	// Redis Config
	RedisAddr      string `env:"REDIS_ADDR"`
	RedisPass      string `env:"REDIS_PASSWORD"`
	RedisDB        int    `env:"REDIS_DB" envDefault:"0"`
	RedisKeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"gatepass:"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Violation rules
	SuspensionThreshold        int  `env:"SUSPENSION_THRESHOLD" envDefault:"3"`
	RequireReviewBeforePenalty bool `env:"REQUIRE_REVIEW_BEFORE_PENALTY" envDefault:"false"`

	// Notifications
	NotificationRetentionDays int           `env:"NOTIFICATION_RETENTION_DAYS" envDefault:"7"`
	NotificationPurgeInterval time.Duration `env:"NOTIFICATION_PURGE_INTERVAL" envDefault:"1h"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		HTTPPort:                   getEnv("HTTP_PORT", "8080"),
		LogLevel:                   getEnv("LOG_LEVEL", "info"),
		StorageBackend:             strings.ToLower(getEnv("STORAGE_BACKEND", BackendPostgres)),
		DatabaseURL:                os.Getenv("DATABASE_URL"),
		SQLitePath:                 getEnv("SQLITE_PATH", "gatepass.db"),
		StoreMaxRetries:            getEnvAsInt("STORE_MAX_RETRIES", 5),
		RedisAddr:                  os.Getenv("REDIS_ADDR"),
		RedisPass:                  os.Getenv("REDIS_PASSWORD"),
		RedisDB:                    getEnvAsInt("REDIS_DB", 0),
		RedisKeyPrefix:             getEnv("REDIS_KEY_PREFIX", "gatepass:"),
		WebhookURL:                 os.Getenv("WEBHOOK_URL"),
		WebhookSecret:              os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:             getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:          getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:           getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		SuspensionThreshold:        getEnvAsInt("SUSPENSION_THRESHOLD", DefaultSuspensionThreshold),
		RequireReviewBeforePenalty: getEnvAsBool("REQUIRE_REVIEW_BEFORE_PENALTY", false),
		NotificationRetentionDays:  getEnvAsInt("NOTIFICATION_RETENTION_DAYS", DefaultNotificationRetentionDays),
		NotificationPurgeInterval:  getEnvAsDuration("NOTIFICATION_PURGE_INTERVAL", time.Hour),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек хранилища
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for the postgres backend")
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR environment variable is required for the redis backend")
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH environment variable is required for the sqlite backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.SuspensionThreshold < 1 {
		return fmt.Errorf("SUSPENSION_THRESHOLD must be positive, got %d", c.SuspensionThreshold)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
