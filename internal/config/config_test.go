package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("API_KEYS", "")
	t.Setenv("SUSPENSION_THRESHOLD", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.Equal(t, DefaultSuspensionThreshold, cfg.SuspensionThreshold)
	assert.Equal(t, DefaultNotificationRetentionDays, cfg.NotificationRetentionDays)
	assert.False(t, cfg.RequireReviewBeforePenalty)
	assert.Empty(t, cfg.APIKeys)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/gatepass.db")
	t.Setenv("API_KEYS", "key-a, key-b")
	t.Setenv("SUSPENSION_THRESHOLD", "5")
	t.Setenv("REQUIRE_REVIEW_BEFORE_PENALTY", "true")
	t.Setenv("WEBHOOK_BASE_DELAY", "250ms")
	t.Setenv("NOTIFICATION_PURGE_INTERVAL", "bogus")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.StorageBackend)
	assert.Equal(t, "/tmp/gatepass.db", cfg.SQLitePath)
	assert.Equal(t, []string{"key-a", "key-b"}, cfg.APIKeys)
	assert.Equal(t, 5, cfg.SuspensionThreshold)
	assert.True(t, cfg.RequireReviewBeforePenalty)
	assert.Equal(t, 250*time.Millisecond, cfg.WebhookBaseDelay)
	// Неразборчивое значение заменяется значением по умолчанию
	assert.Equal(t, time.Hour, cfg.NotificationPurgeInterval)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "memory", cfg: Config{StorageBackend: BackendMemory, SuspensionThreshold: 3}},
		{name: "postgres without url", cfg: Config{StorageBackend: BackendPostgres, SuspensionThreshold: 3}, wantErr: "DATABASE_URL"},
		{name: "redis without addr", cfg: Config{StorageBackend: BackendRedis, SuspensionThreshold: 3}, wantErr: "REDIS_ADDR"},
		{name: "sqlite without path", cfg: Config{StorageBackend: BackendSQLite, SuspensionThreshold: 3}, wantErr: "SQLITE_PATH"},
		{name: "unknown backend", cfg: Config{StorageBackend: "localstorage", SuspensionThreshold: 3}, wantErr: "unknown STORAGE_BACKEND"},
		{name: "zero threshold", cfg: Config{StorageBackend: BackendMemory}, wantErr: "SUSPENSION_THRESHOLD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
