package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/vehicle_gatepass/internal/config"
	"github.com/shenikar/vehicle_gatepass/internal/repository"
	"github.com/shenikar/vehicle_gatepass/internal/service"
	"github.com/shenikar/vehicle_gatepass/internal/webhook"
	"github.com/shenikar/vehicle_gatepass/pkg/postgres"
	redisclient "github.com/shenikar/vehicle_gatepass/pkg/redis"
	"github.com/shenikar/vehicle_gatepass/pkg/sqlite"
	"github.com/sirupsen/logrus"
)

// App - собранные зависимости процесса: хранилища, сервисы и подключения
type App struct {
	Config *config.Config
	Logger *logrus.Logger

	Stores        *repository.Stores
	Violations    service.ViolationService
	Notifications service.NotificationService
	Passes        service.PassService
	Gate          service.GateService

	redis   *redis.Client
	closers []func()
}

// New подключается к выбранному бэкенду и собирает сервисы
func New(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: log}

	slots, err := a.openSlots(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	publisher, err := a.webhookPublisher(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Stores = repository.NewStores(slots, log, cfg.StoreMaxRetries)
	a.Violations = service.NewViolationService(a.Stores.Violations, log, cfg)
	a.Notifications = service.NewNotificationService(a.Stores.Notifications, publisher, log, cfg)
	a.Passes = service.NewPassService(a.Stores.Passes, log)
	a.Gate = service.NewGateService(a.Violations, a.Passes, log)
	return a, nil
}

func (a *App) openSlots(ctx context.Context) (repository.SlotFactory, error) {
	cfg := a.Config
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		if err := RunMigrations(cfg, a.Logger); err != nil {
			return nil, err
		}
		pool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		a.Logger.Info("Successfully connected to PostgreSQL")
		return repository.PostgresSlots(pool), nil

	case config.BackendRedis:
		client, err := a.redisClient(ctx)
		if err != nil {
			return nil, err
		}
		return repository.RedisSlots(client, cfg.RedisKeyPrefix), nil

	case config.BackendSQLite:
		db, err := sqlite.NewSQLiteDB(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = db.Close() })
		a.Logger.WithField("path", cfg.SQLitePath).Info("Opened SQLite database")
		return repository.SQLiteSlots(db), nil

	case config.BackendMemory:
		a.Logger.Warn("Using in-memory storage, records are lost on restart")
		return repository.MemorySlots(), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

// redisClient подключается к Redis один раз и переиспользует клиента
func (a *App) redisClient(ctx context.Context) (*redis.Client, error) {
	if a.redis != nil {
		return a.redis, nil
	}
	client, err := redisclient.NewRedisClient(ctx, a.Config.RedisAddr, a.Config.RedisPass, a.Config.RedisDB)
	if err != nil {
		return nil, err
	}
	a.redis = client
	a.closers = append(a.closers, func() { _ = client.Close() })
	a.Logger.Info("Successfully connected to Redis")
	return client, nil
}

// webhookPublisher - очередь в Redis, если заданы Redis и адрес вебхука; иначе события отбрасываются
func (a *App) webhookPublisher(ctx context.Context) (webhook.WebhookPublisher, error) {
	if a.Config.RedisAddr == "" || a.Config.WebhookURL == "" {
		a.Logger.Info("Webhook delivery disabled")
		return webhook.NopWebhookPublisher{}, nil
	}
	client, err := a.redisClient(ctx)
	if err != nil {
		return nil, err
	}
	return webhook.NewRedisWebhookPublisher(client, a.Config.RedisKeyPrefix), nil
}

// StartBackground запускает воркер вебхуков и очистку уведомлений до отмены ctx
func (a *App) StartBackground(ctx context.Context) {
	if a.redis != nil && a.Config.WebhookURL != "" {
		webhook.NewWebhookWorker(a.redis, a.Logger, a.Config).Start(ctx)
	}
	service.StartPurgeLoop(ctx, a.Notifications, a.Config.NotificationPurgeInterval, a.Logger)
}

// Close освобождает подключения в обратном порядке
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
