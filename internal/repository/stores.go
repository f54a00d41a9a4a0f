package repository

import (
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/vehicle_gatepass/internal/models"
	"github.com/sirupsen/logrus"
)

// SlotFactory создает слот для логического ключа
type SlotFactory func(key string) Slot

func MemorySlots() SlotFactory {
	return func(key string) Slot { return NewMemorySlot(key) }
}

func PostgresSlots(db *pgxpool.Pool) SlotFactory {
	return func(key string) Slot { return NewPostgresSlot(db, key) }
}

func RedisSlots(client *redis.Client, prefix string) SlotFactory {
	return func(key string) Slot { return NewRedisSlot(client, prefix, key) }
}

func SQLiteSlots(db *sql.DB) SlotFactory {
	return func(key string) Slot { return NewSQLiteSlot(db, key) }
}

// Stores - все коллекции приложения поверх одного бэкенда
type Stores struct {
	Violations    *JSONStore[models.Violation]
	Notifications *JSONStore[models.Notification]
	Passes        *JSONStore[models.IssuedPass]
}

func NewStores(slots SlotFactory, logger *logrus.Logger, maxRetries int) *Stores {
	return &Stores{
		Violations:    NewJSONStore[models.Violation](slots(ViolationsSlot), logger, maxRetries),
		Notifications: NewJSONStore[models.Notification](slots(NotificationsSlot), logger, maxRetries),
		Passes:        NewJSONStore[models.IssuedPass](slots(PassesSlot), logger, maxRetries),
	}
}
