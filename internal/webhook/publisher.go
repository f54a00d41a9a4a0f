package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/vehicle_gatepass/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

const (
	webhookQueueKey = "webhook_events"
)

// WebhookEvent - структура для данных вебхука об уведомлении
type WebhookEvent struct {
	NotificationID uuid.UUID               `json:"notification_id"`
	Type           models.NotificationType `json:"type"`
	Title          string                  `json:"title"`
	Message        string                  `json:"message,omitempty"`
	PlateNumber    string                  `json:"plate_number,omitempty"`
	Priority       models.Priority         `json:"priority"`
	Timestamp      time.Time               `json:"timestamp"`
}

// NewNotificationEvent собирает событие вебхука из уведомления
func NewNotificationEvent(n models.Notification) WebhookEvent {
	return WebhookEvent{
		NotificationID: n.ID,
		Type:           n.Type,
		Title:          n.Title,
		Message:        n.Message,
		PlateNumber:    n.PlateNumber,
		Priority:       n.Priority,
		Timestamp:      n.Timestamp,
	}
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
	queueKey    string
}

// NewRedisWebhookPublisher создает RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client, keyPrefix string) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
		queueKey:    QueueKey(keyPrefix),
	}
}

// QueueKey - имя списка-очереди с учетом префикса
func QueueKey(keyPrefix string) string {
	return keyPrefix + webhookQueueKey
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, p.queueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// NopWebhookPublisher используется, когда Redis не настроен
type NopWebhookPublisher struct{}

func (NopWebhookPublisher) Publish(context.Context, WebhookEvent) error { return nil }
