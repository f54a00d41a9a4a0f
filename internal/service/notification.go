package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/vehicle_gatepass/internal/config"
	"github.com/shenikar/vehicle_gatepass/internal/metrics"
	"github.com/shenikar/vehicle_gatepass/internal/models"
	"github.com/shenikar/vehicle_gatepass/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=notification.go -destination=mocks/notification_mock.go -package=mocks

// NotificationService определяет контракт уведомлений для панелей
type NotificationService interface {
	Emit(ctx context.Context, input models.NotificationInput) (*models.Notification, error)
	Acknowledge(ctx context.Context, id uuid.UUID) error
	Unacknowledged(ctx context.Context) []models.Notification
	List(ctx context.Context) []models.Notification
	PurgeOlderThan(ctx context.Context, days int) (int, error)
}

type notificationService struct {
	store         RecordStore[models.Notification]
	publisher     webhook.WebhookPublisher
	logger        *logrus.Logger
	validate      *validator.Validate
	retentionDays int
	now           Clock
}

func NewNotificationService(store RecordStore[models.Notification], publisher webhook.WebhookPublisher, logger *logrus.Logger, cfg *config.Config) NotificationService {
	retention := cfg.NotificationRetentionDays
	if retention < 1 {
		retention = config.DefaultNotificationRetentionDays
	}
	return &notificationService{
		store:         store,
		publisher:     publisher,
		logger:        logger,
		validate:      newValidator(),
		retentionDays: retention,
		now:           systemClock,
	}
}

// Emit создает неподтвержденное уведомление в начале списка и ставит его в очередь вебхуков
func (s *notificationService) Emit(ctx context.Context, input models.NotificationInput) (*models.Notification, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.PlateNumber = strings.TrimSpace(input.PlateNumber)
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "Emit",
		"type":    input.Type,
		"plate":   input.PlateNumber,
	})

	if err := validateInput(s.validate, input); err != nil {
		log.WithError(err).Warn("Notification rejected")
		return nil, err
	}

	notification := models.Notification{
		ID:          uuid.New(),
		Type:        input.Type,
		Title:       input.Title,
		Message:     input.Message,
		PlateNumber: input.PlateNumber,
		Timestamp:   s.now(),
		Priority:    input.Priority,
	}
	if _, err := s.store.Prepend(ctx, notification); err != nil {
		log.WithError(err).Error("Failed to store notification")
		return nil, fmt.Errorf("service: could not emit notification: %w", err)
	}
	metrics.NotificationsEmitted.WithLabelValues(string(notification.Type)).Inc()

	// Доставка вебхука - best effort, уведомление уже сохранено
	if err := s.publisher.Publish(ctx, webhook.NewNotificationEvent(notification)); err != nil {
		log.WithError(err).Warn("Failed to publish notification webhook")
	}

	log.WithField("notification_id", notification.ID).Info("Notification emitted")
	return &notification, nil
}

// Acknowledge отмечает уведомление прочитанным; неизвестный id - не ошибка
func (s *notificationService) Acknowledge(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "notification",
		"method":          "Acknowledge",
		"notification_id": id,
	})
	ackAt := s.now()
	found, err := s.store.UpdateByID(ctx, id, func(n models.Notification) (models.Notification, error) {
		if !n.Acknowledged {
			n.Acknowledged = true
			n.AcknowledgedAt = &ackAt
		}
		return n, nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to acknowledge notification")
		return fmt.Errorf("service: could not acknowledge notification: %w", err)
	}
	if !found {
		log.Debug("Acknowledge for unknown notification ignored")
	}
	return nil
}

func (s *notificationService) Unacknowledged(ctx context.Context) []models.Notification {
	return s.store.Query(ctx, func(n models.Notification) bool {
		return !n.Acknowledged
	})
}

func (s *notificationService) List(ctx context.Context) []models.Notification {
	return s.store.LoadAll(ctx)
}

// PurgeOlderThan удаляет уведомления старше days суток; days <= 0 - срок хранения из конфигурации
func (s *notificationService) PurgeOlderThan(ctx context.Context, days int) (int, error) {
	if days <= 0 {
		days = s.retentionDays
	}
	cutoff := s.now().AddDate(0, 0, -days)
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "PurgeOlderThan",
		"cutoff":  cutoff,
	})

	removed := 0
	err := s.store.Mutate(ctx, func(records []models.Notification) ([]models.Notification, error) {
		kept := make([]models.Notification, 0, len(records))
		for _, n := range records {
			if n.Timestamp.Before(cutoff) {
				continue
			}
			kept = append(kept, n)
		}
		removed = len(records) - len(kept)
		return kept, nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to purge notifications")
		return 0, fmt.Errorf("service: could not purge notifications: %w", err)
	}

	log.WithField("removed", removed).Info("Old notifications purged")
	return removed, nil
}

// StartPurgeLoop периодически удаляет устаревшие уведомления до отмены ctx
func StartPurgeLoop(ctx context.Context, svc NotificationService, interval time.Duration, logger *logrus.Logger) {
	if interval <= 0 {
		return
	}
	logger.WithField("interval", interval).Info("Starting notification purge loop...")
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				logger.Info("Stopping notification purge loop.")
				return
			case <-ticker.C:
				if _, err := svc.PurgeOlderThan(ctx, 0); err != nil {
					logger.WithError(err).Error("Scheduled notification purge failed")
				}
			}
		}
	}()
}
