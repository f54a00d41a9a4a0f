package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/vehicle_gatepass/internal/config"
	"github.com/shenikar/vehicle_gatepass/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) *WebhookWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewWebhookWorker(nil, logger, cfg)
}

func testEvent(t *testing.T) (WebhookEvent, string) {
	t.Helper()
	event := NewNotificationEvent(models.Notification{
		ID:          uuid.New(),
		Type:        models.NotificationSuspended,
		Title:       "Suspended vehicle at gate",
		PlateNumber: "XYZ999",
		Timestamp:   time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC),
		Priority:    models.PriorityHigh,
	})
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(payload)
}

func TestProcessWebhookEvent_SignedDelivery(t *testing.T) {
	// Подготовка
	event, payload := testEvent(t)
	var gotSignature string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
	})

	// Действие
	ok := worker.processWebhookEvent(context.Background(), event, payload)

	// Проверки
	assert.True(t, ok)
	assert.Equal(t, payload, string(gotBody))
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
}

func TestProcessWebhookEvent_RetriesThenSucceeds(t *testing.T) {
	event, payload := testEvent(t)
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	})

	assert.True(t, worker.processWebhookEvent(context.Background(), event, payload))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestProcessWebhookEvent_GivesUp(t *testing.T) {
	event, payload := testEvent(t)
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Empty(t, r.Header.Get("X-Webhook-Signature"))
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	worker := newTestWorker(&config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 2,
		WebhookBaseDelay:  time.Millisecond,
	})

	assert.False(t, worker.processWebhookEvent(context.Background(), event, payload))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestProcessWebhookEvent_NoURL(t *testing.T) {
	event, payload := testEvent(t)
	worker := newTestWorker(&config.Config{WebhookMaxRetries: 3})

	assert.False(t, worker.processWebhookEvent(context.Background(), event, payload))
}

func TestQueueKey(t *testing.T) {
	assert.Equal(t, "gatepass:webhook_events", QueueKey("gatepass:"))
	assert.Equal(t, "webhook_events", QueueKey(""))
}

func TestNopWebhookPublisher(t *testing.T) {
	event, _ := testEvent(t)
	assert.NoError(t, NopWebhookPublisher{}.Publish(context.Background(), event))
}
