package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationViolation    NotificationType = "violation"
	NotificationSuspended    NotificationType = "suspended"
	NotificationUnauthorized NotificationType = "unauthorized"
	NotificationSystem       NotificationType = "system"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Notification - уведомление для панелей охраны и администратора.
// Timestamp хранится в UTC, форматирование для показа делает клиент.
type Notification struct {
	ID             uuid.UUID        `json:"id"`
	Type           NotificationType `json:"type"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	PlateNumber    string           `json:"plate_number,omitempty"`
	Timestamp      time.Time        `json:"timestamp"`
	Acknowledged   bool             `json:"acknowledged"`
	AcknowledgedAt *time.Time       `json:"acknowledged_at,omitempty"`
	Priority       Priority         `json:"priority"`
}

func (n Notification) RecordID() uuid.UUID { return n.ID }

type NotificationInput struct {
	Type        NotificationType `json:"type" validate:"required,oneof=violation suspended unauthorized system"`
	Title       string           `json:"title" validate:"required"`
	Message     string           `json:"message"`
	PlateNumber string           `json:"plate_number"`
	Priority    Priority         `json:"priority" validate:"omitempty,oneof=low medium high"`
}
