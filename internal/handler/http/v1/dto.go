package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/vehicle_gatepass/internal/models"
)

// ReportViolationRequest DTO для рапорта о нарушении
// @Description DTO для рапорта о нарушении. Обязательность полей проверяет сервис.
type ReportViolationRequest struct {
	PlateNumber   string   `json:"plate_number" validate:"max=20"`
	OwnerName     string   `json:"owner_name,omitempty" validate:"max=255"`
	OwnerType     string   `json:"owner_type,omitempty" validate:"omitempty,oneof=Student Faculty Staff Guest Others"`
	ViolationType string   `json:"violation_type" validate:"max=100"`
	Description   string   `json:"description" validate:"max=2000"`
	Severity      string   `json:"severity,omitempty" validate:"omitempty,oneof=low medium high"`
	ReportedBy    string   `json:"reported_by,omitempty"`
	Location      string   `json:"location,omitempty"`
	Evidence      []string `json:"evidence,omitempty" validate:"max=20"`
}

// ResolveViolationRequest DTO для закрытия нарушения
// @Description DTO для закрытия нарушения
type ResolveViolationRequest struct {
	Action     string `json:"action" validate:"required,max=255"`
	ResolvedBy string `json:"resolved_by,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// EscalateViolationRequest DTO для эскалации нарушения
// @Description DTO для эскалации нарушения
type EscalateViolationRequest struct {
	EscalatedBy string `json:"escalated_by,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// ApplyPenaltyRequest DTO для применения наказания
// @Description Warning, 1-Month Suspension, 6-Month Suspension или Permanent Deactivation
type ApplyPenaltyRequest struct {
	PenaltyType string `json:"penalty_type" validate:"required"`
	AppliedBy   string `json:"applied_by,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// PenaltyResponse DTO наказания
// @Description DTO наказания
type PenaltyResponse struct {
	Type      string    `json:"type"`
	Kind      string    `json:"kind"`
	Duration  string    `json:"duration,omitempty"`
	AppliedBy string    `json:"applied_by"`
	AppliedAt time.Time `json:"applied_at"`
	Notes     string    `json:"notes,omitempty"`
}

// ViolationResponse DTO для ответа с информацией о нарушении
// @Description DTO для ответа с информацией о нарушении
type ViolationResponse struct {
	ID             uuid.UUID          `json:"id"`
	PlateNumber    string             `json:"plate_number"`
	OwnerName      string             `json:"owner_name"`
	OwnerType      string             `json:"owner_type"`
	ViolationType  string             `json:"violation_type"`
	Description    string             `json:"description"`
	Severity       string             `json:"severity"`
	Status         string             `json:"status"`
	ReportedBy     string             `json:"reported_by"`
	ReportedAt     time.Time          `json:"reported_at"`
	Location       string             `json:"location"`
	Evidence       []string           `json:"evidence"`
	OffenseCount   int                `json:"offense_count"`
	Resolution     *models.Resolution `json:"resolution,omitempty"`
	Escalation     *models.Escalation `json:"escalation,omitempty"`
	CurrentPenalty *PenaltyResponse   `json:"current_penalty,omitempty"`
	Penalties      []PenaltyResponse  `json:"penalties"`
}

// ViolationListResponse DTO для страницы нарушений
// @Description DTO для страницы нарушений
type ViolationListResponse struct {
	Items    []*ViolationResponse `json:"items"`
	Total    int                  `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// SuspendedVehiclesResponse DTO списка номеров, превысивших порог нарушений
// @Description DTO списка номеров, превысивших порог нарушений
type SuspendedVehiclesResponse struct {
	Plates    []string `json:"plates"`
	Threshold int      `json:"threshold"`
}

// PlateViolationsResponse DTO для нарушений по номеру
// @Description DTO для нарушений по номеру
type PlateViolationsResponse struct {
	PlateNumber         string               `json:"plate_number"`
	HasActiveViolations bool                 `json:"has_active_violations"`
	Violations          []*ViolationResponse `json:"violations"`
}

// EmitNotificationRequest DTO для создания уведомления
// @Description DTO для создания уведомления
type EmitNotificationRequest struct {
	Type        string `json:"type" validate:"required,oneof=violation suspended unauthorized system"`
	Title       string `json:"title" validate:"required,max=255"`
	Message     string `json:"message,omitempty"`
	PlateNumber string `json:"plate_number,omitempty"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
}

// PurgeResponse DTO результата очистки уведомлений
// @Description DTO результата очистки уведомлений
type PurgeResponse struct {
	Removed int `json:"removed"`
}

// IssuePassRequest DTO для выдачи пропуска посетителю
// @Description DTO для выдачи пропуска посетителю
type IssuePassRequest struct {
	FullName     string `json:"full_name" validate:"required,max=255"`
	LicensePlate string `json:"license_plate" validate:"required,max=20"`
	Purpose      string `json:"purpose" validate:"required,max=255"`
	IssuedBy     string `json:"issued_by,omitempty"`
}

// PassResponse DTO пропуска. time_in/date_in - отображение в UTC.
// @Description DTO пропуска
type PassResponse struct {
	ID           uuid.UUID  `json:"id"`
	FullName     string     `json:"full_name"`
	LicensePlate string     `json:"license_plate"`
	Purpose      string     `json:"purpose"`
	IssuedBy     string     `json:"issued_by,omitempty"`
	IssuedAt     time.Time  `json:"issued_at"`
	TimeIn       string     `json:"time_in"`
	DateIn       string     `json:"date_in"`
	ExitedAt     *time.Time `json:"exited_at,omitempty"`
	Status       string     `json:"status"`
}

// ErrorResponse DTO ошибки
// @Description DTO ошибки
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}
