package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record - любая запись, хранимая в слоте RecordStore
type Record interface {
	RecordID() uuid.UUID
}

type OwnerType string

const (
	OwnerStudent OwnerType = "Student"
	OwnerFaculty OwnerType = "Faculty"
	OwnerStaff   OwnerType = "Staff"
	OwnerGuest   OwnerType = "Guest"
	OwnerOthers  OwnerType = "Others"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ViolationStatus - состояние жизненного цикла нарушения
type ViolationStatus string

const (
	StatusPending       ViolationStatus = "pending"
	StatusInvestigating ViolationStatus = "investigating"
	StatusResolved      ViolationStatus = "resolved"
	StatusEscalated     ViolationStatus = "escalated"
)

// ViolationTypes - каталог типов нарушений, которые предлагает интерфейс охранника.
// Поле ViolationType остается свободным текстом, каталог используется только для подсказок.
var ViolationTypes = []string{
	"Unauthorized Parking",
	"Overspeeding",
	"No Gate Pass",
	"Expired Registration",
	"Reckless Driving",
	"Blocking Driveway",
	"Tampered RFID Tag",
	"Others",
}

// Resolution заполняется один раз при переходе в resolved и больше не меняется
type Resolution struct {
	Action     string    `json:"action"`
	ResolvedBy string    `json:"resolved_by"`
	ResolvedAt time.Time `json:"resolved_at"`
	Notes      string    `json:"notes,omitempty"`
}

// Violation - зарегистрированное нарушение, привязанное к номеру автомобиля
type Violation struct {
	ID            uuid.UUID       `json:"id"`
	PlateNumber   string          `json:"plate_number"`
	OwnerName     string          `json:"owner_name"`
	OwnerType     OwnerType       `json:"owner_type"`
	ViolationType string          `json:"violation_type"`
	Description   string          `json:"description"`
	Severity      Severity        `json:"severity"`
	Status        ViolationStatus `json:"status"`
	ReportedBy    string          `json:"reported_by"`
	ReportedAt    time.Time       `json:"reported_at"`
	Location      string          `json:"location"`
	Evidence      []string        `json:"evidence"`
	OffenseCount  int             `json:"offense_count"`
	Resolution    *Resolution     `json:"resolution,omitempty"`
	Penalties     []Penalty       `json:"penalties,omitempty"`
	Escalation    *Escalation     `json:"escalation,omitempty"`
}

// Escalation фиксирует, кто и почему передал нарушение выше
type Escalation struct {
	EscalatedBy string    `json:"escalated_by"`
	EscalatedAt time.Time `json:"escalated_at"`
	Notes       string    `json:"notes,omitempty"`
}

func (v Violation) RecordID() uuid.UUID { return v.ID }

// MatchesPlate сравнивает номера без учета регистра и окружающих пробелов
func (v Violation) MatchesPlate(plate string) bool {
	return NormalizePlate(v.PlateNumber) == NormalizePlate(plate)
}

func (v Violation) IsResolved() bool {
	return v.Status == StatusResolved
}

// CurrentPenalty возвращает последнее примененное наказание
func (v Violation) CurrentPenalty() *Penalty {
	if len(v.Penalties) == 0 {
		return nil
	}
	p := v.Penalties[len(v.Penalties)-1]
	return &p
}

// NormalizePlate приводит номер к каноническому виду для сравнения
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// ViolationInput - данные рапорта охранника
type ViolationInput struct {
	PlateNumber   string    `json:"plate_number" validate:"required"`
	OwnerName     string    `json:"owner_name"`
	OwnerType     OwnerType `json:"owner_type" validate:"omitempty,oneof=Student Faculty Staff Guest Others"`
	ViolationType string    `json:"violation_type" validate:"required"`
	Description   string    `json:"description" validate:"required"`
	Severity      Severity  `json:"severity" validate:"omitempty,oneof=low medium high"`
	ReportedBy    string    `json:"reported_by"`
	Location      string    `json:"location"`
	Evidence      []string  `json:"evidence"`
}

// ViolationFilter - параметры выборки списка нарушений
type ViolationFilter struct {
	Status   ViolationStatus
	Severity Severity
	Search   string
	Page     int
	PageSize int
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Normalize приводит номер и размер страницы к допустимым значениям
func (f *ViolationFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > MaxPageSize {
		f.PageSize = DefaultPageSize
	}
}
