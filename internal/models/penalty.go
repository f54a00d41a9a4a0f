package models

import (
	"fmt"
	"strings"
	"time"
)

type PenaltyKind string

const (
	PenaltyWarning      PenaltyKind = "warning"
	PenaltySuspension   PenaltyKind = "suspension"
	PenaltyDeactivation PenaltyKind = "deactivation"
)

// Названия наказаний из каталога администратора
const (
	PenaltyTypeWarning          = "Warning"
	PenaltyTypeOneMonth         = "1-Month Suspension"
	PenaltyTypeSixMonth         = "6-Month Suspension"
	PenaltyTypePermanentDeactiv = "Permanent Deactivation"
)

const daysPerMonth = 30

// Penalty - событие применения наказания. История наказаний только дополняется.
type Penalty struct {
	Kind         PenaltyKind `json:"kind"`
	DurationDays int         `json:"duration_days,omitempty"`
	AppliedBy    string      `json:"applied_by"`
	AppliedAt    time.Time   `json:"applied_at"`
	Notes        string      `json:"notes,omitempty"`
}

// ParsePenaltyType разбирает название из каталога в структурированное наказание
func ParsePenaltyType(penaltyType string) (PenaltyKind, int, error) {
	switch strings.TrimSpace(penaltyType) {
	case PenaltyTypeWarning:
		return PenaltyWarning, 0, nil
	case PenaltyTypeOneMonth:
		return PenaltySuspension, 1 * daysPerMonth, nil
	case PenaltyTypeSixMonth:
		return PenaltySuspension, 6 * daysPerMonth, nil
	case PenaltyTypePermanentDeactiv:
		return PenaltyDeactivation, 0, nil
	}
	return "", 0, fmt.Errorf("unknown penalty type %q", penaltyType)
}

// Label возвращает название наказания в том виде, в каком его показывает интерфейс
func (p Penalty) Label() string {
	switch p.Kind {
	case PenaltyWarning:
		return PenaltyTypeWarning
	case PenaltyDeactivation:
		return PenaltyTypePermanentDeactiv
	case PenaltySuspension:
		return fmt.Sprintf("%d-Month Suspension", p.months())
	}
	return string(p.Kind)
}

// DurationLabel: 30 дней -> "1 Month", 180 дней -> "6 Months"
func (p Penalty) DurationLabel() string {
	if p.Kind != PenaltySuspension || p.DurationDays <= 0 {
		return ""
	}
	m := p.months()
	if m == 1 {
		return "1 Month"
	}
	return fmt.Sprintf("%d Months", m)
}

func (p Penalty) months() int {
	m := p.DurationDays / daysPerMonth
	if m < 1 {
		m = 1
	}
	return m
}

// ExpiresAt - момент окончания приостановки; nil для бессрочных и предупреждений
func (p Penalty) ExpiresAt() *time.Time {
	if p.Kind != PenaltySuspension || p.DurationDays <= 0 {
		return nil
	}
	t := p.AppliedAt.AddDate(0, 0, p.DurationDays)
	return &t
}

// InForce сообщает, запрещает ли наказание въезд на момент now
func (p Penalty) InForce(now time.Time) bool {
	switch p.Kind {
	case PenaltyDeactivation:
		return true
	case PenaltySuspension:
		exp := p.ExpiresAt()
		return exp == nil || now.Before(*exp)
	}
	return false
}

// PenaltyInput - запрос администратора на применение наказания
type PenaltyInput struct {
	Type      string `json:"penalty_type" validate:"required"`
	AppliedBy string `json:"applied_by"`
	Notes     string `json:"notes"`
}

// ResolveInput - запрос администратора на закрытие нарушения
type ResolveInput struct {
	Action     string `json:"action" validate:"required"`
	ResolvedBy string `json:"resolved_by"`
	Notes      string `json:"notes"`
}

// VehiclePenalty - статус наказания автомобиля для решения на выезде
type VehiclePenalty struct {
	PlateNumber string     `json:"plate_number"`
	IsSuspended bool       `json:"is_suspended"`
	Penalty     string     `json:"penalty,omitempty"`
	Duration    string     `json:"duration,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}
