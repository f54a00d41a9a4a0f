package models

import (
	"time"

	"github.com/google/uuid"
)

type PassStatus string

const (
	PassActive PassStatus = "active"
	PassExited PassStatus = "exited"
)

// IssuedPass - временный пропуск посетителя
type IssuedPass struct {
	ID           uuid.UUID  `json:"id"`
	FullName     string     `json:"full_name"`
	LicensePlate string     `json:"license_plate"`
	Purpose      string     `json:"purpose"`
	IssuedBy     string     `json:"issued_by,omitempty"`
	TimeIn       time.Time  `json:"time_in"`
	TimeOut      *time.Time `json:"time_out,omitempty"`
	Status       PassStatus `json:"status"`
}

func (p IssuedPass) RecordID() uuid.UUID { return p.ID }

type PassInput struct {
	FullName     string `json:"full_name" validate:"required"`
	LicensePlate string `json:"license_plate" validate:"required"`
	Purpose      string `json:"purpose" validate:"required"`
	IssuedBy     string `json:"issued_by"`
}
