package models

// GateDecision - сводка для экрана охранника на въезде/выезде.
// Два определения приостановки отдаются рядом, решение принимает клиент.
type GateDecision struct {
	PlateNumber               string      `json:"plate_number"`
	HasActiveViolations       bool        `json:"has_active_violations"`
	IsSuspended               bool        `json:"is_suspended"`
	Penalty                   string      `json:"penalty,omitempty"`
	Duration                  string      `json:"duration,omitempty"`
	ExceedsViolationThreshold bool        `json:"exceeds_violation_threshold"`
	ActivePass                *IssuedPass `json:"active_pass,omitempty"`
}

// ViolationSummary - агрегаты для отчетов
type ViolationSummary struct {
	Total             int                     `json:"total"`
	ByStatus          map[ViolationStatus]int `json:"by_status"`
	BySeverity        map[Severity]int        `json:"by_severity"`
	ByType            map[string]int          `json:"by_type"`
	PenaltiesByKind   map[PenaltyKind]int     `json:"penalties_by_kind"`
	UniquePlates      int                     `json:"unique_plates"`
	SuspendedVehicles int                     `json:"suspended_vehicles"`
}
