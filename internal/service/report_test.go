package service

import (
	"testing"
	"time"

	"github.com/shenikar/vehicle_gatepass/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildSummary(t *testing.T) {
	at := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	violations := []models.Violation{
		{PlateNumber: "ABC123", ViolationType: "Illegal Parking", Severity: models.SeverityLow, Status: models.StatusPending},
		{PlateNumber: "abc123", ViolationType: "Illegal Parking", Severity: models.SeverityHigh, Status: models.StatusEscalated},
		{
			PlateNumber:   "ABC123",
			ViolationType: "Speeding",
			Severity:      models.SeverityHigh,
			Status:        models.StatusInvestigating,
			Penalties: []models.Penalty{
				{Kind: models.PenaltyWarning, AppliedAt: at},
				{Kind: models.PenaltySuspension, DurationDays: 30, AppliedAt: at.Add(time.Hour)},
			},
		},
		{PlateNumber: "XYZ999", ViolationType: "Speeding", Severity: models.SeverityMedium, Status: models.StatusResolved},
	}
	before := append([]models.Violation(nil), violations...)

	summary := BuildSummary(violations, 3)

	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.UniquePlates)
	assert.Equal(t, 1, summary.SuspendedVehicles)
	assert.Equal(t, 2, summary.ByType["Illegal Parking"])
	assert.Equal(t, 2, summary.BySeverity[models.SeverityHigh])
	assert.Equal(t, 1, summary.ByStatus[models.StatusResolved])
	// Учитывается только текущее наказание
	assert.Equal(t, map[models.PenaltyKind]int{models.PenaltySuspension: 1}, summary.PenaltiesByKind)
	assert.Equal(t, before, violations)
}

func TestBuildSummary_Empty(t *testing.T) {
	summary := BuildSummary(nil, 3)

	assert.Zero(t, summary.Total)
	assert.NotNil(t, summary.ByStatus)
	assert.Zero(t, summary.SuspendedVehicles)
}
