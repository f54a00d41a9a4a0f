package service

import "github.com/shenikar/vehicle_gatepass/internal/models"

// BuildSummary считает агрегаты для отчетов. Только чтение, входной срез не меняется.
func BuildSummary(violations []models.Violation, threshold int) models.ViolationSummary {
	summary := models.ViolationSummary{
		Total:           len(violations),
		ByStatus:        make(map[models.ViolationStatus]int),
		BySeverity:      make(map[models.Severity]int),
		ByType:          make(map[string]int),
		PenaltiesByKind: make(map[models.PenaltyKind]int),
	}

	plates := make(map[string]struct{})
	for _, v := range violations {
		summary.ByStatus[v.Status]++
		summary.BySeverity[v.Severity]++
		summary.ByType[v.ViolationType]++
		plates[models.NormalizePlate(v.PlateNumber)] = struct{}{}
		if p := v.CurrentPenalty(); p != nil {
			summary.PenaltiesByKind[p.Kind]++
		}
	}
	summary.UniquePlates = len(plates)
	summary.SuspendedVehicles = len(suspendedPlates(violations, threshold))
	return summary
}
