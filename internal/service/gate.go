package service

import (
	"context"

	"github.com/shenikar/vehicle_gatepass/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=gate.go -destination=mocks/gate_mock.go -package=mocks

// GateService собирает данные для решения охранника о пропуске автомобиля
type GateService interface {
	Check(ctx context.Context, plate string) models.GateDecision
}

type gateService struct {
	violations ViolationService
	passes     PassService
	logger     *logrus.Logger
}

func NewGateService(violations ViolationService, passes PassService, logger *logrus.Logger) GateService {
	return &gateService{
		violations: violations,
		passes:     passes,
		logger:     logger,
	}
}

// Check возвращает оба определения приостановки без объединения:
// IsSuspended - по примененному наказанию, ExceedsViolationThreshold - по числу незакрытых нарушений.
func (s *gateService) Check(ctx context.Context, plate string) models.GateDecision {
	normalized := models.NormalizePlate(plate)
	penalty := s.violations.VehiclePenalty(ctx, normalized)

	decision := models.GateDecision{
		PlateNumber:         normalized,
		HasActiveViolations: s.violations.HasActiveViolations(ctx, normalized),
		IsSuspended:         penalty.IsSuspended,
		Penalty:             penalty.Penalty,
		Duration:            penalty.Duration,
		ActivePass:          s.passes.ActiveForPlate(ctx, normalized),
	}
	for _, p := range s.violations.SuspendedVehicles(ctx) {
		if p == normalized {
			decision.ExceedsViolationThreshold = true
			break
		}
	}

	s.logger.WithFields(logrus.Fields{
		"service":           "gate",
		"method":            "Check",
		"plate":             normalized,
		"is_suspended":      decision.IsSuspended,
		"exceeds_threshold": decision.ExceedsViolationThreshold,
		"active_violations": decision.HasActiveViolations,
	}).Debug("Gate check completed")
	return decision
}
