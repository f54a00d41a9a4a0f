package service

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/vehicle_gatepass/internal/models"
	"github.com/shenikar/vehicle_gatepass/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGateCheck_ComposesBothSuspensionDefinitions(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	violations := mocks.NewMockViolationService(ctrl)
	passes := mocks.NewMockPassService(ctrl)
	svc := NewGateService(violations, passes, newTestLogger())
	ctx := context.Background()
	pass := &models.IssuedPass{LicensePlate: "XYZ999", Status: models.PassActive, TimeIn: time.Now().UTC()}

	// Ожидания
	violations.EXPECT().VehiclePenalty(ctx, "XYZ999").Return(models.VehiclePenalty{
		PlateNumber: "XYZ999",
		IsSuspended: true,
		Penalty:     models.PenaltyTypeSixMonth,
		Duration:    "6 Months",
	})
	violations.EXPECT().HasActiveViolations(ctx, "XYZ999").Return(true)
	violations.EXPECT().SuspendedVehicles(ctx).Return([]string{"ABC123", "XYZ999"})
	passes.EXPECT().ActiveForPlate(ctx, "XYZ999").Return(pass)

	// Действие
	decision := svc.Check(ctx, " xyz999 ")

	// Проверки
	assert.Equal(t, "XYZ999", decision.PlateNumber)
	assert.True(t, decision.IsSuspended)
	assert.True(t, decision.ExceedsViolationThreshold)
	assert.True(t, decision.HasActiveViolations)
	assert.Equal(t, "6 Months", decision.Duration)
	assert.Same(t, pass, decision.ActivePass)
}

func TestGateCheck_CleanPlate(t *testing.T) {
	ctrl := gomock.NewController(t)
	violations := mocks.NewMockViolationService(ctrl)
	passes := mocks.NewMockPassService(ctrl)
	svc := NewGateService(violations, passes, newTestLogger())
	ctx := context.Background()

	violations.EXPECT().VehiclePenalty(ctx, "ABC123").Return(models.VehiclePenalty{PlateNumber: "ABC123"})
	violations.EXPECT().HasActiveViolations(ctx, "ABC123").Return(false)
	violations.EXPECT().SuspendedVehicles(ctx).Return([]string{})
	passes.EXPECT().ActiveForPlate(ctx, "ABC123").Return(nil)

	decision := svc.Check(ctx, "abc123")

	assert.Equal(t, models.GateDecision{PlateNumber: "ABC123"}, decision)
}
