package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/vehicle_gatepass/internal/models"
	"github.com/shenikar/vehicle_gatepass/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPassService(t *testing.T, slot repository.Slot) *passService {
	t.Helper()
	logger := newTestLogger()
	store := repository.NewJSONStore[models.IssuedPass](slot, logger, 0)
	svc := NewPassService(store, logger).(*passService)
	svc.now = stepClock(time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC))
	return svc
}

func passInput(plate string) models.PassInput {
	return models.PassInput{
		FullName:     "John Visitor",
		LicensePlate: plate,
		Purpose:      "Delivery",
		IssuedBy:     "guard-1",
	}
}

func TestIssuePass_Success(t *testing.T) {
	svc := newTestPassService(t, repository.NewMemorySlot(repository.PassesSlot))
	ctx := context.Background()

	pass, err := svc.Issue(ctx, passInput("VIS001"))

	require.NoError(t, err)
	assert.Equal(t, models.PassActive, pass.Status)
	assert.Nil(t, pass.TimeOut)
	assert.Equal(t, pass.ID, svc.ActiveForPlate(ctx, "vis001").ID)
}

func TestIssuePass_ValidationError(t *testing.T) {
	svc := newTestPassService(t, repository.NewMemorySlot(repository.PassesSlot))

	_, err := svc.Issue(context.Background(), models.PassInput{FullName: "John", LicensePlate: " "})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.ElementsMatch(t, []string{"license_plate", "purpose"}, validationErr.Fields)
}

func TestIssuePass_OneActivePerPlate(t *testing.T) {
	svc := newTestPassService(t, repository.NewMemorySlot(repository.PassesSlot))
	ctx := context.Background()

	first, err := svc.Issue(ctx, passInput("VIS001"))
	require.NoError(t, err)

	_, err = svc.Issue(ctx, passInput("vis001"))
	var stateErr *models.InvalidStateError
	require.ErrorAs(t, err, &stateErr)

	_, err = svc.RecordExit(ctx, first.ID)
	require.NoError(t, err)
	_, err = svc.Issue(ctx, passInput("VIS001"))
	assert.NoError(t, err)
}

func TestRecordExit(t *testing.T) {
	svc := newTestPassService(t, repository.NewMemorySlot(repository.PassesSlot))
	ctx := context.Background()
	pass, err := svc.Issue(ctx, passInput("VIS001"))
	require.NoError(t, err)

	exited, err := svc.RecordExit(ctx, pass.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PassExited, exited.Status)
	require.NotNil(t, exited.TimeOut)
	assert.True(t, exited.TimeOut.After(exited.TimeIn))
	assert.Nil(t, svc.ActiveForPlate(ctx, "VIS001"))

	_, err = svc.RecordExit(ctx, pass.ID)
	var stateErr *models.InvalidStateError
	assert.ErrorAs(t, err, &stateErr)

	_, err = svc.RecordExit(ctx, uuid.New())
	var notFound *models.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestPasses_SharedAcrossServices(t *testing.T) {
	// Въезд и выезд обслуживают разные экземпляры поверх одного слота
	slot := repository.NewMemorySlot(repository.PassesSlot)
	entry := newTestPassService(t, slot)
	exit := newTestPassService(t, slot)
	ctx := context.Background()

	pass, err := entry.Issue(ctx, passInput("VIS001"))
	require.NoError(t, err)

	active := exit.ActiveForPlate(ctx, "VIS001")
	require.NotNil(t, active)
	_, err = exit.RecordExit(ctx, active.ID)
	require.NoError(t, err)

	assert.Empty(t, entry.List(ctx, models.PassActive))
	exited := entry.List(ctx, models.PassExited)
	require.Len(t, exited, 1)
	assert.Equal(t, pass.ID, exited[0].ID)
	assert.Len(t, entry.List(ctx, ""), 1)
}
