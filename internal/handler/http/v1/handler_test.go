package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/vehicle_gatepass/internal/config"
	"github.com/shenikar/vehicle_gatepass/internal/models"
	"github.com/shenikar/vehicle_gatepass/internal/repository"
	"github.com/shenikar/vehicle_gatepass/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "test-api-key"

type testMocks struct {
	violations    *mocks.MockViolationService
	notifications *mocks.MockNotificationService
	passes        *mocks.MockPassService
	gate          *mocks.MockGateService
}

// newTestRouter создает роутер с мокированными сервисами
func newTestRouter(t *testing.T, apiKeys ...string) (*testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		violations:    mocks.NewMockViolationService(ctrl),
		notifications: mocks.NewMockNotificationService(ctrl),
		passes:        mocks.NewMockPassService(ctrl),
		gate:          mocks.NewMockGateService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	if apiKeys == nil {
		apiKeys = []string{testAPIKey}
	}
	cfg := &config.Config{
		APIKeys:             apiKeys,
		StorageBackend:      config.BackendMemory,
		SuspensionThreshold: config.DefaultSuspensionThreshold,
	}

	handler := NewHandler(Services{
		Violations:    m.violations,
		Notifications: m.notifications,
		Passes:        m.passes,
		Gate:          m.gate,
	}, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))
	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader() map[string]string {
	return map[string]string{"X-API-Key": testAPIKey}
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func sampleViolation() *models.Violation {
	return &models.Violation{
		ID:            uuid.New(),
		PlateNumber:   "ABC123",
		OwnerName:     "Jane Doe",
		OwnerType:     models.OwnerStudent,
		ViolationType: "Illegal Parking",
		Description:   "Parked in fire lane",
		Severity:      models.SeverityMedium,
		Status:        models.StatusPending,
		ReportedAt:    time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		OffenseCount:  1,
	}
}

func TestReportViolation_Success(t *testing.T) {
	m, router := newTestRouter(t)
	expected := sampleViolation()

	m.violations.EXPECT().
		Report(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in models.ViolationInput) (*models.Violation, error) {
			assert.Equal(t, "abc123", in.PlateNumber)
			assert.Equal(t, models.OwnerStudent, in.OwnerType)
			return expected, nil
		}).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/violations", jsonBody(t, ReportViolationRequest{
		PlateNumber:   "abc123",
		OwnerType:     "Student",
		ViolationType: "Illegal Parking",
		Description:   "Parked in fire lane",
	}), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ViolationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, expected.ID, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Empty(t, resp.Penalties)
	assert.Nil(t, resp.CurrentPenalty)
}

func TestReportViolation_InvalidJSON(t *testing.T) {
	m, router := newTestRouter(t)
	m.violations.EXPECT().Report(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodPost, "/api/v1/violations", bytes.NewBufferString(`{"plate_number": "x"`), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestReportViolation_BadSeverityRejectedBeforeService(t *testing.T) {
	m, router := newTestRouter(t)
	m.violations.EXPECT().Report(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/violations", jsonBody(t, ReportViolationRequest{
		PlateNumber:   "ABC123",
		ViolationType: "Speeding",
		Description:   "fast",
		Severity:      "critical",
	}), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportViolation_MissingFieldsFromService(t *testing.T) {
	m, router := newTestRouter(t)
	m.violations.EXPECT().
		Report(gomock.Any(), gomock.Any()).
		Return(nil, &models.ValidationError{Fields: []string{"plate_number"}})

	w := makeRequest(router, http.MethodPost, "/api/v1/violations", jsonBody(t, ReportViolationRequest{
		ViolationType: "Speeding",
		Description:   "fast",
	}), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"plate_number"}, resp.Fields)
}

func TestReportViolation_StorageUnavailable(t *testing.T) {
	m, router := newTestRouter(t)
	m.violations.EXPECT().
		Report(gomock.Any(), gomock.Any()).
		Return(nil, &models.StorageWriteError{Slot: repository.ViolationsSlot, Err: errors.New("disk full")})

	w := makeRequest(router, http.MethodPost, "/api/v1/violations", jsonBody(t, ReportViolationRequest{
		PlateNumber:   "ABC123",
		ViolationType: "Speeding",
		Description:   "fast",
	}), authHeader())

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "disk full")
}

func TestListViolations_NormalizesPaging(t *testing.T) {
	m, router := newTestRouter(t)
	items := []models.Violation{*sampleViolation()}

	m.violations.EXPECT().
		List(gomock.Any(), models.ViolationFilter{
			Status:   models.StatusPending,
			Search:   "abc",
			Page:     1,
			PageSize: models.DefaultPageSize,
		}).
		Return(items, 1)

	w := makeRequest(router, http.MethodGet, "/api/v1/violations?status=pending&search=abc&page=0&pageSize=500", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ViolationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, models.DefaultPageSize, resp.PageSize)
	assert.Len(t, resp.Items, 1)
}

func TestGetViolation_InvalidID(t *testing.T) {
	m, router := newTestRouter(t)
	m.violations.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/violations/not-a-uuid", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid violation ID")
}

func TestGetViolation_NotFound(t *testing.T) {
	m, router := newTestRouter(t)
	id := uuid.New()
	m.violations.EXPECT().Get(gomock.Any(), id).Return(nil, &models.NotFoundError{Entity: "violation", ID: id})

	w := makeRequest(router, http.MethodGet, "/api/v1/violations/"+id.String(), nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "violation not found")
}

func TestResolveViolation_AlreadyResolved(t *testing.T) {
	m, router := newTestRouter(t)
	id := uuid.New()
	m.violations.EXPECT().
		Resolve(gomock.Any(), id, models.ResolveInput{Action: "Warning issued", ResolvedBy: "admin"}).
		Return(nil, &models.InvalidStateError{Entity: "violation", ID: id, From: "resolved", Action: "resolve"})

	w := makeRequest(router, http.MethodPost, "/api/v1/violations/"+id.String()+"/resolve", jsonBody(t, ResolveViolationRequest{
		Action:     "Warning issued",
		ResolvedBy: "admin",
	}), authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestResolveViolation_ActionRequired(t *testing.T) {
	m, router := newTestRouter(t)
	m.violations.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/violations/"+uuid.NewString()+"/resolve", jsonBody(t, ResolveViolationRequest{}), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvestigateViolation_Success(t *testing.T) {
	m, router := newTestRouter(t)
	v := sampleViolation()
	v.Status = models.StatusInvestigating
	m.violations.EXPECT().StartInvestigation(gomock.Any(), v.ID).Return(v, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/violations/"+v.ID.String()+"/investigate", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"investigating"`)
}

func TestEscalateViolation_WithoutBody(t *testing.T) {
	m, router := newTestRouter(t)
	v := sampleViolation()
	v.Status = models.StatusEscalated
	m.violations.EXPECT().Escalate(gomock.Any(), v.ID, "", "").Return(v, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/violations/"+v.ID.String()+"/escalate", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApplyPenalty_Success(t *testing.T) {
	m, router := newTestRouter(t)
	v := sampleViolation()
	appliedAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	v.Penalties = []models.Penalty{{
		Kind:         models.PenaltySuspension,
		DurationDays: 30,
		AppliedBy:    "admin",
		AppliedAt:    appliedAt,
	}}
	m.violations.EXPECT().
		ApplyPenalty(gomock.Any(), v.ID, models.PenaltyInput{Type: "1-Month Suspension", AppliedBy: "admin"}).
		Return(v, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/violations/"+v.ID.String()+"/penalty", jsonBody(t, ApplyPenaltyRequest{
		PenaltyType: "1-Month Suspension",
		AppliedBy:   "admin",
	}), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ViolationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.CurrentPenalty)
	assert.Equal(t, "1-Month Suspension", resp.CurrentPenalty.Type)
	assert.Equal(t, "1 Month", resp.CurrentPenalty.Duration)
	assert.Len(t, resp.Penalties, 1)
}

func TestApplyPenalty_UnknownType(t *testing.T) {
	m, router := newTestRouter(t)
	id := uuid.New()
	m.violations.EXPECT().
		ApplyPenalty(gomock.Any(), id, gomock.Any()).
		Return(nil, &models.ValidationError{Fields: []string{"penalty_type"}})

	w := makeRequest(router, http.MethodPost, "/api/v1/violations/"+id.String()+"/penalty", jsonBody(t, ApplyPenaltyRequest{
		PenaltyType: "Community Service",
	}), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "penalty_type")
}

func TestSuspendedVehicles(t *testing.T) {
	m, router := newTestRouter(t)
	m.violations.EXPECT().SuspendedVehicles(gomock.Any()).Return([]string{"XYZ999"})

	w := makeRequest(router, http.MethodGet, "/api/v1/violations/suspended", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SuspendedVehiclesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"XYZ999"}, resp.Plates)
	assert.Equal(t, config.DefaultSuspensionThreshold, resp.Threshold)
}

func TestPlateViolations_NormalizesPlate(t *testing.T) {
	m, router := newTestRouter(t)
	m.violations.EXPECT().HasActiveViolations(gomock.Any(), "ABC123").Return(true)
	m.violations.EXPECT().ViolationsByPlate(gomock.Any(), "ABC123").Return([]models.Violation{*sampleViolation()})

	w := makeRequest(router, http.MethodGet, "/api/v1/vehicles/abc123/violations", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp PlateViolationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ABC123", resp.PlateNumber)
	assert.True(t, resp.HasActiveViolations)
	assert.Len(t, resp.Violations, 1)
}

func TestGateCheck(t *testing.T) {
	m, router := newTestRouter(t)
	m.gate.EXPECT().Check(gomock.Any(), "xyz999").Return(models.GateDecision{
		PlateNumber:               "XYZ999",
		HasActiveViolations:       true,
		ExceedsViolationThreshold: true,
	})

	w := makeRequest(router, http.MethodGet, "/api/v1/vehicles/xyz999/gate", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"exceeds_violation_threshold":true`)
	assert.Contains(t, w.Body.String(), `"is_suspended":false`)
}

func TestListNotifications_Unacknowledged(t *testing.T) {
	m, router := newTestRouter(t)
	m.notifications.EXPECT().Unacknowledged(gomock.Any()).Return([]models.Notification{{ID: uuid.New(), Title: "Unauthorized vehicle"}})
	m.notifications.EXPECT().List(gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/notifications?unacknowledged=true", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized vehicle")
}

func TestAcknowledgeNotification(t *testing.T) {
	m, router := newTestRouter(t)
	id := uuid.New()
	m.notifications.EXPECT().Acknowledge(gomock.Any(), id).Return(nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/notifications/"+id.String()+"/ack", nil, authHeader())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestPurgeNotifications(t *testing.T) {
	m, router := newTestRouter(t)
	m.notifications.EXPECT().PurgeOlderThan(gomock.Any(), 3).Return(2, nil)

	w := makeRequest(router, http.MethodDelete, "/api/v1/notifications?olderThanDays=3", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"removed":2}`, w.Body.String())
}

func TestPurgeNotifications_InvalidDays(t *testing.T) {
	m, router := newTestRouter(t)
	m.notifications.EXPECT().PurgeOlderThan(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodDelete, "/api/v1/notifications?olderThanDays=-1", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIssuePass_Success(t *testing.T) {
	m, router := newTestRouter(t)
	timeIn := time.Date(2026, 3, 1, 14, 5, 9, 0, time.UTC)
	m.passes.EXPECT().Issue(gomock.Any(), models.PassInput{
		FullName:     "John Visitor",
		LicensePlate: "VIS001",
		Purpose:      "Delivery",
	}).Return(&models.IssuedPass{
		ID:           uuid.New(),
		FullName:     "John Visitor",
		LicensePlate: "VIS001",
		Purpose:      "Delivery",
		TimeIn:       timeIn,
		Status:       models.PassActive,
	}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/passes", jsonBody(t, IssuePassRequest{
		FullName:     "John Visitor",
		LicensePlate: "VIS001",
		Purpose:      "Delivery",
	}), authHeader())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp PassResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "14:05:09", resp.TimeIn)
	assert.Equal(t, "2026-03-01", resp.DateIn)
	assert.Equal(t, "active", resp.Status)
}

func TestRecordExit_AlreadyExited(t *testing.T) {
	m, router := newTestRouter(t)
	id := uuid.New()
	m.passes.EXPECT().RecordExit(gomock.Any(), id).
		Return(nil, &models.InvalidStateError{Entity: "pass", ID: id, From: "exited", Action: "exit"})

	w := makeRequest(router, http.MethodPost, "/api/v1/passes/"+id.String()+"/exit", nil, authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListPasses_UnknownStatus(t *testing.T) {
	m, router := newTestRouter(t)
	m.passes.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/passes?status=lost", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPIKeyAuth(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		_, router := newTestRouter(t)
		w := makeRequest(router, http.MethodGet, "/api/v1/violations/suspended", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "API key required")
	})

	t.Run("invalid key", func(t *testing.T) {
		_, router := newTestRouter(t)
		w := makeRequest(router, http.MethodGet, "/api/v1/violations/suspended", nil, map[string]string{"X-API-Key": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bearer token", func(t *testing.T) {
		m, router := newTestRouter(t)
		m.violations.EXPECT().SuspendedVehicles(gomock.Any()).Return([]string{})
		w := makeRequest(router, http.MethodGet, "/api/v1/violations/suspended", nil, map[string]string{"Authorization": "Bearer " + testAPIKey})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no keys configured", func(t *testing.T) {
		m, router := newTestRouter(t, []string{}...)
		m.violations.EXPECT().SuspendedVehicles(gomock.Any()).Return([]string{})
		w := makeRequest(router, http.MethodGet, "/api/v1/violations/suspended", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	_, router := newTestRouter(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
