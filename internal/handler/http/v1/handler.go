package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/vehicle_gatepass/internal/config"
	"github.com/shenikar/vehicle_gatepass/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	violationService    service.ViolationService
	notificationService service.NotificationService
	passService         service.PassService
	gateService         service.GateService
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

// Services - набор сервисов, которые обслуживает HTTP API
type Services struct {
	Violations    service.ViolationService
	Notifications service.NotificationService
	Passes        service.PassService
	Gate          service.GateService
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		violationService:    services.Violations,
		notificationService: services.Notifications,
		passService:         services.Passes,
		gateService:         services.Gate,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
	}
}

// bindJSON разбирает и проверяет тело запроса, при ошибке сам пишет ответ
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func parseID(c *gin.Context, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + entity + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": h.cfg.StorageBackend})
}
