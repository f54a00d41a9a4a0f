package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	violations := protected.Group("/violations")
	{
		violations.POST("", h.reportViolation)
		violations.GET("", h.listViolations)
		violations.GET("/suspended", h.suspendedVehicles)
		violations.GET("/summary", h.violationSummary)
		violations.GET("/:id", h.getViolation)
		violations.POST("/:id/investigate", h.investigateViolation)
		violations.POST("/:id/resolve", h.resolveViolation)
		violations.POST("/:id/escalate", h.escalateViolation)
		violations.POST("/:id/penalty", h.applyPenalty)
	}

	vehicles := protected.Group("/vehicles/:plate")
	{
		vehicles.GET("/violations", h.plateViolations)
		vehicles.GET("/penalty", h.platePenalty)
		vehicles.GET("/gate", h.gateCheck)
	}

	notifications := protected.Group("/notifications")
	{
		notifications.POST("", h.emitNotification)
		notifications.GET("", h.listNotifications)
		notifications.DELETE("", h.purgeNotifications)
		notifications.POST("/:id/ack", h.acknowledgeNotification)
	}

	passes := protected.Group("/passes")
	{
		passes.POST("", h.issuePass)
		passes.GET("", h.listPasses)
		passes.POST("/:id/exit", h.recordExit)
	}
}
