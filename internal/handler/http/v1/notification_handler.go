package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary Emit a notification
// @Description Create a notification and push it to the webhook queue. Requires API key.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param notification body EmitNotificationRequest true "Notification"
// @Success 201 {object} models.Notification
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /notifications [post]
func (h *Handler) emitNotification(c *gin.Context) {
	var input EmitNotificationRequest
	log := h.logger.WithField("method", "emitNotification")

	if !h.bindJSON(c, log, &input) {
		return
	}

	notification, err := h.notificationService.Emit(c.Request.Context(), DTOToNotificationInput(input))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, notification)
}

// @Summary List notifications
// @Description Most recent first. Requires API key.
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Param unacknowledged query bool false "Only unacknowledged notifications"
// @Success 200 {array} models.Notification
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /notifications [get]
func (h *Handler) listNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	if only, _ := strconv.ParseBool(c.Query("unacknowledged")); only {
		c.JSON(http.StatusOK, h.notificationService.Unacknowledged(ctx))
		return
	}
	c.JSON(http.StatusOK, h.notificationService.List(ctx))
}

// @Summary Acknowledge a notification
// @Description Mark a notification as acknowledged. Unknown IDs are ignored. Requires API key.
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid notification ID"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /notifications/{id}/ack [post]
func (h *Handler) acknowledgeNotification(c *gin.Context) {
	id, ok := parseID(c, "notification")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "acknowledgeNotification").WithField("id", id)

	if err := h.notificationService.Acknowledge(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Purge old notifications
// @Description Remove notifications older than the given number of days. Requires API key.
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Param olderThanDays query int false "Age in days, defaults to configured retention"
// @Success 200 {object} PurgeResponse
// @Failure 400 {object} ErrorResponse "Invalid olderThanDays"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /notifications [delete]
func (h *Handler) purgeNotifications(c *gin.Context) {
	log := h.logger.WithField("method", "purgeNotifications")

	days := 0
	if raw := c.Query("olderThanDays"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid olderThanDays"})
			return
		}
		days = parsed
	}

	removed, err := h.notificationService.PurgeOlderThan(c.Request.Context(), days)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, PurgeResponse{Removed: removed})
}
