package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/vehicle_gatepass/internal/models"
)

// @Summary Violations for a plate
// @Description All violations recorded for a plate, case-insensitive. Requires API key.
// @Tags Vehicles
// @Produce json
// @Security ApiKeyAuth
// @Param plate path string true "Plate number"
// @Success 200 {object} PlateViolationsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /vehicles/{plate}/violations [get]
func (h *Handler) plateViolations(c *gin.Context) {
	ctx := c.Request.Context()
	plate := models.NormalizePlate(c.Param("plate"))

	c.JSON(http.StatusOK, PlateViolationsResponse{
		PlateNumber:         plate,
		HasActiveViolations: h.violationService.HasActiveViolations(ctx, plate),
		Violations:          ModelsToViolationResponses(h.violationService.ViolationsByPlate(ctx, plate)),
	})
}

// @Summary Current penalty for a plate
// @Description Latest applied penalty across the plate's violations. Requires API key.
// @Tags Vehicles
// @Produce json
// @Security ApiKeyAuth
// @Param plate path string true "Plate number"
// @Success 200 {object} models.VehiclePenalty
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /vehicles/{plate}/penalty [get]
func (h *Handler) platePenalty(c *gin.Context) {
	c.JSON(http.StatusOK, h.violationService.VehiclePenalty(c.Request.Context(), c.Param("plate")))
}

// @Summary Gate check
// @Description Everything the guard needs at the gate for a plate. Requires API key.
// @Tags Vehicles
// @Produce json
// @Security ApiKeyAuth
// @Param plate path string true "Plate number"
// @Success 200 {object} models.GateDecision
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /vehicles/{plate}/gate [get]
func (h *Handler) gateCheck(c *gin.Context) {
	c.JSON(http.StatusOK, h.gateService.Check(c.Request.Context(), c.Param("plate")))
}
