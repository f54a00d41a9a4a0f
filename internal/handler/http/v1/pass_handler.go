package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/vehicle_gatepass/internal/models"
)

// @Summary Issue a visitor pass
// @Description Issue a temporary pass at the gate. One active pass per plate. Requires API key.
// @Tags Passes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param pass body IssuePassRequest true "Pass request"
// @Success 201 {object} PassResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 409 {object} ErrorResponse "Plate already has an active pass"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /passes [post]
func (h *Handler) issuePass(c *gin.Context) {
	var input IssuePassRequest
	log := h.logger.WithField("method", "issuePass")

	if !h.bindJSON(c, log, &input) {
		return
	}

	pass, err := h.passService.Issue(c.Request.Context(), DTOToPassInput(input))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToPassResponse(pass))
}

// @Summary List passes
// @Description List issued passes, optionally by status. Requires API key.
// @Tags Passes
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Status filter" Enums(active, exited)
// @Success 200 {array} PassResponse
// @Failure 400 {object} ErrorResponse "Unknown status"
// @Router /passes [get]
func (h *Handler) listPasses(c *gin.Context) {
	status := models.PassStatus(c.Query("status"))
	if status != "" && status != models.PassActive && status != models.PassExited {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown pass status"})
		return
	}
	c.JSON(http.StatusOK, ModelsToPassResponses(h.passService.List(c.Request.Context(), status)))
}

// @Summary Record exit
// @Description Close an active pass when the visitor leaves. Requires API key.
// @Tags Passes
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Pass ID"
// @Success 200 {object} PassResponse
// @Failure 400 {object} ErrorResponse "Invalid pass ID"
// @Failure 404 {object} ErrorResponse "Pass not found"
// @Failure 409 {object} ErrorResponse "Pass already exited"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /passes/{id}/exit [post]
func (h *Handler) recordExit(c *gin.Context) {
	id, ok := parseID(c, "pass")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "recordExit").WithField("id", id)

	pass, err := h.passService.RecordExit(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToPassResponse(pass))
}
