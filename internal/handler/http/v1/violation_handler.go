package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/vehicle_gatepass/internal/models"
)

// @Summary Report a violation
// @Description Record a new parking/traffic violation. Status starts as pending. Requires API key.
// @Tags Violations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param violation body ReportViolationRequest true "Violation report"
// @Success 201 {object} ViolationResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /violations [post]
func (h *Handler) reportViolation(c *gin.Context) {
	var input ReportViolationRequest
	log := h.logger.WithField("method", "reportViolation")

	if !h.bindJSON(c, log, &input) {
		return
	}

	violation, err := h.violationService.Report(c.Request.Context(), DTOToViolationInput(input))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToViolationResponse(violation))
}

// @Summary Get a list of violations
// @Description Get a paginated, newest-first list of violations. Requires API key.
// @Tags Violations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Status filter" Enums(pending, investigating, resolved, escalated)
// @Param severity query string false "Severity filter" Enums(low, medium, high)
// @Param search query string false "Substring of plate, owner or violation type"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} ViolationListResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /violations [get]
func (h *Handler) listViolations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(models.DefaultPageSize)))
	filter := models.ViolationFilter{
		Status:   models.ViolationStatus(c.Query("status")),
		Severity: models.Severity(c.Query("severity")),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}
	filter.Normalize()

	violations, total := h.violationService.List(c.Request.Context(), filter)
	c.JSON(http.StatusOK, ViolationListResponse{
		Items:    ModelsToViolationResponses(violations),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

// @Summary Get violation by ID
// @Description Get a single violation with its penalty history. Requires API key.
// @Tags Violations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Violation ID"
// @Success 200 {object} ViolationResponse
// @Failure 400 {object} ErrorResponse "Invalid violation ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} ErrorResponse "Violation not found"
// @Router /violations/{id} [get]
func (h *Handler) getViolation(c *gin.Context) {
	id, ok := parseID(c, "violation")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getViolation").WithField("id", id)

	violation, err := h.violationService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToViolationResponse(violation))
}

// @Summary Start investigation
// @Description Move a pending violation to investigating. Requires API key.
// @Tags Violations
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Violation ID"
// @Success 200 {object} ViolationResponse
// @Failure 400 {object} ErrorResponse "Invalid violation ID"
// @Failure 404 {object} ErrorResponse "Violation not found"
// @Failure 409 {object} ErrorResponse "Transition not allowed from current status"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /violations/{id}/investigate [post]
func (h *Handler) investigateViolation(c *gin.Context) {
	id, ok := parseID(c, "violation")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "investigateViolation").WithField("id", id)

	violation, err := h.violationService.StartInvestigation(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToViolationResponse(violation))
}

// @Summary Resolve a violation
// @Description Close a violation with the action taken. Requires API key.
// @Tags Violations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Violation ID"
// @Param resolution body ResolveViolationRequest true "Resolution"
// @Success 200 {object} ViolationResponse
// @Failure 400 {object} ErrorResponse "Invalid violation ID or request body"
// @Failure 404 {object} ErrorResponse "Violation not found"
// @Failure 409 {object} ErrorResponse "Violation already resolved"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /violations/{id}/resolve [post]
func (h *Handler) resolveViolation(c *gin.Context) {
	id, ok := parseID(c, "violation")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "resolveViolation").WithField("id", id)

	var input ResolveViolationRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	violation, err := h.violationService.Resolve(c.Request.Context(), id, models.ResolveInput{
		Action:     input.Action,
		ResolvedBy: input.ResolvedBy,
		Notes:      input.Notes,
	})
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToViolationResponse(violation))
}

// @Summary Escalate a violation
// @Description Escalate a pending or investigating violation. Requires API key.
// @Tags Violations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Violation ID"
// @Param escalation body EscalateViolationRequest false "Escalation details"
// @Success 200 {object} ViolationResponse
// @Failure 400 {object} ErrorResponse "Invalid violation ID"
// @Failure 404 {object} ErrorResponse "Violation not found"
// @Failure 409 {object} ErrorResponse "Transition not allowed from current status"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /violations/{id}/escalate [post]
func (h *Handler) escalateViolation(c *gin.Context) {
	id, ok := parseID(c, "violation")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "escalateViolation").WithField("id", id)

	var input EscalateViolationRequest
	if c.Request.ContentLength > 0 && !h.bindJSON(c, log, &input) {
		return
	}

	violation, err := h.violationService.Escalate(c.Request.Context(), id, input.EscalatedBy, input.Notes)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToViolationResponse(violation))
}

// @Summary Apply a penalty
// @Description Append a penalty to the violation's history. Status is not changed. Requires API key.
// @Tags Violations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Violation ID"
// @Param penalty body ApplyPenaltyRequest true "Penalty"
// @Success 200 {object} ViolationResponse
// @Failure 400 {object} ErrorResponse "Invalid violation ID or unknown penalty type"
// @Failure 404 {object} ErrorResponse "Violation not found"
// @Failure 409 {object} ErrorResponse "Violation must be reviewed first"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Router /violations/{id}/penalty [post]
func (h *Handler) applyPenalty(c *gin.Context) {
	id, ok := parseID(c, "violation")
	if !ok {
		return
	}
	log := h.logger.WithField("method", "applyPenalty").WithField("id", id)

	var input ApplyPenaltyRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	violation, err := h.violationService.ApplyPenalty(c.Request.Context(), id, models.PenaltyInput{
		Type:      input.PenaltyType,
		AppliedBy: input.AppliedBy,
		Notes:     input.Notes,
	})
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToViolationResponse(violation))
}

// @Summary List suspended vehicles
// @Description Plates with at least the configured number of unresolved violations. Requires API key.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SuspendedVehiclesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /violations/suspended [get]
func (h *Handler) suspendedVehicles(c *gin.Context) {
	c.JSON(http.StatusOK, SuspendedVehiclesResponse{
		Plates:    h.violationService.SuspendedVehicles(c.Request.Context()),
		Threshold: h.cfg.SuspensionThreshold,
	})
}

// @Summary Violation summary
// @Description Aggregated counts for reports. Requires API key.
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.ViolationSummary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /violations/summary [get]
func (h *Handler) violationSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.violationService.Summary(c.Request.Context()))
}
