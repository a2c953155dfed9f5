package api

import (
	"alcyxob/gym-coach/internal/api/metrics"
	"alcyxob/gym-coach/internal/report"
	"alcyxob/gym-coach/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ClientHandler serves the routes scoped to one client (/clients/:clientId/...).
type ClientHandler struct {
	coach   service.CoachService
	reports service.ReportService
}

func NewClientHandler(coach service.CoachService, reports service.ReportService) *ClientHandler {
	return &ClientHandler{coach: coach, reports: reports}
}

type ProgressRequest struct {
	Weight       float64            `json:"weight" binding:"gte=0"`
	Measurements map[string]float64 `json:"measurements"`
	Repetitions  map[string]int     `json:"repetitions"`
	Observations string             `json:"observations"`
}

// GET /api/v1/clients/:clientId
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.coach.GetClient(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		respondError(c, err, "Failed to load client")
		return
	}
	c.JSON(http.StatusOK, client)
}

// GET /api/v1/clients/:clientId/history
func (h *ClientHandler) GetHistory(c *gin.Context) {
	history, err := h.coach.ClientHistory(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		respondError(c, err, "Failed to load history")
		return
	}
	c.JSON(http.StatusOK, history)
}

// GET /api/v1/clients/:clientId/summary
func (h *ClientHandler) GetSummary(c *gin.Context) {
	summary, err := h.coach.ClientSummary(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		respondError(c, err, "Failed to load summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GeneratePlan creates a meal plan from the client's goal.
// POST /api/v1/clients/:clientId/plans/auto -> 201 Plan
func (h *ClientHandler) GeneratePlan(c *gin.Context) {
	plan, err := h.coach.GeneratePlan(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		respondError(c, err, "Failed to generate plan")
		return
	}
	metrics.ContentCreatedTotal.WithLabelValues("plan", "auto", string(plan.Profile)).Inc()
	c.JSON(http.StatusCreated, plan)
}

// GenerateRoutine creates a routine from the client's goal, stamped with the client's
// current trainer when there is one.
// POST /api/v1/clients/:clientId/routines/auto -> 201 Routine
func (h *ClientHandler) GenerateRoutine(c *gin.Context) {
	ctx := c.Request.Context()
	client, err := h.coach.GetClient(ctx, c.Param("clientId"))
	if err != nil {
		respondError(c, err, "Failed to generate routine")
		return
	}
	trainerID := ""
	if client.TrainerID != nil {
		trainerID = *client.TrainerID
	}

	routine, err := h.coach.GenerateRoutine(ctx, client.ID, trainerID)
	if err != nil {
		respondError(c, err, "Failed to generate routine")
		return
	}
	metrics.ContentCreatedTotal.WithLabelValues("routine", "auto", string(routine.Profile)).Inc()
	c.JSON(http.StatusCreated, routine)
}

// RecordProgress appends a progress record.
// POST /api/v1/clients/:clientId/progress -> 201 ProgressRecord
func (h *ClientHandler) RecordProgress(c *gin.Context) {
	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	record, err := h.coach.RecordProgress(c.Request.Context(), service.ProgressInput{
		ClientID:     c.Param("clientId"),
		Weight:       req.Weight,
		Measurements: req.Measurements,
		Repetitions:  req.Repetitions,
		Observations: req.Observations,
	})
	if err != nil {
		respondError(c, err, "Failed to record progress")
		return
	}
	metrics.ProgressRecordsTotal.Inc()
	c.JSON(http.StatusCreated, record)
}

// ExportReport returns the client's workbook. With object storage configured the
// response is JSON carrying a presigned URL; otherwise the file itself is sent.
// GET /api/v1/clients/:clientId/report
func (h *ClientHandler) ExportReport(c *gin.Context) {
	result, err := h.reports.Export(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		respondError(c, err, "Failed to export report")
		return
	}

	if h.reports.Uploads() {
		metrics.ReportsExportedTotal.WithLabelValues("s3").Inc()
		c.JSON(http.StatusOK, result)
		return
	}
	metrics.ReportsExportedTotal.WithLabelValues("download").Inc()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, report.ContentType, result.Content)
}
