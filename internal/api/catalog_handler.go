package api

import (
	"alcyxob/gym-coach/internal/api/metrics"
	"alcyxob/gym-coach/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only listings and the general link action.
type CatalogHandler struct {
	coach service.CoachService
}

func NewCatalogHandler(coach service.CoachService) *CatalogHandler {
	return &CatalogHandler{coach: coach}
}

type LinkRequest struct {
	ClientID  string `json:"clientId" binding:"required"`
	TrainerID string `json:"trainerId" binding:"required"`
}

// GET /api/v1/trainers
func (h *CatalogHandler) ListTrainers(c *gin.Context) {
	trainers, err := h.coach.ListTrainers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list trainers")
		return
	}
	c.JSON(http.StatusOK, trainers)
}

// GET /api/v1/clients
func (h *CatalogHandler) ListClients(c *gin.Context) {
	clients, err := h.coach.ListClients(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GET /api/v1/routines
func (h *CatalogHandler) ListRoutines(c *gin.Context) {
	routines, err := h.coach.ListRoutines(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list routines")
		return
	}
	c.JSON(http.StatusOK, routines)
}

// GET /api/v1/plans
func (h *CatalogHandler) ListPlans(c *gin.Context) {
	plans, err := h.coach.ListPlans(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list plans")
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GET /api/v1/progress
func (h *CatalogHandler) ListProgress(c *gin.Context) {
	records, err := h.coach.ListProgress(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list progress")
		return
	}
	c.JSON(http.StatusOK, records)
}

// Link assigns any client to any trainer.
// POST /api/v1/links -> 204, 404
func (h *CatalogHandler) Link(c *gin.Context) {
	var req LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if err := h.coach.Link(c.Request.Context(), req.ClientID, req.TrainerID); err != nil {
		respondError(c, err, "Failed to link client")
		return
	}
	metrics.LinksTotal.Inc()
	c.Status(http.StatusNoContent)
}
