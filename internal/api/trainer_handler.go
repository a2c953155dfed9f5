package api

import (
	"alcyxob/gym-coach/internal/api/metrics"
	"alcyxob/gym-coach/internal/domain"
	"alcyxob/gym-coach/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TrainerHandler serves the routes only trainers may call. The trainer is always the caller.
type TrainerHandler struct {
	coach service.CoachService
}

func NewTrainerHandler(coach service.CoachService) *TrainerHandler {
	return &TrainerHandler{coach: coach}
}

// --- DTOs ---

type CustomRoutineRequest struct {
	Intensity string                `json:"intensity"`
	Week      domain.WeeklySchedule `json:"week" binding:"required"`
}

type CustomPlanRequest struct {
	DailyCalories int               `json:"dailyCalories" binding:"required"`
	MealsPerDay   int               `json:"mealsPerDay" binding:"required"`
	Meals         map[string]string `json:"meals"`
	Observations  string            `json:"observations"`
}

// --- Handler Methods ---

// GetManagedClients lists the caller's linked clients.
// GET /api/v1/trainer/clients
func (h *TrainerHandler) GetManagedClients(c *gin.Context) {
	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	clients, err := h.coach.ManagedClients(c.Request.Context(), trainerID)
	if err != nil {
		respondError(c, err, "Failed to retrieve managed clients.")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// LinkClient takes the client on, moving it away from any previous trainer.
// POST /api/v1/trainer/clients/:clientId/link -> 200 Client
func (h *TrainerHandler) LinkClient(c *gin.Context) {
	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}
	clientID := c.Param("clientId")

	ctx := c.Request.Context()
	if err := h.coach.Link(ctx, clientID, trainerID); err != nil {
		respondError(c, err, "Failed to add client.")
		return
	}
	metrics.LinksTotal.Inc()

	client, err := h.coach.GetClient(ctx, clientID)
	if err != nil {
		respondError(c, err, "Failed to add client.")
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateCustomRoutine stores a routine authored by the caller for a linked client.
// POST /api/v1/trainer/clients/:clientId/routines -> 201, 403, 404
func (h *TrainerHandler) CreateCustomRoutine(c *gin.Context) {
	var req CustomRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	routine, err := h.coach.CreateCustomRoutine(c.Request.Context(), trainerID, c.Param("clientId"), req.Week, req.Intensity)
	if err != nil {
		if errors.Is(err, domain.ErrPermissionDenied) {
			metrics.PermissionDeniedTotal.WithLabelValues("custom_routine").Inc()
		}
		respondError(c, err, "Failed to create routine.")
		return
	}
	metrics.ContentCreatedTotal.WithLabelValues("routine", "custom", "none").Inc()
	c.JSON(http.StatusCreated, routine)
}

// CreateCustomPlan stores a meal plan authored by the caller for a linked client.
// POST /api/v1/trainer/clients/:clientId/plans -> 201, 400, 403, 404
func (h *TrainerHandler) CreateCustomPlan(c *gin.Context) {
	var req CustomPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}

	plan, err := h.coach.CreateCustomPlan(c.Request.Context(), trainerID, c.Param("clientId"),
		req.Meals, req.DailyCalories, req.MealsPerDay, req.Observations)
	if err != nil {
		if errors.Is(err, domain.ErrPermissionDenied) {
			metrics.PermissionDeniedTotal.WithLabelValues("custom_plan").Inc()
		}
		respondError(c, err, "Failed to create plan.")
		return
	}
	metrics.ContentCreatedTotal.WithLabelValues("plan", "custom", "none").Inc()
	c.JSON(http.StatusCreated, plan)
}
