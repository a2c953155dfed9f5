package api

import (
	"alcyxob/gym-coach/internal/api/metrics"
	"alcyxob/gym-coach/internal/domain"
	"alcyxob/gym-coach/internal/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves registration, login and the caller's own profile.
type AuthHandler struct {
	coach       service.CoachService
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(coach service.CoachService, authService service.AuthService) *AuthHandler {
	return &AuthHandler{coach: coach, authService: authService}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Role     domain.Role `json:"role" binding:"required,oneof=trainer client"`
	Username string      `json:"username" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Name     string      `json:"name" binding:"required"`

	// Trainer only
	ExperienceLevel string `json:"experienceLevel"`
	// Client only
	Goal         string `json:"goal"`
	InitialState string `json:"initialState"`
}

// UserResponse is the identity part of a user, without credentials.
type UserResponse struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// --- Handler Methods ---

// Register creates a trainer or client account.
// POST /api/v1/auth/register -> 201 Trainer|Client, 400, 409
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	ctx := c.Request.Context()
	var (
		created any
		err     error
	)
	switch req.Role {
	case domain.RoleTrainer:
		created, err = h.coach.RegisterTrainer(ctx, req.Username, req.Password, req.Name, req.ExperienceLevel)
	default:
		created, err = h.coach.RegisterClient(ctx, req.Username, req.Password, req.Name, req.Goal, req.InitialState)
	}
	if err != nil {
		respondError(c, err, "An unexpected error occurred during registration")
		return
	}

	metrics.UsersRegisteredTotal.WithLabelValues(string(req.Role)).Inc()
	c.JSON(http.StatusCreated, created)
}

// Login authenticates a user and returns a JWT.
// POST /api/v1/auth/login -> 200 LoginResponse, 400, 401
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err, "Could not process login")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  MapUserToResponse(user),
	})
}

// Me returns the full trainer or client record of the caller.
// GET /api/v1/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}
	role, _ := getUserRoleFromContext(c)

	ctx := c.Request.Context()
	if role == domain.RoleTrainer {
		trainer, err := h.coach.GetTrainer(ctx, userID)
		if err != nil {
			respondError(c, err, "Failed to load profile")
			return
		}
		c.JSON(http.StatusOK, trainer)
		return
	}
	client, err := h.coach.GetClient(ctx, userID)
	if err != nil {
		respondError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, client)
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
