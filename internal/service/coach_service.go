package service

import (
	"alcyxob/gym-coach/internal/domain"
	"alcyxob/gym-coach/internal/generator"
	"alcyxob/gym-coach/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// --- Service Interface ---

// CoachService is the in-process API of the coaching core. Each call runs to completion
// under a single per-instance lock, so compound operations (link, generate-and-append)
// appear atomic to other callers.
type CoachService interface {
	// Registration and authentication
	RegisterTrainer(ctx context.Context, username, password, name, experienceLevel string) (*domain.Trainer, error)
	RegisterClient(ctx context.Context, username, password, name, goal, initialState string) (*domain.Client, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	SeedDemo(ctx context.Context) (bool, error)

	// Relationships
	Link(ctx context.Context, clientID, trainerID string) error
	RequireLinked(ctx context.Context, trainerID, clientID string) error

	// Content
	GeneratePlan(ctx context.Context, clientID string) (*domain.Plan, error)
	GenerateRoutine(ctx context.Context, clientID, trainerID string) (*domain.Routine, error)
	CreateCustomRoutine(ctx context.Context, trainerID, clientID string, week domain.WeeklySchedule, intensity string) (*domain.Routine, error)
	CreateCustomPlan(ctx context.Context, trainerID, clientID string, meals map[string]string, calories, mealsPerDay int, observations string) (*domain.Plan, error)

	// Progress
	RecordProgress(ctx context.Context, in ProgressInput) (*domain.ProgressRecord, error)

	// Read-only views
	GetTrainer(ctx context.Context, trainerID string) (*domain.Trainer, error)
	GetClient(ctx context.Context, clientID string) (*domain.Client, error)
	ListTrainers(ctx context.Context) ([]domain.Trainer, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
	ListRoutines(ctx context.Context) ([]domain.Routine, error)
	ListPlans(ctx context.Context) ([]domain.Plan, error)
	ListProgress(ctx context.Context) ([]domain.ProgressRecord, error)
	ManagedClients(ctx context.Context, trainerID string) ([]domain.Client, error)
	ClientHistory(ctx context.Context, clientID string) (*ClientHistory, error)
	ClientSummary(ctx context.Context, clientID string) (*ClientSummary, error)
}

// --- Service Implementation ---

// coachService implements CoachService over a repository.Store.
type coachService struct {
	mu sync.RWMutex

	store        *repository.Store
	generator    *generator.Generator
	validate     *validator.Validate
	now          func() time.Time
	passwordCost int
}

// Option customizes a coachService.
type Option func(*coachService)

// WithGenerator replaces the default goal rule table.
func WithGenerator(g *generator.Generator) Option {
	return func(s *coachService) { s.generator = g }
}

// WithClock sets the time source used to stamp created content.
func WithClock(now func() time.Time) Option {
	return func(s *coachService) { s.now = now }
}

// WithPasswordCost sets the bcrypt cost for new password hashes.
func WithPasswordCost(cost int) Option {
	return func(s *coachService) { s.passwordCost = cost }
}

// NewCoachService creates a new instance of coachService.
func NewCoachService(store *repository.Store, opts ...Option) CoachService {
	if store == nil {
		panic("coach service requires a store")
	}
	s := &coachService{
		store:        store,
		generator:    generator.Default(),
		validate:     validator.New(),
		now:          time.Now,
		passwordCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *coachService) timestamp() time.Time {
	return s.now().UTC()
}

// getClient resolves a client id. Caller holds the lock.
func (s *coachService) getClient(ctx context.Context, clientID string) (*domain.Client, error) {
	if clientID == "" {
		return nil, domain.ErrClientNotFound
	}
	client, err := s.store.Users.GetClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// getTrainer resolves a trainer id. Caller holds the lock.
func (s *coachService) getTrainer(ctx context.Context, trainerID string) (*domain.Trainer, error) {
	if trainerID == "" {
		return nil, domain.ErrTrainerNotFound
	}
	trainer, err := s.store.Users.GetTrainerByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrTrainerNotFound
		}
		return nil, err
	}
	return trainer, nil
}

// validateInput runs struct validation and folds failures into ErrInvalidInput.
func (s *coachService) validateInput(in any) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
}

// fieldError converts a single validation failure into a readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
