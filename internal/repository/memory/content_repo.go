package memory

import (
	"alcyxob/gym-coach/internal/domain"
	"alcyxob/gym-coach/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// routineRepository implements repository.RoutineRepository.
type routineRepository struct {
	db *DB
}

func (r *routineRepository) Create(ctx context.Context, routine *domain.Routine) error {
	if routine.ClientID == "" {
		return errors.New("routine requires a client ID")
	}
	if routine.ID == "" {
		routine.ID = uuid.NewString()
	}
	if routine.CreatedAt.IsZero() {
		routine.CreatedAt = time.Now().UTC()
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	stored := routine.Clone()
	r.db.routines[stored.ID] = &stored
	r.db.routineOrder = append(r.db.routineOrder, stored.ID)
	return nil
}

func (r *routineRepository) GetByID(ctx context.Context, id string) (*domain.Routine, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	routine, ok := r.db.routines[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := routine.Clone()
	return &out, nil
}

func (r *routineRepository) List(ctx context.Context) ([]domain.Routine, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	routines := make([]domain.Routine, 0, len(r.db.routineOrder))
	for _, id := range r.db.routineOrder {
		routines = append(routines, r.db.routines[id].Clone())
	}
	return routines, nil
}

// planRepository implements repository.PlanRepository.
type planRepository struct {
	db *DB
}

func (r *planRepository) Create(ctx context.Context, plan *domain.Plan) error {
	if plan.ClientID == "" {
		return errors.New("plan requires a client ID")
	}
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	stored := plan.Clone()
	r.db.plans[stored.ID] = &stored
	r.db.planOrder = append(r.db.planOrder, stored.ID)
	return nil
}

func (r *planRepository) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	plan, ok := r.db.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := plan.Clone()
	return &out, nil
}

func (r *planRepository) List(ctx context.Context) ([]domain.Plan, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	plans := make([]domain.Plan, 0, len(r.db.planOrder))
	for _, id := range r.db.planOrder {
		plans = append(plans, r.db.plans[id].Clone())
	}
	return plans, nil
}

// progressRepository implements repository.ProgressRepository.
type progressRepository struct {
	db *DB
}

func (r *progressRepository) Create(ctx context.Context, record *domain.ProgressRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = time.Now().UTC()
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	stored := record.Clone()
	r.db.progress[stored.ID] = &stored
	r.db.progressOrder = append(r.db.progressOrder, stored.ID)
	return nil
}

func (r *progressRepository) GetByID(ctx context.Context, id string) (*domain.ProgressRecord, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	record, ok := r.db.progress[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := record.Clone()
	return &out, nil
}

func (r *progressRepository) List(ctx context.Context) ([]domain.ProgressRecord, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	records := make([]domain.ProgressRecord, 0, len(r.db.progressOrder))
	for _, id := range r.db.progressOrder {
		records = append(records, r.db.progress[id].Clone())
	}
	return records, nil
}
