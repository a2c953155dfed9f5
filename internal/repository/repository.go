package repository

import (
	"alcyxob/gym-coach/internal/domain"
	"context"
)

// Error constants for repository layer
var (
	ErrNotFound          = RepositoryError("not found")
	ErrDuplicateUsername = RepositoryError("username already exists")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository stores trainers and clients and the unified user index over both.
type UserRepository interface {
	CreateTrainer(ctx context.Context, trainer *domain.Trainer) error
	CreateClient(ctx context.Context, client *domain.Client) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetTrainerByID(ctx context.Context, id string) (*domain.Trainer, error)
	GetClientByID(ctx context.Context, id string) (*domain.Client, error)
	// Only relationship and history fields are expected to change on update.
	UpdateTrainer(ctx context.Context, trainer *domain.Trainer) error
	UpdateClient(ctx context.Context, client *domain.Client) error
	ListTrainers(ctx context.Context) ([]domain.Trainer, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// RoutineRepository stores exercise routines. There is no update or delete.
type RoutineRepository interface {
	Create(ctx context.Context, routine *domain.Routine) error
	GetByID(ctx context.Context, id string) (*domain.Routine, error)
	List(ctx context.Context) ([]domain.Routine, error)
}

// PlanRepository stores meal plans. There is no update or delete.
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.Plan) error
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	List(ctx context.Context) ([]domain.Plan, error)
}

// ProgressRepository stores progress records. Append-only.
type ProgressRepository interface {
	Create(ctx context.Context, record *domain.ProgressRecord) error
	GetByID(ctx context.Context, id string) (*domain.ProgressRecord, error)
	List(ctx context.Context) ([]domain.ProgressRecord, error)
}

// Store groups one repository per entity kind.
type Store struct {
	Users    UserRepository
	Routines RoutineRepository
	Plans    PlanRepository
	Progress ProgressRepository
}

// Snapshot is the full state of a store, used to persist it outside the process.
type Snapshot struct {
	Trainers []domain.Trainer
	Clients  []domain.Client
	Routines []domain.Routine
	Plans    []domain.Plan
	Progress []domain.ProgressRecord
}

// Empty reports whether the snapshot holds no entities at all.
func (s *Snapshot) Empty() bool {
	return len(s.Trainers) == 0 && len(s.Clients) == 0 && len(s.Routines) == 0 &&
		len(s.Plans) == 0 && len(s.Progress) == 0
}

// SnapshotRepository persists and restores whole-store snapshots.
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot *Snapshot) error
	Load(ctx context.Context) (*Snapshot, error)
}
