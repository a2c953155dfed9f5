package memory

import (
	"alcyxob/gym-coach/internal/domain"
	"alcyxob/gym-coach/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// userRepository implements repository.UserRepository over a DB.
type userRepository struct {
	db *DB
}

// CreateTrainer inserts a new trainer. ID and CreatedAt are assigned when empty.
func (r *userRepository) CreateTrainer(ctx context.Context, trainer *domain.Trainer) error {
	if trainer.Username == "" {
		return errors.New("trainer username is required")
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.db.usernameTaken(trainer.Username) {
		return repository.ErrDuplicateUsername
	}
	prepareUser(&trainer.User, domain.RoleTrainer)

	stored := trainer.Clone()
	r.db.putTrainer(&stored)
	return nil
}

// CreateClient inserts a new client. ID and CreatedAt are assigned when empty.
func (r *userRepository) CreateClient(ctx context.Context, client *domain.Client) error {
	if client.Username == "" {
		return errors.New("client username is required")
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.db.usernameTaken(client.Username) {
		return repository.ErrDuplicateUsername
	}
	prepareUser(&client.User, domain.RoleClient)

	stored := client.Clone()
	r.db.putClient(&stored)
	return nil
}

// GetByUsername is a linear scan of the unified user index.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, id := range r.db.userOrder {
		if u := r.db.users[id]; u.Username == username {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepository) GetTrainerByID(ctx context.Context, id string) (*domain.Trainer, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	t, ok := r.db.trainers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := t.Clone()
	return &out, nil
}

func (r *userRepository) GetClientByID(ctx context.Context, id string) (*domain.Client, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	c, ok := r.db.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := c.Clone()
	return &out, nil
}

// UpdateTrainer replaces the stored trainer. Identity fields are kept from the stored copy.
func (r *userRepository) UpdateTrainer(ctx context.Context, trainer *domain.Trainer) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	current, ok := r.db.trainers[trainer.ID]
	if !ok {
		return repository.ErrNotFound
	}
	updated := trainer.Clone()
	updated.User = current.User
	*current = updated
	return nil
}

// UpdateClient replaces the stored client. Identity fields are kept from the stored copy.
func (r *userRepository) UpdateClient(ctx context.Context, client *domain.Client) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	current, ok := r.db.clients[client.ID]
	if !ok {
		return repository.ErrNotFound
	}
	updated := client.Clone()
	updated.User = current.User
	*current = updated
	return nil
}

func (r *userRepository) ListTrainers(ctx context.Context) ([]domain.Trainer, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	trainers := make([]domain.Trainer, 0, len(r.db.trainerOrder))
	for _, id := range r.db.trainerOrder {
		trainers = append(trainers, r.db.trainers[id].Clone())
	}
	return trainers, nil
}

func (r *userRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	clients := make([]domain.Client, 0, len(r.db.clientOrder))
	for _, id := range r.db.clientOrder {
		clients = append(clients, r.db.clients[id].Clone())
	}
	return clients, nil
}

func prepareUser(u *domain.User, role domain.Role) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	u.Role = role
}
