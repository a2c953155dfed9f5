package service

import (
	"alcyxob/gym-coach/internal/domain"
	"context"
)

func (s *coachService) GetTrainer(ctx context.Context, trainerID string) (*domain.Trainer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trainer, err := s.getTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	trainer.PasswordHash = ""
	return trainer, nil
}

func (s *coachService) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	client, err := s.getClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	client.PasswordHash = ""
	return client, nil
}

func (s *coachService) ListTrainers(ctx context.Context) ([]domain.Trainer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trainers, err := s.store.Users.ListTrainers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range trainers {
		trainers[i].PasswordHash = ""
	}
	return trainers, nil
}

func (s *coachService) ListClients(ctx context.Context) ([]domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clients, err := s.store.Users.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		clients[i].PasswordHash = ""
	}
	return clients, nil
}

func (s *coachService) ListRoutines(ctx context.Context) ([]domain.Routine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Routines.List(ctx)
}

func (s *coachService) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Plans.List(ctx)
}

func (s *coachService) ListProgress(ctx context.Context) ([]domain.ProgressRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Progress.List(ctx)
}

// ManagedClients returns the trainer's linked clients in link order.
func (s *coachService) ManagedClients(ctx context.Context, trainerID string) ([]domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	trainer, err := s.getTrainer(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	clients := make([]domain.Client, 0, len(trainer.ClientIDs))
	for _, id := range trainer.ClientIDs {
		client, err := s.getClient(ctx, id)
		if err != nil {
			continue
		}
		client.PasswordHash = ""
		clients = append(clients, *client)
	}
	return clients, nil
}
