package service

import (
	"alcyxob/gym-coach/internal/domain"
	"alcyxob/gym-coach/internal/repository"
	"context"
	"errors"
)

// Link assigns the client to the trainer, detaching it from any previous trainer.
// Both sides of the relationship are written under the same lock; on a NotFound error
// nothing is changed.
func (s *coachService) Link(ctx context.Context, clientID, trainerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 1. Resolve both sides before touching anything
	client, err := s.getClient(ctx, clientID)
	if err != nil {
		return err
	}
	trainer, err := s.getTrainer(ctx, trainerID)
	if err != nil {
		return err
	}

	// 2. Detach from the previous trainer, if any
	var previous *domain.Trainer
	if client.TrainerID != nil && *client.TrainerID != trainerID {
		previous, err = s.store.Users.GetTrainerByID(ctx, *client.TrainerID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if previous != nil {
			previous.ClientIDs = removeID(previous.ClientIDs, clientID)
		}
	}

	// 3. Attach to the new trainer
	client.TrainerID = &trainer.ID
	if !trainer.HasClient(clientID) {
		trainer.ClientIDs = append(trainer.ClientIDs, clientID)
	}

	// 4. Save all sides
	if previous != nil {
		if err := s.store.Users.UpdateTrainer(ctx, previous); err != nil {
			return err
		}
	}
	if err := s.store.Users.UpdateTrainer(ctx, trainer); err != nil {
		return err
	}
	return s.store.Users.UpdateClient(ctx, client)
}

// RequireLinked succeeds only when the trainer's client set contains the client.
// Unresolvable ids are reported as NotFound before any permission check.
func (s *coachService) RequireLinked(ctx context.Context, trainerID, clientID string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, _, err := s.requireLinked(ctx, trainerID, clientID)
	return err
}

// requireLinked is the guard body. Caller holds the lock.
func (s *coachService) requireLinked(ctx context.Context, trainerID, clientID string) (*domain.Trainer, *domain.Client, error) {
	trainer, err := s.getTrainer(ctx, trainerID)
	if err != nil {
		return nil, nil, err
	}
	client, err := s.getClient(ctx, clientID)
	if err != nil {
		return nil, nil, err
	}
	if !trainer.HasClient(clientID) {
		return nil, nil, domain.ErrClientNotLinked
	}
	return trainer, client, nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
