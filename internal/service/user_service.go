package service

import (
	"alcyxob/gym-coach/internal/domain"
	"alcyxob/gym-coach/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type registerInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	Name     string `validate:"required"`
}

// Demo accounts created by SeedDemo.
const (
	DemoTrainerUsername = "ent1"
	DemoClientUsername  = "cli1"
	DemoPassword        = "1234"
)

// RegisterTrainer creates a trainer account. Fails with ErrDuplicateUsername when the
// username is taken by any user.
func (s *coachService) RegisterTrainer(ctx context.Context, username, password, name, experienceLevel string) (*domain.Trainer, error) {
	username = strings.TrimSpace(username)
	if err := s.validateInput(registerInput{Username: username, Password: password, Name: name}); err != nil {
		return nil, err
	}
	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}

	trainer := &domain.Trainer{
		User:            domain.User{Username: username, PasswordHash: hash, CreatedAt: s.timestamp()},
		Name:            name,
		ExperienceLevel: experienceLevel,
		ClientIDs:       []string{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Users.CreateTrainer(ctx, trainer); err != nil {
		return nil, mapCreateUserError(err)
	}

	trainer.PasswordHash = ""
	return trainer, nil
}

// RegisterClient creates a client account with no trainer and empty history.
func (s *coachService) RegisterClient(ctx context.Context, username, password, name, goal, initialState string) (*domain.Client, error) {
	username = strings.TrimSpace(username)
	if err := s.validateInput(registerInput{Username: username, Password: password, Name: name}); err != nil {
		return nil, err
	}
	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}

	client := &domain.Client{
		User:         domain.User{Username: username, PasswordHash: hash, CreatedAt: s.timestamp()},
		Name:         name,
		Goal:         goal,
		InitialState: initialState,
		RoutineIDs:   []string{},
		PlanIDs:      []string{},
		ProgressIDs:  []string{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Users.CreateClient(ctx, client); err != nil {
		return nil, mapCreateUserError(err)
	}

	client.PasswordHash = ""
	return client, nil
}

// Authenticate checks a username/password pair against the unified user index.
// Unknown usernames and wrong passwords both yield ErrAuthenticationFailed.
func (s *coachService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrAuthenticationFailed
	}

	s.mu.RLock()
	user, err := s.store.Users.GetByUsername(ctx, strings.TrimSpace(username))
	s.mu.RUnlock()
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrAuthenticationFailed
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrAuthenticationFailed
	}

	user.PasswordHash = ""
	return user, nil
}

// SeedDemo registers a demo trainer and client when no users exist yet.
// It reports whether anything was created.
func (s *coachService) SeedDemo(ctx context.Context) (bool, error) {
	s.mu.RLock()
	trainers, err := s.store.Users.ListTrainers(ctx)
	if err != nil {
		s.mu.RUnlock()
		return false, err
	}
	clients, err := s.store.Users.ListClients(ctx)
	s.mu.RUnlock()
	if err != nil {
		return false, err
	}
	if len(trainers) > 0 || len(clients) > 0 {
		return false, nil
	}

	if _, err := s.RegisterTrainer(ctx, DemoTrainerUsername, DemoPassword, "Carlos Perez", "Senior"); err != nil {
		return false, fmt.Errorf("seed demo trainer: %w", err)
	}
	if _, err := s.RegisterClient(ctx, DemoClientUsername, DemoPassword, "Ana Gomez", "Bajar de peso", "Sobrepeso"); err != nil {
		return false, fmt.Errorf("seed demo client: %w", err)
	}
	return true, nil
}

func (s *coachService) hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.passwordCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func mapCreateUserError(err error) error {
	if errors.Is(err, repository.ErrDuplicateUsername) {
		return domain.ErrDuplicateUsername
	}
	return err
}
