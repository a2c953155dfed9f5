package service

import (
	"alcyxob/gym-coach/internal/domain"
	"context"
)

type customPlanInput struct {
	DailyCalories int `validate:"gt=0"`
	MealsPerDay   int `validate:"gt=0"`
}

// GeneratePlan derives a meal plan from the client's goal, stores it and appends it to
// the client's plan history.
func (s *coachService) GeneratePlan(ctx context.Context, clientID string) (*domain.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := s.getClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	tpl := s.generator.Plan(client.Goal)
	plan := &domain.Plan{
		ClientID:      client.ID,
		MealsPerDay:   tpl.MealsPerDay,
		DailyCalories: tpl.DailyCalories,
		Meals:         tpl.Meals,
		Observations:  tpl.Observations,
		Profile:       tpl.Profile,
		CreatedAt:     s.timestamp(),
	}
	if err := s.savePlan(ctx, client, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// GenerateRoutine derives a weekly routine from the client's goal. trainerID is stamped
// on the routine as given; it is not checked against the client's trainer.
func (s *coachService) GenerateRoutine(ctx context.Context, clientID, trainerID string) (*domain.Routine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := s.getClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	tpl := s.generator.Routine(client.Goal)
	routine := &domain.Routine{
		ClientID:  client.ID,
		TrainerID: trainerID,
		Week:      tpl.Week,
		Intensity: tpl.Intensity,
		Profile:   tpl.Profile,
		CreatedAt: s.timestamp(),
	}
	if err := s.saveRoutine(ctx, client, routine); err != nil {
		return nil, err
	}
	return routine, nil
}

// CreateCustomRoutine stores a trainer-authored routine verbatim. The trainer must be
// linked to the client; nothing is stored otherwise.
func (s *coachService) CreateCustomRoutine(ctx context.Context, trainerID, clientID string, week domain.WeeklySchedule, intensity string) (*domain.Routine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trainer, client, err := s.requireLinked(ctx, trainerID, clientID)
	if err != nil {
		return nil, err
	}

	if week == nil {
		week = domain.WeeklySchedule{}
	}
	if intensity == "" {
		intensity = domain.IntensityCustomized
	}
	routine := &domain.Routine{
		ClientID:  client.ID,
		TrainerID: trainer.ID,
		Week:      week.Clone(),
		Intensity: intensity,
		CreatedAt: s.timestamp(),
	}
	if err := s.saveRoutine(ctx, client, routine); err != nil {
		return nil, err
	}
	return routine, nil
}

// CreateCustomPlan stores a trainer-authored meal plan verbatim after the link check.
func (s *coachService) CreateCustomPlan(ctx context.Context, trainerID, clientID string, meals map[string]string, calories, mealsPerDay int, observations string) (*domain.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trainer, client, err := s.requireLinked(ctx, trainerID, clientID)
	if err != nil {
		return nil, err
	}
	if err := s.validateInput(customPlanInput{DailyCalories: calories, MealsPerDay: mealsPerDay}); err != nil {
		return nil, err
	}

	copied := make(map[string]string, len(meals))
	for label, desc := range meals {
		copied[label] = desc
	}
	plan := &domain.Plan{
		ClientID:      client.ID,
		TrainerID:     trainer.ID,
		MealsPerDay:   mealsPerDay,
		DailyCalories: calories,
		Meals:         copied,
		Observations:  observations,
		CreatedAt:     s.timestamp(),
	}
	if err := s.savePlan(ctx, client, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// saveRoutine persists the routine and appends it to the client. Caller holds the lock.
func (s *coachService) saveRoutine(ctx context.Context, client *domain.Client, routine *domain.Routine) error {
	if err := s.store.Routines.Create(ctx, routine); err != nil {
		return err
	}
	client.RoutineIDs = append(client.RoutineIDs, routine.ID)
	return s.store.Users.UpdateClient(ctx, client)
}

// savePlan persists the plan and appends it to the client. Caller holds the lock.
func (s *coachService) savePlan(ctx context.Context, client *domain.Client, plan *domain.Plan) error {
	if err := s.store.Plans.Create(ctx, plan); err != nil {
		return err
	}
	client.PlanIDs = append(client.PlanIDs, plan.ID)
	return s.store.Users.UpdateClient(ctx, client)
}
