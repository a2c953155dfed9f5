package service

import (
	"alcyxob/gym-coach/internal/domain"
	"context"
	"sort"
	"time"
)

// ProgressInput carries one physical check-in for a client.
type ProgressInput struct {
	ClientID     string  `validate:"required"`
	Weight       float64 `validate:"gte=0"`
	Measurements map[string]float64
	Repetitions  map[string]int
	Observations string
}

// ClientHistory is a client together with everything linked to it, in append order.
type ClientHistory struct {
	Client   domain.Client           `json:"client"`
	Trainer  *domain.Trainer         `json:"trainer,omitempty"`
	Routines []domain.Routine        `json:"routines"`
	Plans    []domain.Plan           `json:"plans"`
	Progress []domain.ProgressRecord `json:"progress"`
}

// ClientSummary condenses a client's history for display.
type ClientSummary struct {
	ClientID      string     `json:"clientId"`
	Name          string     `json:"name"`
	Goal          string     `json:"goal"`
	InitialState  string     `json:"initialState"`
	TrainerName   string     `json:"trainerName,omitempty"` // Empty when unassigned
	RoutineCount  int        `json:"routineCount"`
	PlanCount     int        `json:"planCount"`
	ProgressCount int        `json:"progressCount"`
	FirstActivity *time.Time `json:"firstActivity,omitempty"` // Earliest routine, plan or progress date
	DaysTraining  int        `json:"daysTraining"`
	WeighIns      int        `json:"weighIns"`
	WeightChange  *float64   `json:"weightChange,omitempty"` // Latest minus earliest weigh-in, needs two
}

// RecordProgress stores a progress record and appends it to the client's history.
// The client must exist; otherwise nothing is stored.
func (s *coachService) RecordProgress(ctx context.Context, in ProgressInput) (*domain.ProgressRecord, error) {
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := s.getClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	record := domain.ProgressRecord{
		ClientID:     client.ID,
		RecordedAt:   s.timestamp(),
		Weight:       in.Weight,
		Measurements: in.Measurements,
		Repetitions:  in.Repetitions,
		Observations: in.Observations,
	}.Clone()
	if err := s.store.Progress.Create(ctx, &record); err != nil {
		return nil, err
	}
	client.ProgressIDs = append(client.ProgressIDs, record.ID)
	if err := s.store.Users.UpdateClient(ctx, client); err != nil {
		return nil, err
	}
	return &record, nil
}

// ClientHistory resolves every id on the client. Ids that no longer resolve are skipped.
func (s *coachService) ClientHistory(ctx context.Context, clientID string) (*ClientHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clientHistory(ctx, clientID)
}

func (s *coachService) clientHistory(ctx context.Context, clientID string) (*ClientHistory, error) {
	client, err := s.getClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	client.PasswordHash = ""

	h := &ClientHistory{
		Client:   *client,
		Routines: make([]domain.Routine, 0, len(client.RoutineIDs)),
		Plans:    make([]domain.Plan, 0, len(client.PlanIDs)),
		Progress: make([]domain.ProgressRecord, 0, len(client.ProgressIDs)),
	}
	if client.TrainerID != nil {
		if trainer, err := s.store.Users.GetTrainerByID(ctx, *client.TrainerID); err == nil {
			trainer.PasswordHash = ""
			h.Trainer = trainer
		}
	}
	for _, id := range client.RoutineIDs {
		if r, err := s.store.Routines.GetByID(ctx, id); err == nil {
			h.Routines = append(h.Routines, *r)
		}
	}
	for _, id := range client.PlanIDs {
		if p, err := s.store.Plans.GetByID(ctx, id); err == nil {
			h.Plans = append(h.Plans, *p)
		}
	}
	for _, id := range client.ProgressIDs {
		if p, err := s.store.Progress.GetByID(ctx, id); err == nil {
			h.Progress = append(h.Progress, *p)
		}
	}
	return h, nil
}

// ClientSummary reports activity span and weight trend for a client.
func (s *coachService) ClientSummary(ctx context.Context, clientID string) (*ClientSummary, error) {
	s.mu.RLock()
	h, err := s.clientHistory(ctx, clientID)
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}
	return summarize(h, s.timestamp()), nil
}

func summarize(h *ClientHistory, now time.Time) *ClientSummary {
	sum := &ClientSummary{
		ClientID:      h.Client.ID,
		Name:          h.Client.Name,
		Goal:          h.Client.Goal,
		InitialState:  h.Client.InitialState,
		RoutineCount:  len(h.Client.RoutineIDs),
		PlanCount:     len(h.Client.PlanIDs),
		ProgressCount: len(h.Client.ProgressIDs),
	}
	if h.Trainer != nil {
		sum.TrainerName = h.Trainer.Name
	}

	var dates []time.Time
	for _, p := range h.Progress {
		dates = append(dates, p.RecordedAt)
	}
	for _, r := range h.Routines {
		dates = append(dates, r.CreatedAt)
	}
	for _, p := range h.Plans {
		dates = append(dates, p.CreatedAt)
	}
	if len(dates) > 0 {
		first := dates[0]
		for _, d := range dates[1:] {
			if d.Before(first) {
				first = d
			}
		}
		day := dateOf(first)
		sum.FirstActivity = &day
		sum.DaysTraining = int(dateOf(now).Sub(day).Hours() / 24)
	}

	var weighIns []domain.ProgressRecord
	for _, p := range h.Progress {
		if p.Weight > 0 {
			weighIns = append(weighIns, p)
		}
	}
	sum.WeighIns = len(weighIns)
	if len(weighIns) >= 2 {
		sort.SliceStable(weighIns, func(i, j int) bool {
			return weighIns[i].RecordedAt.Before(weighIns[j].RecordedAt)
		})
		change := weighIns[len(weighIns)-1].Weight - weighIns[0].Weight
		sum.WeightChange = &change
	}
	return sum
}

func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
