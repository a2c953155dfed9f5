package service

import (
	"alcyxob/gym-coach/internal/domain"
	"alcyxob/gym-coach/internal/repository/memory"
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestService(t *testing.T) (CoachService, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	svc := NewCoachService(memory.NewDB().Store(),
		WithPasswordCost(bcrypt.MinCost),
		WithClock(clock.Now),
	)
	return svc, clock
}

func mustTrainer(t *testing.T, svc CoachService, username, name string) *domain.Trainer {
	t.Helper()
	tr, err := svc.RegisterTrainer(context.Background(), username, "secret", name, "Senior")
	if err != nil {
		t.Fatalf("RegisterTrainer(%s): %v", username, err)
	}
	return tr
}

func mustClient(t *testing.T, svc CoachService, username, goal string) *domain.Client {
	t.Helper()
	c, err := svc.RegisterClient(context.Background(), username, "secret", "Client "+username, goal, "Inicial")
	if err != nil {
		t.Fatalf("RegisterClient(%s): %v", username, err)
	}
	return c
}

func mustLink(t *testing.T, svc CoachService, clientID, trainerID string) {
	t.Helper()
	if err := svc.Link(context.Background(), clientID, trainerID); err != nil {
		t.Fatalf("Link: %v", err)
	}
}

func TestTrainerCustomPlanRequiresLink(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t1 := mustTrainer(t, svc, "t1", "Trainer One")
	c1 := mustClient(t, svc, "c1", "Bajar de peso")

	plan, err := svc.GeneratePlan(ctx, c1.ID)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if plan.DailyCalories != 1700 || plan.MealsPerDay != 5 {
		t.Fatalf("generated plan = %d kcal / %d meals, want 1700 / 5", plan.DailyCalories, plan.MealsPerDay)
	}
	if plan.Profile != domain.ProfileWeightLoss {
		t.Fatalf("profile = %q, want weight_loss", plan.Profile)
	}

	mustLink(t, svc, c1.ID, t1.ID)

	custom, err := svc.CreateCustomPlan(ctx, t1.ID, c1.ID, map[string]string{"Desayuno": "Avena"}, 1900, 4, "Sin azúcar")
	if err != nil {
		t.Fatalf("CreateCustomPlan by linked trainer: %v", err)
	}
	if custom.TrainerID != t1.ID || custom.DailyCalories != 1900 || custom.MealsPerDay != 4 {
		t.Fatalf("unexpected custom plan: %+v", custom)
	}

	client, err := svc.GetClient(ctx, c1.ID)
	if err != nil {
		t.Fatalf("GetClient: %v", err)
	}
	if want := []string{plan.ID, custom.ID}; !reflect.DeepEqual(client.PlanIDs, want) {
		t.Fatalf("plan ids = %v, want %v", client.PlanIDs, want)
	}

	t2 := mustTrainer(t, svc, "t2", "Trainer Two")
	_, err = svc.CreateCustomPlan(ctx, t2.ID, c1.ID, map[string]string{"Cena": "Sopa"}, 2000, 3, "")
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("expected permission denied for unlinked trainer, got %v", err)
	}
	plans, _ := svc.ListPlans(ctx)
	if len(plans) != 2 {
		t.Fatalf("denied call stored a plan: %d plans", len(plans))
	}
}

func TestLinkMovesClientBetweenTrainers(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t1 := mustTrainer(t, svc, "t1", "One")
	t2 := mustTrainer(t, svc, "t2", "Two")
	c := mustClient(t, svc, "c", "salud")

	mustLink(t, svc, c.ID, t1.ID)
	mustLink(t, svc, c.ID, t2.ID)
	mustLink(t, svc, c.ID, t2.ID)

	first, _ := svc.GetTrainer(ctx, t1.ID)
	second, _ := svc.GetTrainer(ctx, t2.ID)
	client, _ := svc.GetClient(ctx, c.ID)

	if len(first.ClientIDs) != 0 {
		t.Fatalf("previous trainer still holds client: %v", first.ClientIDs)
	}
	if !reflect.DeepEqual(second.ClientIDs, []string{c.ID}) {
		t.Fatalf("new trainer clients = %v, want exactly [%s]", second.ClientIDs, c.ID)
	}
	if !client.HasTrainer(t2.ID) {
		t.Fatalf("client trainer = %v, want %s", client.TrainerID, t2.ID)
	}

	managed, err := svc.ManagedClients(ctx, t2.ID)
	if err != nil {
		t.Fatalf("ManagedClients: %v", err)
	}
	if len(managed) != 1 || managed[0].ID != c.ID {
		t.Fatalf("managed clients = %+v", managed)
	}
}

func TestLinkUnknownIDsChangeNothing(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tr := mustTrainer(t, svc, "t1", "One")
	c := mustClient(t, svc, "c1", "fuerza")

	tests := []struct {
		name      string
		clientID  string
		trainerID string
		wantErr   error
	}{
		{"unknown client", "missing", tr.ID, domain.ErrClientNotFound},
		{"unknown trainer", c.ID, "missing", domain.ErrTrainerNotFound},
		{"client id used as trainer", c.ID, c.ID, domain.ErrTrainerNotFound},
		{"empty ids", "", "", domain.ErrClientNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Link(ctx, tt.clientID, tt.trainerID)
			if !errors.Is(err, tt.wantErr) || !errors.Is(err, domain.ErrNotFound) {
				t.Fatalf("Link error = %v, want %v", err, tt.wantErr)
			}

			trainer, _ := svc.GetTrainer(ctx, tr.ID)
			client, _ := svc.GetClient(ctx, c.ID)
			if len(trainer.ClientIDs) != 0 || client.TrainerID != nil {
				t.Fatalf("failed link mutated state: trainer=%v client=%v", trainer.ClientIDs, client.TrainerID)
			}
		})
	}
}

func TestRegisterRejectsDuplicateUsernameAcrossRoles(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	mustTrainer(t, svc, "ana", "Ana")

	if _, err := svc.RegisterClient(ctx, "ana", "x", "Ana Client", "salud", ""); !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected duplicate username, got %v", err)
	}
	if _, err := svc.RegisterTrainer(ctx, " ana ", "x", "Ana Again", ""); !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected duplicate username for padded name, got %v", err)
	}

	clients, _ := svc.ListClients(ctx)
	trainers, _ := svc.ListTrainers(ctx)
	if len(clients) != 0 || len(trainers) != 1 {
		t.Fatalf("store changed after duplicate: %d clients, %d trainers", len(clients), len(trainers))
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name                     string
		username, password, full string
	}{
		{"empty username", "", "pw", "Name"},
		{"blank username", "   ", "pw", "Name"},
		{"empty password", "user", "", "Name"},
		{"empty name", "user", "pw", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterClient(ctx, tt.username, tt.password, tt.full, "goal", "")
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
		})
	}
}

func TestRegisteredUsersStartEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	tr := mustTrainer(t, svc, "t1", "One")
	c := mustClient(t, svc, "c1", "salud")

	if tr.Role != domain.RoleTrainer || len(tr.ClientIDs) != 0 || tr.PasswordHash != "" {
		t.Fatalf("unexpected trainer: %+v", tr)
	}
	if c.Role != domain.RoleClient || c.TrainerID != nil || len(c.RoutineIDs)+len(c.PlanIDs)+len(c.ProgressIDs) != 0 {
		t.Fatalf("unexpected client: %+v", c)
	}
}

func TestGenerateRoutineIsDeterministic(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a := mustClient(t, svc, "a", "Ganar FUERZA")
	b := mustClient(t, svc, "b", "quiero más fuerza")

	ra, err := svc.GenerateRoutine(ctx, a.ID, "")
	if err != nil {
		t.Fatalf("GenerateRoutine: %v", err)
	}
	rb, err := svc.GenerateRoutine(ctx, b.ID, "trainer-x")
	if err != nil {
		t.Fatalf("GenerateRoutine: %v", err)
	}

	if ra.Intensity != domain.IntensityHigh || ra.Profile != domain.ProfileStrength {
		t.Fatalf("routine = %s/%s, want Alta/strength", ra.Intensity, ra.Profile)
	}
	if !reflect.DeepEqual(ra.Week, rb.Week) {
		t.Fatalf("same profile produced different weeks")
	}
	if rb.TrainerID != "trainer-x" {
		t.Fatalf("trainer id not stamped: %q", rb.TrainerID)
	}
	if len(ra.Week) != len(domain.Weekdays) {
		t.Fatalf("week has %d days, want %d", len(ra.Week), len(domain.Weekdays))
	}
}

func TestGenerateForUnknownClient(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.GenerateRoutine(ctx, "nope", ""); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("GenerateRoutine error = %v", err)
	}
	if _, err := svc.GeneratePlan(ctx, "nope"); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("GeneratePlan error = %v", err)
	}
	routines, _ := svc.ListRoutines(ctx)
	plans, _ := svc.ListPlans(ctx)
	if len(routines) != 0 || len(plans) != 0 {
		t.Fatalf("content stored for unknown client")
	}
}

func TestRequireLinked(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	linked := mustTrainer(t, svc, "t1", "One")
	other := mustTrainer(t, svc, "t2", "Two")
	c := mustClient(t, svc, "c1", "salud")
	mustLink(t, svc, c.ID, linked.ID)

	tests := []struct {
		name      string
		trainerID string
		clientID  string
		wantErr   error
	}{
		{"linked", linked.ID, c.ID, nil},
		{"not linked", other.ID, c.ID, domain.ErrPermissionDenied},
		{"unknown trainer", "ghost", c.ID, domain.ErrNotFound},
		{"unknown client beats permission", other.ID, "ghost", domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.RequireLinked(ctx, tt.trainerID, tt.clientID)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateCustomRoutine(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tr := mustTrainer(t, svc, "t1", "One")
	stranger := mustTrainer(t, svc, "t2", "Two")
	c := mustClient(t, svc, "c1", "salud")
	mustLink(t, svc, c.ID, tr.ID)

	week := domain.WeeklySchedule{"Lunes": {{Name: "Sentadilla", Sets: 5, Reps: "5"}}}
	r, err := svc.CreateCustomRoutine(ctx, tr.ID, c.ID, week, "")
	if err != nil {
		t.Fatalf("CreateCustomRoutine: %v", err)
	}
	if r.Intensity != domain.IntensityCustomized || r.TrainerID != tr.ID || r.Profile != "" {
		t.Fatalf("unexpected routine: %+v", r)
	}

	week["Lunes"][0].Name = "mutated"
	history, err := svc.ClientHistory(ctx, c.ID)
	if err != nil {
		t.Fatalf("ClientHistory: %v", err)
	}
	if got := history.Routines[0].Week["Lunes"][0].Name; got != "Sentadilla" {
		t.Fatalf("stored routine aliased caller data: %q", got)
	}

	if _, err := svc.CreateCustomRoutine(ctx, stranger.ID, c.ID, week, "Alta"); !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
	client, _ := svc.GetClient(ctx, c.ID)
	if len(client.RoutineIDs) != 1 {
		t.Fatalf("denied call appended a routine: %v", client.RoutineIDs)
	}
}

func TestCreateCustomPlanValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tr := mustTrainer(t, svc, "t1", "One")
	c := mustClient(t, svc, "c1", "salud")
	mustLink(t, svc, c.ID, tr.ID)

	tests := []struct {
		name           string
		calories, meal int
	}{
		{"zero calories", 0, 3},
		{"negative meals", 2000, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCustomPlan(ctx, tr.ID, c.ID, nil, tt.calories, tt.meal, "")
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
		})
	}
}

func TestRecordProgress(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.RecordProgress(ctx, ProgressInput{ClientID: "ghost", Weight: 70}); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected client not found, got %v", err)
	}
	if all, _ := svc.ListProgress(ctx); len(all) != 0 {
		t.Fatalf("record stored for unknown client")
	}

	c := mustClient(t, svc, "c1", "salud")
	if _, err := svc.RecordProgress(ctx, ProgressInput{ClientID: c.ID, Weight: -1}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for negative weight, got %v", err)
	}

	rec, err := svc.RecordProgress(ctx, ProgressInput{
		ClientID:     c.ID,
		Weight:       72.4,
		Measurements: map[string]float64{"cintura": 81},
		Repetitions:  map[string]int{"Flexiones": 20},
		Observations: "Buen ritmo",
	})
	if err != nil {
		t.Fatalf("RecordProgress: %v", err)
	}
	if rec.ID == "" || rec.RecordedAt.IsZero() || rec.Repetitions["Flexiones"] != 20 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	client, _ := svc.GetClient(ctx, c.ID)
	if !reflect.DeepEqual(client.ProgressIDs, []string{rec.ID}) {
		t.Fatalf("progress ids = %v", client.ProgressIDs)
	}
	all, err := svc.ListProgress(ctx)
	if err != nil {
		t.Fatalf("ListProgress: %v", err)
	}
	if len(all) != 1 || all[0].ID != rec.ID || all[0].ClientID != c.ID || all[0].Weight != 72.4 ||
		all[0].Measurements["cintura"] != 81 || all[0].Observations != "Buen ritmo" {
		t.Fatalf("stored record = %+v", all)
	}
}

func TestClientSummary(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()

	tr := mustTrainer(t, svc, "t1", "Carlos Perez")
	c := mustClient(t, svc, "c1", "Bajar de peso")

	empty, err := svc.ClientSummary(ctx, c.ID)
	if err != nil {
		t.Fatalf("ClientSummary: %v", err)
	}
	if empty.FirstActivity != nil || empty.WeightChange != nil || empty.TrainerName != "" {
		t.Fatalf("empty summary carries data: %+v", empty)
	}

	mustLink(t, svc, c.ID, tr.ID)
	if _, err := svc.RecordProgress(ctx, ProgressInput{ClientID: c.ID, Weight: 80}); err != nil {
		t.Fatal(err)
	}
	clock.Advance(3 * 24 * time.Hour)
	if _, err := svc.GeneratePlan(ctx, c.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordProgress(ctx, ProgressInput{ClientID: c.ID, Observations: "sin báscula"}); err != nil {
		t.Fatal(err)
	}
	clock.Advance(2 * 24 * time.Hour)
	if _, err := svc.RecordProgress(ctx, ProgressInput{ClientID: c.ID, Weight: 77}); err != nil {
		t.Fatal(err)
	}
	clock.Advance(26 * time.Hour)

	sum, err := svc.ClientSummary(ctx, c.ID)
	if err != nil {
		t.Fatalf("ClientSummary: %v", err)
	}
	if sum.TrainerName != "Carlos Perez" {
		t.Fatalf("trainer name = %q", sum.TrainerName)
	}
	if sum.PlanCount != 1 || sum.ProgressCount != 3 || sum.RoutineCount != 0 {
		t.Fatalf("counts = %d/%d/%d", sum.RoutineCount, sum.PlanCount, sum.ProgressCount)
	}
	wantFirst := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if sum.FirstActivity == nil || !sum.FirstActivity.Equal(wantFirst) {
		t.Fatalf("first activity = %v, want %v", sum.FirstActivity, wantFirst)
	}
	if sum.DaysTraining != 6 {
		t.Fatalf("days training = %d, want 6", sum.DaysTraining)
	}
	if sum.WeighIns != 2 {
		t.Fatalf("weigh-ins = %d, want 2", sum.WeighIns)
	}
	if sum.WeightChange == nil || *sum.WeightChange != -3 {
		t.Fatalf("weight change = %v, want -3", sum.WeightChange)
	}
}

func TestClientHistoryKeepsAppendOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tr := mustTrainer(t, svc, "t1", "One")
	c := mustClient(t, svc, "c1", "salud")
	mustLink(t, svc, c.ID, tr.ID)

	auto, _ := svc.GenerateRoutine(ctx, c.ID, "")
	custom, _ := svc.CreateCustomRoutine(ctx, tr.ID, c.ID, domain.WeeklySchedule{}, "Media")
	again, _ := svc.GenerateRoutine(ctx, c.ID, tr.ID)

	h, err := svc.ClientHistory(ctx, c.ID)
	if err != nil {
		t.Fatalf("ClientHistory: %v", err)
	}
	got := []string{h.Routines[0].ID, h.Routines[1].ID, h.Routines[2].ID}
	want := []string{auto.ID, custom.ID, again.ID}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("routine order = %v, want %v", got, want)
	}
	if h.Trainer == nil || h.Trainer.ID != tr.ID || h.Trainer.PasswordHash != "" {
		t.Fatalf("history trainer = %+v", h.Trainer)
	}
	if _, err := svc.ClientHistory(ctx, "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tr := mustTrainer(t, svc, "coach", "Coach")

	user, err := svc.Authenticate(ctx, "coach", "secret")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.ID != tr.ID || user.Role != domain.RoleTrainer || user.PasswordHash != "" {
		t.Fatalf("unexpected user: %+v", user)
	}

	for _, tc := range []struct{ name, user, pass string }{
		{"wrong password", "coach", "nope"},
		{"unknown user", "ghost", "secret"},
		{"empty password", "coach", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Authenticate(ctx, tc.user, tc.pass); !errors.Is(err, domain.ErrAuthenticationFailed) {
				t.Fatalf("expected authentication failure, got %v", err)
			}
		})
	}
}

func TestSeedDemo(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.SeedDemo(ctx)
	if err != nil || !created {
		t.Fatalf("SeedDemo = %v, %v; want true, nil", created, err)
	}
	user, err := svc.Authenticate(ctx, DemoClientUsername, DemoPassword)
	if err != nil || user.Role != domain.RoleClient {
		t.Fatalf("demo client login: %v %+v", err, user)
	}

	created, err = svc.SeedDemo(ctx)
	if err != nil || created {
		t.Fatalf("second SeedDemo = %v, %v; want false, nil", created, err)
	}
	trainers, _ := svc.ListTrainers(ctx)
	if len(trainers) != 1 || trainers[0].Username != DemoTrainerUsername {
		t.Fatalf("trainers after seeding twice = %+v", trainers)
	}
}
