package memory

import (
	"alcyxob/gym-coach/internal/domain"
	"alcyxob/gym-coach/internal/repository"
	"context"
	"errors"
	"testing"
)

func newTrainer(username string) *domain.Trainer {
	return &domain.Trainer{User: domain.User{Username: username, PasswordHash: "x"}, Name: "T " + username}
}

func newClient(username string) *domain.Client {
	return &domain.Client{User: domain.User{Username: username, PasswordHash: "x"}, Name: "C " + username, Goal: "salud"}
}

func TestCreateAssignsIdentityAndRole(t *testing.T) {
	store := NewDB().Store()
	ctx := context.Background()

	tr := newTrainer("ent1")
	if err := store.Users.CreateTrainer(ctx, tr); err != nil {
		t.Fatalf("CreateTrainer: %v", err)
	}
	if tr.ID == "" || tr.CreatedAt.IsZero() {
		t.Fatalf("expected ID and CreatedAt to be assigned, got %+v", tr.User)
	}
	if tr.Role != domain.RoleTrainer {
		t.Fatalf("expected trainer role, got %q", tr.Role)
	}

	cl := newClient("cli1")
	if err := store.Users.CreateClient(ctx, cl); err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	if cl.Role != domain.RoleClient {
		t.Fatalf("expected client role, got %q", cl.Role)
	}
}

func TestUsernameUniqueAcrossKinds(t *testing.T) {
	store := NewDB().Store()
	ctx := context.Background()

	if err := store.Users.CreateTrainer(ctx, newTrainer("shared")); err != nil {
		t.Fatalf("CreateTrainer: %v", err)
	}
	err := store.Users.CreateClient(ctx, newClient("shared"))
	if !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
	clients, _ := store.Users.ListClients(ctx)
	if len(clients) != 0 {
		t.Fatalf("expected no clients after failed insert, got %d", len(clients))
	}
}

func TestGetByUsername(t *testing.T) {
	store := NewDB().Store()
	ctx := context.Background()

	cl := newClient("ana")
	_ = store.Users.CreateClient(ctx, cl)

	u, err := store.Users.GetByUsername(ctx, "ana")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if u.ID != cl.ID || !u.IsClient() || u.IsTrainer() {
		t.Fatalf("unexpected user: %+v", u)
	}
	if _, err := store.Users.GetByUsername(ctx, "nobody"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReadsReturnCopies(t *testing.T) {
	store := NewDB().Store()
	ctx := context.Background()

	tr := newTrainer("ent1")
	_ = store.Users.CreateTrainer(ctx, tr)
	tr.ClientIDs = append(tr.ClientIDs, "mutated-after-create")

	got, _ := store.Users.GetTrainerByID(ctx, tr.ID)
	if len(got.ClientIDs) != 0 {
		t.Fatalf("caller mutation leaked into store: %v", got.ClientIDs)
	}
	got.ClientIDs = append(got.ClientIDs, "mutated-after-read")

	again, _ := store.Users.GetTrainerByID(ctx, tr.ID)
	if len(again.ClientIDs) != 0 {
		t.Fatalf("read copy mutation leaked into store: %v", again.ClientIDs)
	}
}

func TestUpdateKeepsIdentity(t *testing.T) {
	store := NewDB().Store()
	ctx := context.Background()

	cl := newClient("ana")
	_ = store.Users.CreateClient(ctx, cl)

	changed := *cl
	changed.Username = "hijacked"
	trainerID := "t-1"
	changed.TrainerID = &trainerID
	if err := store.Users.UpdateClient(ctx, &changed); err != nil {
		t.Fatalf("UpdateClient: %v", err)
	}

	got, _ := store.Users.GetClientByID(ctx, cl.ID)
	if got.Username != "ana" {
		t.Fatalf("username must not change on update, got %q", got.Username)
	}
	if !got.HasTrainer("t-1") {
		t.Fatalf("expected trainer reference to be updated")
	}

	missing := newClient("ghost")
	missing.ID = "does-not-exist"
	if err := store.Users.UpdateClient(ctx, missing); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListKeepsInsertionOrder(t *testing.T) {
	store := NewDB().Store()
	ctx := context.Background()

	for _, name := range []string{"c", "a", "b"} {
		_ = store.Plans.Create(ctx, &domain.Plan{ClientID: "client-" + name, Observations: name})
	}
	plans, _ := store.Plans.List(ctx)
	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}
	for i, want := range []string{"c", "a", "b"} {
		if plans[i].Observations != want {
			t.Fatalf("plan %d: expected %q, got %q", i, want, plans[i].Observations)
		}
	}
}

func TestSnapshotRestore(t *testing.T) {
	ctx := context.Background()
	src := NewDB()
	store := src.Store()

	tr := newTrainer("ent1")
	cl := newClient("cli1")
	_ = store.Users.CreateTrainer(ctx, tr)
	_ = store.Users.CreateClient(ctx, cl)
	routine := &domain.Routine{ClientID: cl.ID, Week: domain.WeeklySchedule{"Lunes": {{Name: "Sentadillas", Sets: 4, Reps: "6-8"}}}}
	_ = store.Routines.Create(ctx, routine)
	_ = store.Progress.Create(ctx, &domain.ProgressRecord{ClientID: cl.ID, Weight: 70})

	dst := NewDB()
	if err := dst.Restore(src.Snapshot()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	restored := dst.Store()

	u, err := restored.Users.GetByUsername(ctx, "cli1")
	if err != nil || u.ID != cl.ID {
		t.Fatalf("expected restored client in user index, got %v / %v", u, err)
	}
	r, err := restored.Routines.GetByID(ctx, routine.ID)
	if err != nil {
		t.Fatalf("GetByID routine: %v", err)
	}
	if got := r.Week["Lunes"][0].Name; got != "Sentadillas" {
		t.Fatalf("unexpected restored routine entry %q", got)
	}
	if err := restored.Users.CreateTrainer(ctx, newTrainer("ent1")); !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Fatalf("restored usernames must stay unique, got %v", err)
	}

	if err := dst.Restore(src.Snapshot()); err == nil {
		t.Fatalf("expected restore into non-empty store to fail")
	}
}
