// Package memory is the process-lifetime entity store. All repositories built from one
// DB share its maps, and every read hands out a copy.
package memory

import (
	"alcyxob/gym-coach/internal/domain"
	"alcyxob/gym-coach/internal/repository"
	"fmt"
	"sync"
)

// DB holds every entity by identity plus a unified index over all users.
type DB struct {
	mu sync.RWMutex

	users    map[string]domain.User // Unified index over trainers and clients
	trainers map[string]*domain.Trainer
	clients  map[string]*domain.Client
	routines map[string]*domain.Routine
	plans    map[string]*domain.Plan
	progress map[string]*domain.ProgressRecord

	// Insertion order per kind, for stable enumeration.
	userOrder     []string
	trainerOrder  []string
	clientOrder   []string
	routineOrder  []string
	planOrder     []string
	progressOrder []string
}

// NewDB creates an empty store.
func NewDB() *DB {
	return &DB{
		users:    make(map[string]domain.User),
		trainers: make(map[string]*domain.Trainer),
		clients:  make(map[string]*domain.Client),
		routines: make(map[string]*domain.Routine),
		plans:    make(map[string]*domain.Plan),
		progress: make(map[string]*domain.ProgressRecord),
	}
}

// Store returns the repository views over this DB.
func (db *DB) Store() *repository.Store {
	return &repository.Store{
		Users:    &userRepository{db: db},
		Routines: &routineRepository{db: db},
		Plans:    &planRepository{db: db},
		Progress: &progressRepository{db: db},
	}
}

// Snapshot copies the whole state out of the store.
func (db *DB) Snapshot() *repository.Snapshot {
	db.mu.RLock()
	defer db.mu.RUnlock()

	snap := &repository.Snapshot{}
	for _, id := range db.trainerOrder {
		snap.Trainers = append(snap.Trainers, db.trainers[id].Clone())
	}
	for _, id := range db.clientOrder {
		snap.Clients = append(snap.Clients, db.clients[id].Clone())
	}
	for _, id := range db.routineOrder {
		snap.Routines = append(snap.Routines, db.routines[id].Clone())
	}
	for _, id := range db.planOrder {
		snap.Plans = append(snap.Plans, db.plans[id].Clone())
	}
	for _, id := range db.progressOrder {
		snap.Progress = append(snap.Progress, db.progress[id].Clone())
	}
	return snap
}

// Restore loads a snapshot into an empty store. Usernames must be unique across the
// snapshot; on error the store is left untouched.
func (db *DB) Restore(snap *repository.Snapshot) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if len(db.users) > 0 || len(db.routines) > 0 || len(db.plans) > 0 || len(db.progress) > 0 {
		return fmt.Errorf("restore snapshot: store is not empty")
	}

	seen := make(map[string]bool)
	for _, t := range snap.Trainers {
		if seen[t.Username] {
			return fmt.Errorf("restore snapshot: username %q: %w", t.Username, repository.ErrDuplicateUsername)
		}
		seen[t.Username] = true
	}
	for _, c := range snap.Clients {
		if seen[c.Username] {
			return fmt.Errorf("restore snapshot: username %q: %w", c.Username, repository.ErrDuplicateUsername)
		}
		seen[c.Username] = true
	}

	for _, t := range snap.Trainers {
		t := t.Clone()
		db.putTrainer(&t)
	}
	for _, c := range snap.Clients {
		c := c.Clone()
		db.putClient(&c)
	}
	for _, r := range snap.Routines {
		r := r.Clone()
		db.routines[r.ID] = &r
		db.routineOrder = append(db.routineOrder, r.ID)
	}
	for _, p := range snap.Plans {
		p := p.Clone()
		db.plans[p.ID] = &p
		db.planOrder = append(db.planOrder, p.ID)
	}
	for _, p := range snap.Progress {
		p := p.Clone()
		db.progress[p.ID] = &p
		db.progressOrder = append(db.progressOrder, p.ID)
	}
	return nil
}

// usernameTaken scans the unified user index. Caller holds the lock.
func (db *DB) usernameTaken(username string) bool {
	for _, u := range db.users {
		if u.Username == username {
			return true
		}
	}
	return false
}

func (db *DB) putTrainer(t *domain.Trainer) {
	db.trainers[t.ID] = t
	db.trainerOrder = append(db.trainerOrder, t.ID)
	db.users[t.ID] = t.User
	db.userOrder = append(db.userOrder, t.ID)
}

func (db *DB) putClient(c *domain.Client) {
	db.clients[c.ID] = c
	db.clientOrder = append(db.clientOrder, c.ID)
	db.users[c.ID] = c.User
	db.userOrder = append(db.userOrder, c.ID)
}
