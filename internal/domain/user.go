package domain

import (
	"time"
)

// Role type to distinguish between user kinds
type Role string

// Define constants for roles
const (
	RoleTrainer Role = "trainer"
	RoleClient  Role = "client"
)

// User is the identity shared by trainers and clients.
// Trainer and Client embed it; callers dispatch on Role, never on the Go type.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	Username     string    `bson:"username" json:"username"` // Unique across trainers and clients
	PasswordHash string    `bson:"passwordHash" json:"-"`    // Never expose this via JSON
	Role         Role      `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

// Trainer owns zero or more clients.
type Trainer struct {
	User            `bson:",inline"`
	Name            string   `bson:"name" json:"name"`
	ExperienceLevel string   `bson:"experienceLevel" json:"experienceLevel"`
	ClientIDs       []string `bson:"clientIds" json:"clientIds"` // Mirror of Client.TrainerID
}

// HasClient reports whether clientID is in the trainer's client set.
func (t *Trainer) HasClient(clientID string) bool {
	for _, id := range t.ClientIDs {
		if id == clientID {
			return true
		}
	}
	return false
}

// Client is a trainee with a stated goal and an append-only history of generated content.
type Client struct {
	User         `bson:",inline"`
	Name         string  `bson:"name" json:"name"`
	Goal         string  `bson:"goal" json:"goal"`
	InitialState string  `bson:"initialState" json:"initialState"`
	TrainerID    *string `bson:"trainerId,omitempty" json:"trainerId,omitempty"` // At most one trainer at a time

	RoutineIDs  []string `bson:"routineIds" json:"routineIds"`
	PlanIDs     []string `bson:"planIds" json:"planIds"`
	ProgressIDs []string `bson:"progressIds" json:"progressIds"`
}

// HasTrainer reports whether the client currently points at trainerID.
func (c *Client) HasTrainer(trainerID string) bool {
	return c.TrainerID != nil && *c.TrainerID == trainerID
}

// Clone returns a deep copy so stored state cannot be mutated through a returned value.
func (t Trainer) Clone() Trainer {
	t.ClientIDs = append([]string(nil), t.ClientIDs...)
	return t
}

// Clone returns a deep copy of the client.
func (c Client) Clone() Client {
	if c.TrainerID != nil {
		id := *c.TrainerID
		c.TrainerID = &id
	}
	c.RoutineIDs = append([]string(nil), c.RoutineIDs...)
	c.PlanIDs = append([]string(nil), c.PlanIDs...)
	c.ProgressIDs = append([]string(nil), c.ProgressIDs...)
	return c
}
