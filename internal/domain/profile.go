package domain

// GoalProfile is the template family selected from a client's stated goal.
type GoalProfile string

const (
	ProfileStrength   GoalProfile = "strength"
	ProfileWeightLoss GoalProfile = "weight_loss"
	ProfileHealth     GoalProfile = "health"
)

// Valid reports whether p is one of the known profiles.
func (p GoalProfile) Valid() bool {
	switch p {
	case ProfileStrength, ProfileWeightLoss, ProfileHealth:
		return true
	}
	return false
}
