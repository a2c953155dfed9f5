package domain

import (
	"time"
)

// Plan is a daily meal plan for a client. Immutable once created.
type Plan struct {
	ID            string            `bson:"_id" json:"id"`
	ClientID      string            `bson:"clientId" json:"clientId"`
	TrainerID     string            `bson:"trainerId" json:"trainerId"` // Set only for personalized plans
	MealsPerDay   int               `bson:"mealsPerDay" json:"mealsPerDay"`
	DailyCalories int               `bson:"dailyCalories" json:"dailyCalories"`
	Meals         map[string]string `bson:"meals" json:"meals"` // e.g. "Desayuno" -> "Avena, 3 huevos..."
	Observations  string            `bson:"observations,omitempty" json:"observations,omitempty"`
	Profile       GoalProfile       `bson:"profile,omitempty" json:"profile,omitempty"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
}

// Clone returns a deep copy of the plan.
func (p Plan) Clone() Plan {
	p.Meals = cloneStringMap(p.Meals)
	return p
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
