package domain

import (
	"time"
)

// Weekdays lists the keys of a weekly routine in display order.
var Weekdays = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

// Intensity labels used by generated and personalized routines.
const (
	IntensityHigh       = "Alta"
	IntensityLowMedium  = "Baja-Media"
	IntensityCustomized = "Personalizada"
)

// ExerciseEntry is one line of a training day.
type ExerciseEntry struct {
	Name string `bson:"name" json:"name"`
	Sets int    `bson:"sets" json:"sets"`
	Reps string `bson:"reps" json:"reps"` // Repetitions or a duration, e.g. "6-8" or "30 min"
	Note string `bson:"note,omitempty" json:"note,omitempty"`
}

// WeeklySchedule maps a weekday name to the ordered exercises of that day.
type WeeklySchedule map[string][]ExerciseEntry

// Clone returns a deep copy of the schedule.
func (w WeeklySchedule) Clone() WeeklySchedule {
	if w == nil {
		return nil
	}
	out := make(WeeklySchedule, len(w))
	for day, entries := range w {
		out[day] = append([]ExerciseEntry(nil), entries...)
	}
	return out
}

// Routine is a weekly exercise schedule for a client. Immutable once created.
type Routine struct {
	ID        string         `bson:"_id" json:"id"`
	ClientID  string         `bson:"clientId" json:"clientId"`
	TrainerID string         `bson:"trainerId" json:"trainerId"` // Empty when self-generated
	Week      WeeklySchedule `bson:"week" json:"week"`
	Intensity string         `bson:"intensity" json:"intensity"`
	Profile   GoalProfile    `bson:"profile,omitempty" json:"profile,omitempty"` // Empty for personalized routines
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}

// Clone returns a deep copy of the routine.
func (r Routine) Clone() Routine {
	r.Week = r.Week.Clone()
	return r
}
