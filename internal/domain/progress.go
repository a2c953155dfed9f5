package domain

import (
	"time"
)

// ProgressRecord is one dated physical check-in. Append-only.
type ProgressRecord struct {
	ID           string             `bson:"_id" json:"id"`
	ClientID     string             `bson:"clientId" json:"clientId"`
	RecordedAt   time.Time          `bson:"recordedAt" json:"recordedAt"`
	Weight       float64            `bson:"weight" json:"weight"`                                 // kg, 0 when not measured
	Measurements map[string]float64 `bson:"measurements,omitempty" json:"measurements,omitempty"` // e.g. "cintura" -> 82.5 (cm)
	Repetitions  map[string]int     `bson:"repetitions,omitempty" json:"repetitions,omitempty"`   // exercise -> reps achieved
	Observations string             `bson:"observations,omitempty" json:"observations,omitempty"`
}

// Clone returns a deep copy of the record.
func (p ProgressRecord) Clone() ProgressRecord {
	if p.Measurements != nil {
		m := make(map[string]float64, len(p.Measurements))
		for k, v := range p.Measurements {
			m[k] = v
		}
		p.Measurements = m
	}
	if p.Repetitions != nil {
		r := make(map[string]int, len(p.Repetitions))
		for k, v := range p.Repetitions {
			r[k] = v
		}
		p.Repetitions = r
	}
	return p
}
