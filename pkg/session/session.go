package session

import (
	"time"

	"github.com/google/uuid"
)

// Slot identifies the training slot within a day.
type Slot string

const (
	SlotAM Slot = "AM"
	SlotPM Slot = "PM"
)

func (s Slot) Valid() bool {
	return s == SlotAM || s == SlotPM
}

// TrainingSession is one logged training unit. UnitLoad is stored as given
// at logging time and is never recomputed by downstream aggregation.
type TrainingSession struct {
	Id           uuid.UUID
	AthleteId    uuid.UUID
	Date         time.Time // calendar day, midnight UTC
	Slot         Slot
	TrainingType string
	RPE          int // perceived exertion, 1-10
	DurationMin  int
	UnitLoad     float64
}
