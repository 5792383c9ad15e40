// Package entity contains the core business objects of the project.
package entity

import "time"

// TripStatus is the lifecycle state of a Trip. It is advanced externally.
type TripStatus string

const (
	TripStatusPlanned    TripStatus = "planned"
	TripStatusInProgress TripStatus = "in_progress"
	TripStatusCompleted  TripStatus = "completed"
	TripStatusCanceled   TripStatus = "canceled"
)

// IsValid checks if the TripStatus is a known value.
func (s TripStatus) IsValid() bool {
	switch s {
	case TripStatusPlanned, TripStatusInProgress, TripStatusCompleted, TripStatusCanceled:
		return true
	default:
		return false
	}
}

// Trip groups the stages of one journey of a traveler.
type Trip struct {
	ID            uint
	Status        TripStatus
	TravelerPesel string
	EvacuationID  *uint
	Stages        []*Stage
}

// Stage says that a traveler occupies a Location during [StartDate, EndDate].
type Stage struct {
	ID         uint
	StartDate  time.Time
	EndDate    time.Time
	TripID     uint
	LocationID uint
}

// Covers reports whether the stage interval contains at. Both ends are inclusive.
// It mirrors the start_date <= at <= end_date predicate of the presence query.
func (s *Stage) Covers(at time.Time) bool {
	return !at.Before(s.StartDate) && !at.After(s.EndDate)
}

// IsValid reports whether the interval is well-formed.
func (s *Stage) IsValid() bool {
	return !s.EndDate.Before(s.StartDate)
}
