// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"
)

// EvacuationStatus is the lifecycle state of an Evacuation.
type EvacuationStatus string

const (
	EvacuationStatusPlanned    EvacuationStatus = "planned"
	EvacuationStatusInProgress EvacuationStatus = "in_progress"
	EvacuationStatusCompleted  EvacuationStatus = "completed"
	EvacuationStatusCanceled   EvacuationStatus = "canceled"
)

// evacuationTransitions lists the statuses reachable from each status.
var evacuationTransitions = map[EvacuationStatus][]EvacuationStatus{
	EvacuationStatusPlanned:    {EvacuationStatusInProgress, EvacuationStatusCanceled},
	EvacuationStatusInProgress: {EvacuationStatusCompleted, EvacuationStatusCanceled},
	EvacuationStatusCompleted:  nil,
	EvacuationStatusCanceled:   nil,
}

// String returns the string representation of the status.
func (s EvacuationStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the four known values.
func (s EvacuationStatus) IsValid() bool {
	_, ok := evacuationTransitions[s]

	return ok
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Staying in the same status is always allowed.
func (s EvacuationStatus) CanTransitionTo(next EvacuationStatus) bool {
	if s == next {
		return next.IsValid()
	}

	return slices.Contains(evacuationTransitions[s], next)
}

// IsTerminal reports whether no further alerts may be dispatched.
func (s EvacuationStatus) IsTerminal() bool {
	return s == EvacuationStatusCompleted || s == EvacuationStatusCanceled
}

// Scope is the geographic filter of an Evacuation: one City or a whole Country.
type Scope struct {
	CountryID *uint `json:"country_id"`
	CityID    *uint `json:"city_id"`
}

// CountryScope builds a whole-country scope.
func CountryScope(countryID uint) Scope {
	return Scope{CountryID: &countryID}
}

// CityScope builds a single-city scope.
func CityScope(cityID uint) Scope {
	return Scope{CityID: &cityID}
}

// IsValid reports whether exactly one of CountryID and CityID is set.
func (s Scope) IsValid() bool {
	return (s.CountryID == nil) != (s.CityID == nil)
}

// IsCity reports whether the scope targets a single city.
func (s Scope) IsCity() bool {
	return s.CityID != nil && s.CountryID == nil
}

// Evacuation is an operator-declared emergency over a Scope.
type Evacuation struct {
	ID               uint             `json:"id"`
	ActionName       string           `json:"action_name"`
	EventDescription string           `json:"event_description"`
	StartDate        time.Time        `json:"start_date"`
	EndDate          *time.Time       `json:"end_date"`
	Status           EvacuationStatus `json:"status"`
	Scope            Scope            `json:"scope"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// EvacuationView is an Evacuation with its scope resolved to names for display.
type EvacuationView struct {
	Evacuation
	CountryName *string `json:"country_name"`
	CityName    *string `json:"city_name"`
}
