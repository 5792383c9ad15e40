package repository

import (
	"context"
	"time"

	"evacuation/internal/domain/entity"
)

// PresenceMatch is one traveler found inside a scope, with the trip that put them there.
type PresenceMatch struct {
	TravelerPesel string
	TripID        uint
}

// ItineraryRepository defines the interface for trips and their stages.
type ItineraryRepository interface {
	// CreateTrip persists a trip together with its stages.
	CreateTrip(ctx context.Context, trip *entity.Trip) error

	// FindPresence returns every (traveler, trip) pair with a stage covering at
	// in a location inside scope. The interval check is inclusive on both ends.
	FindPresence(ctx context.Context, scope entity.Scope, at time.Time) ([]PresenceMatch, error)

	// LinkTripsToEvacuation sets evacuation_id on the given trips where it is still unset.
	LinkTripsToEvacuation(ctx context.Context, tripIDs []uint, evacuationID uint) (int64, error)
}
