package repository

import (
	"context"
	"errors"

	"evacuation/internal/domain/entity"
)

// ErrEvacuationNotFound is returned when an evacuation is not found.
var ErrEvacuationNotFound = errors.New("evacuation not found")

// EvacuationRepository defines the interface for evacuation persistence.
type EvacuationRepository interface {
	// Create persists a new evacuation and fills its ID and timestamps.
	Create(ctx context.Context, evacuation *entity.Evacuation) error

	// FindByID retrieves an evacuation by ID.
	FindByID(ctx context.Context, id uint) (*entity.Evacuation, error)

	// FindViewByID retrieves an evacuation with its scope names resolved.
	FindViewByID(ctx context.Context, id uint) (*entity.EvacuationView, error)

	// List retrieves evacuation views, newest first, optionally filtered by status.
	List(ctx context.Context, status *entity.EvacuationStatus) ([]*entity.EvacuationView, error)

	// Update saves all mutable fields of an evacuation.
	Update(ctx context.Context, evacuation *entity.Evacuation) error

	// Delete hard-deletes an evacuation and reports whether a row was removed.
	Delete(ctx context.Context, id uint) (bool, error)
}
