package repository

import (
	"context"
	"errors"

	"evacuation/internal/domain/entity"
)

var (
	// ErrTravelerNotFound is returned when a traveler is not found.
	ErrTravelerNotFound = errors.New("traveler not found")
	// ErrTravelerAlreadyExists is returned when a traveler with the same PESEL exists.
	ErrTravelerAlreadyExists = errors.New("traveler already exists")
)

// TravelerRepository defines the interface for traveler persistence, including channel preferences.
type TravelerRepository interface {
	// Create persists a new traveler with its preferences.
	Create(ctx context.Context, traveler *entity.Traveler) error

	// FindByPesel retrieves a traveler by PESEL.
	FindByPesel(ctx context.Context, pesel string) (*entity.Traveler, error)

	// UpdatePreferences overwrites all three channel flags of a traveler.
	UpdatePreferences(ctx context.Context, pesel string, prefs entity.Preferences) error
}
