package usecase

import (
	"context"
	"time"

	"evacuation/internal/domain/entity"
)

// ItineraryUsecase registers travelers and their travel plans.
type ItineraryUsecase interface {
	// RegisterTraveler creates a traveler with default preferences (push only).
	RegisterTraveler(ctx context.Context, input *RegisterTravelerInput) (*entity.Traveler, error)

	// RegisterTrip creates a trip with its stages, creating unknown locations on the way.
	RegisterTrip(ctx context.Context, input *RegisterTripInput) (*entity.Trip, error)
}

// RegisterTravelerInput defines the data required to register a traveler.
type RegisterTravelerInput struct {
	Pesel       string `json:"pesel" validate:"required,pesel"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number"`
	Login       string `json:"login"`
}

// RegisterTripInput defines a trip and its stages.
type RegisterTripInput struct {
	TravelerPesel string            `json:"traveler_pesel" validate:"required"`
	Status        entity.TripStatus `json:"status"`
	Stages        []StageInput      `json:"stages" validate:"dive"`
}

// StageInput is one stage of a trip, addressed by city and free-form address.
type StageInput struct {
	CityID    uint      `json:"city_id" validate:"required"`
	Address   string    `json:"address" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}
