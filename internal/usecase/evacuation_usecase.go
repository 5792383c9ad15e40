// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"evacuation/internal/domain/entity"
)

// EvacuationUsecase defines the lifecycle and dispatch operations of evacuations.
type EvacuationUsecase interface {
	// Create persists a planned evacuation after validating its fields and scope.
	Create(ctx context.Context, input *CreateEvacuationInput) (*entity.EvacuationView, error)

	// Update applies a partial update. Absent fields are untouched, null fields are cleared.
	Update(ctx context.Context, id uint, input *UpdateEvacuationInput) (*entity.EvacuationView, error)

	// Delete hard-deletes an evacuation and reports whether it existed.
	Delete(ctx context.Context, id uint) (bool, error)

	// Get returns one evacuation with resolved scope names.
	Get(ctx context.Context, id uint) (*entity.EvacuationView, error)

	// List returns evacuations, optionally filtered by status.
	List(ctx context.Context, status *entity.EvacuationStatus) ([]*entity.EvacuationView, error)

	// Declare creates an evacuation and dispatches alerts for it in one transaction.
	Declare(ctx context.Context, input *DeclareEvacuationInput) (*entity.DispatchResult, error)

	// Redispatch re-evaluates presence for an open evacuation and alerts newly present travelers only.
	Redispatch(ctx context.Context, id uint, at *time.Time) (*entity.DispatchResult, error)

	// ListRecipients returns the notified travelers of an evacuation with their channel flags.
	ListRecipients(ctx context.Context, id uint) ([]*entity.Recipient, error)
}

// PresenceUsecase resolves which travelers are inside a scope at an instant.
type PresenceUsecase interface {
	ResolveAffected(ctx context.Context, scope entity.Scope, at time.Time) (*entity.AffectedSet, error)
}

// --- Input DTOs ---

// CreateEvacuationInput defines the data required to create an evacuation.
type CreateEvacuationInput struct {
	ActionName       string     `json:"action_name" validate:"required"`
	EventDescription string     `json:"event_description" validate:"required"`
	StartDate        *time.Time `json:"start_date" validate:"required"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	CountryID        *uint      `json:"country_id,omitempty"`
	CityID           *uint      `json:"city_id,omitempty"`
}

// Scope returns the geographic scope named by the input.
func (in *CreateEvacuationInput) Scope() entity.Scope {
	return entity.Scope{CountryID: in.CountryID, CityID: in.CityID}
}

// UpdateEvacuationInput defines a partial update of an evacuation.
type UpdateEvacuationInput struct {
	ActionName       Patch[string]                  `json:"action_name"`
	EventDescription Patch[string]                  `json:"event_description"`
	StartDate        Patch[time.Time]               `json:"start_date"`
	EndDate          Patch[time.Time]               `json:"end_date"`
	Status           Patch[entity.EvacuationStatus] `json:"status"`
	CountryID        Patch[uint]                    `json:"country_id"`
	CityID           Patch[uint]                    `json:"city_id"`
}

// DeclareEvacuationInput defines an operator's emergency declaration.
// StartDate defaults to now, EffectiveAt (the presence instant) defaults to now.
type DeclareEvacuationInput struct {
	ActionName       string     `json:"action_name"`
	EventDescription string     `json:"event_description" validate:"required"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	CountryID        *uint      `json:"country_id,omitempty"`
	CityID           *uint      `json:"city_id,omitempty"`
	EffectiveAt      *time.Time `json:"effective_at,omitempty"`
}

// Scope returns the geographic scope named by the input.
func (in *DeclareEvacuationInput) Scope() entity.Scope {
	return entity.Scope{CountryID: in.CountryID, CityID: in.CityID}
}
