package usecase

import (
	"context"

	"evacuation/internal/domain/entity"
)

// PreferenceUsecase reads and writes per-traveler channel opt-in flags.
type PreferenceUsecase interface {
	GetPreferences(ctx context.Context, pesel string) (*entity.Preferences, error)

	// SetPreferences overwrites all flags. Omitted flags are written as false.
	SetPreferences(ctx context.Context, pesel string, input *SetPreferencesInput) (*entity.Preferences, error)
}

// SetPreferencesInput carries optional channel flags.
type SetPreferencesInput struct {
	SMS   *bool `json:"sms,omitempty"`
	Email *bool `json:"email,omitempty"`
	Push  *bool `json:"push,omitempty"`
}
