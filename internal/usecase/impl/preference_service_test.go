package impl

import (
	"context"
	"testing"

	"evacuation/internal/domain/entity"
	domainerrors "evacuation/internal/domain/errors"
	"evacuation/internal/domain/repository"
	"evacuation/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool {
	return &v
}

func TestPreferenceService_GetPreferences(t *testing.T) {
	fx := newTxFixture(t)
	srv := NewPreferenceService(fx.txManager, discardLogger())

	ctx := context.Background()
	fx.travelerRepo.EXPECT().
		FindByPesel(ctx, "90010112349").
		Return(&entity.Traveler{Pesel: "90010112349", Preferences: entity.Preferences{Push: true}}, nil)

	prefs, err := srv.GetPreferences(ctx, "90010112349")
	require.NoError(t, err)
	assert.Equal(t, &entity.Preferences{Push: true}, prefs)
}

func TestPreferenceService_SetPreferences_DefaultFill(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.SetPreferencesInput
		want  entity.Preferences
	}{
		{
			name:  "all flags",
			input: &usecase.SetPreferencesInput{SMS: boolPtr(true), Email: boolPtr(true), Push: boolPtr(false)},
			want:  entity.Preferences{SMS: true, Email: true, Push: false},
		},
		{
			name:  "omitted flags become false",
			input: &usecase.SetPreferencesInput{SMS: boolPtr(true)},
			want:  entity.Preferences{SMS: true},
		},
		{
			name:  "empty body clears everything",
			input: &usecase.SetPreferencesInput{},
			want:  entity.Preferences{},
		},
		{
			name:  "nil input",
			input: nil,
			want:  entity.Preferences{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newTxFixture(t)
			srv := NewPreferenceService(fx.txManager, discardLogger())
			ctx := context.Background()

			fx.travelerRepo.EXPECT().UpdatePreferences(ctx, "90010112349", tt.want).Return(nil)

			prefs, err := srv.SetPreferences(ctx, "90010112349", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *prefs)
		})
	}
}

func TestPreferenceService_UnknownTraveler(t *testing.T) {
	fx := newTxFixture(t)
	srv := NewPreferenceService(fx.txManager, discardLogger())

	ctx := context.Background()
	fx.travelerRepo.EXPECT().FindByPesel(ctx, "02210245675").Return(nil, repository.ErrTravelerNotFound)
	fx.travelerRepo.EXPECT().
		UpdatePreferences(ctx, "02210245675", entity.Preferences{Push: true}).
		Return(repository.ErrTravelerNotFound)

	_, err := srv.GetPreferences(ctx, "02210245675")
	assert.ErrorIs(t, err, domainerrors.ErrTravelerNotFound)

	_, err = srv.SetPreferences(ctx, "02210245675", &usecase.SetPreferencesInput{Push: boolPtr(true)})
	assert.ErrorIs(t, err, domainerrors.ErrTravelerNotFound)
}
