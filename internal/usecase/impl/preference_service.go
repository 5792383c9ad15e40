package impl

import (
	"context"
	"log/slog"

	"evacuation/internal/domain/entity"
	domainerrors "evacuation/internal/domain/errors"
	"evacuation/internal/domain/repository"
	"evacuation/internal/usecase"

	"github.com/pkg/errors"
)

// preferenceService implements the PreferenceUsecase interface.
type preferenceService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewPreferenceService is the constructor for preferenceService.
func NewPreferenceService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.PreferenceUsecase {
	return &preferenceService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetPreferences returns the channel flags of a traveler.
func (srv *preferenceService) GetPreferences(ctx context.Context, pesel string) (*entity.Preferences, error) {
	var prefs *entity.Preferences

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		traveler, err := repoFactory.TravelerRepo().FindByPesel(ctx, pesel)
		if err != nil {
			if errors.Is(err, repository.ErrTravelerNotFound) {
				return errors.Wrap(domainerrors.ErrTravelerNotFound, "traveler not found")
			}

			return errors.Wrap(err, "failed to find traveler")
		}
		prefs = &traveler.Preferences

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get preferences")
	}

	return prefs, nil
}

// SetPreferences overwrites all three flags. A flag missing from input is stored as false.
func (srv *preferenceService) SetPreferences(ctx context.Context, pesel string, input *usecase.SetPreferencesInput) (*entity.Preferences, error) {
	prefs := entity.Preferences{}
	if input != nil {
		prefs = entity.Preferences{
			SMS:   flagOrFalse(input.SMS),
			Email: flagOrFalse(input.Email),
			Push:  flagOrFalse(input.Push),
		}
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.TravelerRepo().UpdatePreferences(ctx, pesel, prefs); err != nil {
			if errors.Is(err, repository.ErrTravelerNotFound) {
				return errors.Wrap(domainerrors.ErrTravelerNotFound, "traveler not found")
			}

			return errors.Wrap(err, "failed to update preferences")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set preferences")
	}

	srv.logger.Info("Traveler preferences updated",
		slog.String("traveler_pesel", pesel),
		slog.Bool("sms", prefs.SMS),
		slog.Bool("email", prefs.Email),
		slog.Bool("push", prefs.Push),
	)

	return &prefs, nil
}

func flagOrFalse(flag *bool) bool {
	return flag != nil && *flag
}
