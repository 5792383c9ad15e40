package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"evacuation/internal/domain/entity"
	domainerrors "evacuation/internal/domain/errors"
	"evacuation/internal/domain/repository"
	"evacuation/internal/usecase"

	"github.com/pkg/errors"
)

// presenceService implements the PresenceUsecase interface.
type presenceService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewPresenceService is the constructor for presenceService.
func NewPresenceService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.PresenceUsecase {
	return &presenceService{
		txManager: txManager,
		logger:    logger,
	}
}

// ResolveAffected computes the travelers present inside scope at the given instant.
func (srv *presenceService) ResolveAffected(ctx context.Context, scope entity.Scope, at time.Time) (*entity.AffectedSet, error) {
	var affected *entity.AffectedSet

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resolved, err := resolveAffected(ctx, repoFactory, scope, at)
		if err != nil {
			return err
		}
		affected = resolved

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve affected travelers")
	}

	srv.logger.Debug("Resolved affected travelers",
		slog.String("label", affected.Label),
		slog.Int("count", affected.Count()),
	)

	return affected, nil
}

// resolveAffected runs presence resolution on the repositories of an open transaction.
// A zero at means now.
func resolveAffected(ctx context.Context, repoFactory repository.RepositoryFactory, scope entity.Scope, at time.Time) (*entity.AffectedSet, error) {
	if !scope.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidScope, "scope must name exactly one country or city")
	}
	if at.IsZero() {
		at = time.Now()
	}

	label, err := scopeLabel(ctx, repoFactory.GeographyRepo(), scope)
	if err != nil {
		return nil, err
	}

	matches, err := repoFactory.ItineraryRepo().FindPresence(ctx, scope, at.UTC())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find present travelers")
	}

	pesels := make([]string, 0, len(matches))
	tripIDs := make([]uint, 0, len(matches))
	for _, match := range matches {
		pesels = append(pesels, match.TravelerPesel)
		tripIDs = append(tripIDs, match.TripID)
	}
	slices.Sort(pesels)
	slices.Sort(tripIDs)

	affected := &entity.AffectedSet{
		TravelerPesels: slices.Compact(pesels),
		TripIDs:        slices.Compact(tripIDs),
		Label:          label,
	}

	return affected, nil
}

// scopeLabel verifies the scope exists and returns the name used in alert messages.
func scopeLabel(ctx context.Context, geoRepo repository.GeographyRepository, scope entity.Scope) (string, error) {
	if scope.IsCity() {
		city, err := geoRepo.FindCityByID(ctx, *scope.CityID)
		if err != nil {
			if errors.Is(err, repository.ErrCityNotFound) {
				return "", errors.Wrapf(domainerrors.ErrScopeNotFound, "city %d not found", *scope.CityID)
			}

			return "", errors.Wrap(err, "failed to find city")
		}

		return city.Name, nil
	}

	country, err := geoRepo.FindCountryByID(ctx, *scope.CountryID)
	if err != nil {
		if errors.Is(err, repository.ErrCountryNotFound) {
			return "", errors.Wrapf(domainerrors.ErrScopeNotFound, "country %d not found", *scope.CountryID)
		}

		return "", errors.Wrap(err, "failed to find country")
	}

	return country.Name, nil
}
