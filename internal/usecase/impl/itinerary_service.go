package impl

import (
	"context"
	"log/slog"
	"strings"

	"evacuation/internal/domain/entity"
	domainerrors "evacuation/internal/domain/errors"
	"evacuation/internal/domain/repository"
	"evacuation/internal/usecase"

	"github.com/pkg/errors"
)

// itineraryService implements the ItineraryUsecase interface.
type itineraryService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewItineraryService is the constructor for itineraryService.
func NewItineraryService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ItineraryUsecase {
	return &itineraryService{
		txManager: txManager,
		logger:    logger,
	}
}

// RegisterTraveler creates a traveler. New travelers only opt in to push.
func (srv *itineraryService) RegisterTraveler(ctx context.Context, input *usecase.RegisterTravelerInput) (*entity.Traveler, error) {
	if strings.TrimSpace(input.Pesel) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "pesel is required")
	}

	traveler := &entity.Traveler{
		Pesel:       input.Pesel,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Login:       input.Login,
		Preferences: entity.DefaultPreferences(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.TravelerRepo().Create(ctx, traveler); err != nil {
			if errors.Is(err, repository.ErrTravelerAlreadyExists) {
				return errors.Wrap(domainerrors.ErrTravelerAlreadyExists, "traveler already registered")
			}

			return errors.Wrap(err, "failed to create traveler")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register traveler")
	}

	srv.logger.Info("Traveler registered", slog.String("traveler_pesel", traveler.Pesel))

	return traveler, nil
}

// RegisterTrip creates a trip and its stages. Stage addresses unknown in their
// city become new locations.
func (srv *itineraryService) RegisterTrip(ctx context.Context, input *usecase.RegisterTripInput) (*entity.Trip, error) {
	status := input.Status
	if status == "" {
		status = entity.TripStatusPlanned
	}
	if !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown trip status %q", status)
	}

	trip := &entity.Trip{
		Status:        status,
		TravelerPesel: input.TravelerPesel,
		Stages:        make([]*entity.Stage, 0, len(input.Stages)),
	}
	for i, stageIn := range input.Stages {
		stage := &entity.Stage{
			StartDate: stageIn.StartDate.UTC(),
			EndDate:   stageIn.EndDate.UTC(),
		}
		if !stage.IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "stage %d ends before it starts", i)
		}
		if strings.TrimSpace(stageIn.Address) == "" {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "stage %d has no address", i)
		}
		trip.Stages = append(trip.Stages, stage)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.TravelerRepo().FindByPesel(ctx, input.TravelerPesel); err != nil {
			if errors.Is(err, repository.ErrTravelerNotFound) {
				return errors.Wrap(domainerrors.ErrTravelerNotFound, "traveler not found")
			}

			return errors.Wrap(err, "failed to find traveler")
		}

		geoRepo := repoFactory.GeographyRepo()
		for i, stageIn := range input.Stages {
			if _, err := geoRepo.FindCityByID(ctx, stageIn.CityID); err != nil {
				if errors.Is(err, repository.ErrCityNotFound) {
					return errors.Wrapf(domainerrors.ErrScopeNotFound, "city %d not found", stageIn.CityID)
				}

				return errors.Wrap(err, "failed to find city")
			}

			location, err := geoRepo.FindOrCreateLocation(ctx, stageIn.CityID, strings.TrimSpace(stageIn.Address))
			if err != nil {
				return errors.Wrap(err, "failed to resolve stage location")
			}
			trip.Stages[i].LocationID = location.ID
		}

		if err := repoFactory.ItineraryRepo().CreateTrip(ctx, trip); err != nil {
			return errors.Wrap(err, "failed to create trip")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register trip")
	}

	srv.logger.Info("Trip registered",
		slog.Uint64("trip_id", uint64(trip.ID)),
		slog.String("traveler_pesel", trip.TravelerPesel),
		slog.Int("stages", len(trip.Stages)),
	)

	return trip, nil
}
