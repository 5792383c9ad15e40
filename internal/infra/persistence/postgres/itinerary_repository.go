package postgres

import (
	"context"
	"time"

	"evacuation/internal/domain/entity"
	domainerrors "evacuation/internal/domain/errors"
	"evacuation/internal/domain/repository"
	"evacuation/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// itineraryRepository implements the repository.ItineraryRepository interface.
type itineraryRepository struct {
	db *gorm.DB
}

// NewItineraryRepository is the constructor for itineraryRepository.
func NewItineraryRepository(db *gorm.DB) repository.ItineraryRepository {
	return &itineraryRepository{
		db: db,
	}
}

// CreateTrip persists a trip together with its stages.
func (repo *itineraryRepository) CreateTrip(ctx context.Context, trip *entity.Trip) error {
	tripM := fromTripDomain(trip)

	if err := repo.db.WithContext(ctx).Create(tripM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid traveler or location reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("stage ends before it starts")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create trip")
	}

	trip.ID = tripM.ID
	trip.Status = entity.TripStatus(tripM.Status)
	for i := range trip.Stages {
		trip.Stages[i].ID = tripM.Stages[i].ID
		trip.Stages[i].TripID = tripM.ID
	}

	return nil
}

// FindPresence returns every (traveler, trip) pair with a stage covering at inside scope.
// It always reads from the primary so a fresh declaration never sees replica lag.
func (repo *itineraryRepository) FindPresence(ctx context.Context, scope entity.Scope, at time.Time) ([]repository.PresenceMatch, error) {
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Table("stages").
		Distinct("trips.traveler_pesel", "trips.id AS trip_id").
		Joins("JOIN trips ON trips.id = stages.trip_id").
		Joins("JOIN travelers ON travelers.pesel = trips.traveler_pesel").
		Joins("JOIN locations ON locations.id = stages.location_id").
		Joins("JOIN cities ON cities.id = locations.city_id").
		Where("stages.start_date <= ? AND stages.end_date >= ?", at, at)

	switch {
	case scope.CityID != nil:
		query = query.Where("cities.id = ?", *scope.CityID)
	case scope.CountryID != nil:
		query = query.Where("cities.country_id = ?", *scope.CountryID)
	default:
		return nil, domainerrors.ErrInvalidScope
	}

	var rows []struct {
		TravelerPesel string
		TripID        uint
	}
	if err := query.
		Order("trips.traveler_pesel ASC").
		Order("trip_id ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to resolve presence")
	}

	matches := make([]repository.PresenceMatch, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, repository.PresenceMatch{
			TravelerPesel: row.TravelerPesel,
			TripID:        row.TripID,
		})
	}

	return matches, nil
}

// LinkTripsToEvacuation sets evacuation_id on the given trips where it is still unset.
func (repo *itineraryRepository) LinkTripsToEvacuation(ctx context.Context, tripIDs []uint, evacuationID uint) (int64, error) {
	if len(tripIDs) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.TripModel{}).
		Where("id IN ? AND evacuation_id IS NULL", tripIDs).
		Update("evacuation_id", evacuationID)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to link trips to evacuation")
	}

	return result.RowsAffected, nil
}

func fromTripDomain(data *entity.Trip) *model.TripModel {
	if data == nil {
		return nil
	}

	stages := make([]model.StageModel, 0, len(data.Stages))
	for _, stage := range data.Stages {
		stages = append(stages, model.StageModel{
			StartDate:  stage.StartDate.UTC(),
			EndDate:    stage.EndDate.UTC(),
			LocationID: stage.LocationID,
		})
	}

	return &model.TripModel{
		ID:            data.ID,
		Status:        string(data.Status),
		TravelerPesel: data.TravelerPesel,
		EvacuationID:  data.EvacuationID,
		Stages:        stages,
	}
}
