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
)

const evacuationViewSelect = "evacuations.*, countries.name AS country_name, cities.name AS city_name"

// evacuationRepository implements the repository.EvacuationRepository interface.
type evacuationRepository struct {
	db *gorm.DB
}

// NewEvacuationRepository is the constructor for evacuationRepository.
func NewEvacuationRepository(db *gorm.DB) repository.EvacuationRepository {
	return &evacuationRepository{
		db: db,
	}
}

// Create persists a new evacuation.
func (repo *evacuationRepository) Create(ctx context.Context, evacuation *entity.Evacuation) error {
	evacuationM := fromEvacuationDomain(evacuation)

	if err := repo.db.WithContext(ctx).Create(evacuationM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid evacuation data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create evacuation")
	}

	evacuation.ID = evacuationM.ID
	evacuation.CreatedAt = evacuationM.CreatedAt
	evacuation.UpdatedAt = evacuationM.UpdatedAt

	return nil
}

// FindByID retrieves an evacuation by ID.
func (repo *evacuationRepository) FindByID(ctx context.Context, id uint) (*entity.Evacuation, error) {
	var evacuationM model.EvacuationModel

	if err := repo.db.WithContext(ctx).First(&evacuationM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEvacuationNotFound
		}

		return nil, errors.Wrap(err, "failed to find evacuation by ID")
	}

	return toEvacuationDomain(&evacuationM), nil
}

// FindViewByID retrieves an evacuation with its scope names resolved.
func (repo *evacuationRepository) FindViewByID(ctx context.Context, id uint) (*entity.EvacuationView, error) {
	var views []*model.EvacuationViewModel

	if err := repo.viewQuery(ctx).
		Where("evacuations.id = ?", id).
		Limit(1).
		Scan(&views).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find evacuation view by ID")
	}

	if len(views) == 0 {
		return nil, repository.ErrEvacuationNotFound
	}

	return toEvacuationViewDomain(views[0]), nil
}

// List retrieves evacuation views, newest first, optionally filtered by status.
func (repo *evacuationRepository) List(ctx context.Context, status *entity.EvacuationStatus) ([]*entity.EvacuationView, error) {
	query := repo.viewQuery(ctx)
	if status != nil {
		query = query.Where("evacuations.status = ?", string(*status))
	}

	var views []*model.EvacuationViewModel
	if err := query.
		Order("evacuations.start_date DESC").
		Order("evacuations.id DESC").
		Scan(&views).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list evacuations")
	}

	result := make([]*entity.EvacuationView, 0, len(views))
	for _, view := range views {
		result = append(result, toEvacuationViewDomain(view))
	}

	return result, nil
}

// Update saves all mutable fields of an evacuation, including cleared ones.
func (repo *evacuationRepository) Update(ctx context.Context, evacuation *entity.Evacuation) error {
	evacuationM := fromEvacuationDomain(evacuation)
	evacuationM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.EvacuationModel{}).
		Where("id = ?", evacuation.ID).
		Select("action_name", "event_description", "start_date", "end_date", "status", "country_id", "city_id", "updated_at").
		Updates(evacuationM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid evacuation data")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update evacuation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEvacuationNotFound
	}

	evacuation.UpdatedAt = evacuationM.UpdatedAt

	return nil
}

// Delete hard-deletes an evacuation. Its notifications are kept.
func (repo *evacuationRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := repo.db.WithContext(ctx).Delete(&model.EvacuationModel{}, id)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete evacuation")
	}

	return result.RowsAffected > 0, nil
}

func (repo *evacuationRepository) viewQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("evacuations").
		Select(evacuationViewSelect).
		Joins("LEFT JOIN cities ON cities.id = evacuations.city_id").
		Joins("LEFT JOIN countries ON countries.id = COALESCE(evacuations.country_id, cities.country_id)")
}

func toEvacuationDomain(data *model.EvacuationModel) *entity.Evacuation {
	if data == nil {
		return nil
	}

	var endDate *time.Time
	if data.EndDate != nil {
		end := data.EndDate.UTC()
		endDate = &end
	}

	return &entity.Evacuation{
		ID:               data.ID,
		ActionName:       data.ActionName,
		EventDescription: data.EventDescription,
		StartDate:        data.StartDate.UTC(),
		EndDate:          endDate,
		Status:           entity.EvacuationStatus(data.Status),
		Scope: entity.Scope{
			CountryID: data.CountryID,
			CityID:    data.CityID,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromEvacuationDomain(data *entity.Evacuation) *model.EvacuationModel {
	if data == nil {
		return nil
	}

	var endDate *time.Time
	if data.EndDate != nil {
		end := data.EndDate.UTC()
		endDate = &end
	}

	return &model.EvacuationModel{
		ID:               data.ID,
		ActionName:       data.ActionName,
		EventDescription: data.EventDescription,
		StartDate:        data.StartDate.UTC(),
		EndDate:          endDate,
		Status:           string(data.Status),
		CountryID:        data.Scope.CountryID,
		CityID:           data.Scope.CityID,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toEvacuationViewDomain(data *model.EvacuationViewModel) *entity.EvacuationView {
	return &entity.EvacuationView{
		Evacuation:  *toEvacuationDomain(&data.EvacuationModel),
		CountryName: data.CountryName,
		CityName:    data.CityName,
	}
}
