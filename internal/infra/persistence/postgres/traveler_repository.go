package postgres

import (
	"context"

	"evacuation/internal/domain/entity"
	domainerrors "evacuation/internal/domain/errors"
	"evacuation/internal/domain/repository"
	"evacuation/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// travelerRepository implements the repository.TravelerRepository interface.
type travelerRepository struct {
	db *gorm.DB
}

// NewTravelerRepository is the constructor for travelerRepository.
func NewTravelerRepository(db *gorm.DB) repository.TravelerRepository {
	return &travelerRepository{
		db: db,
	}
}

// Create persists a new traveler with its preferences.
func (repo *travelerRepository) Create(ctx context.Context, traveler *entity.Traveler) error {
	travelerM := fromTravelerDomain(traveler)

	if err := repo.db.WithContext(ctx).Create(travelerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrTravelerAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required traveler information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create traveler")
	}

	traveler.CreatedAt = travelerM.CreatedAt
	traveler.UpdatedAt = travelerM.UpdatedAt

	return nil
}

// FindByPesel retrieves a traveler by PESEL.
func (repo *travelerRepository) FindByPesel(ctx context.Context, pesel string) (*entity.Traveler, error) {
	var travelerM model.TravelerModel

	if err := repo.db.WithContext(ctx).
		Where("pesel = ?", pesel).
		First(&travelerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTravelerNotFound
		}

		return nil, errors.Wrap(err, "failed to find traveler by pesel")
	}

	return toTravelerDomain(&travelerM), nil
}

// UpdatePreferences overwrites all three channel flags of a traveler.
func (repo *travelerRepository) UpdatePreferences(ctx context.Context, pesel string, prefs entity.Preferences) error {
	// A map is used so that false values are written too.
	result := repo.db.WithContext(ctx).
		Model(&model.TravelerModel{}).
		Where("pesel = ?", pesel).
		Updates(map[string]any{
			"pref_sms":   prefs.SMS,
			"pref_email": prefs.Email,
			"pref_push":  prefs.Push,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update traveler preferences")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTravelerNotFound
	}

	return nil
}

func toTravelerDomain(data *model.TravelerModel) *entity.Traveler {
	if data == nil {
		return nil
	}

	return &entity.Traveler{
		Pesel:       data.Pesel,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Login:       data.Login,
		Preferences: entity.Preferences{
			SMS:   data.PrefSMS,
			Email: data.PrefEmail,
			Push:  data.PrefPush,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromTravelerDomain(data *entity.Traveler) *model.TravelerModel {
	if data == nil {
		return nil
	}

	return &model.TravelerModel{
		Pesel:       data.Pesel,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Login:       data.Login,
		PrefSMS:     data.Preferences.SMS,
		PrefEmail:   data.Preferences.Email,
		PrefPush:    data.Preferences.Push,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
