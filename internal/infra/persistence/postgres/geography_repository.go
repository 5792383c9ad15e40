package postgres

import (
	"context"

	"evacuation/internal/domain/entity"
	domainerrors "evacuation/internal/domain/errors"
	"evacuation/internal/domain/repository"
	"evacuation/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// geographyRepository implements the repository.GeographyRepository interface.
type geographyRepository struct {
	db *gorm.DB
}

// NewGeographyRepository is the constructor for geographyRepository.
func NewGeographyRepository(db *gorm.DB) repository.GeographyRepository {
	return &geographyRepository{
		db: db,
	}
}

// FindCountryByID retrieves a country by its ID.
func (repo *geographyRepository) FindCountryByID(ctx context.Context, id uint) (*entity.Country, error) {
	var countryM model.CountryModel

	if err := repo.db.WithContext(ctx).First(&countryM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCountryNotFound
		}

		return nil, errors.Wrap(err, "failed to find country by ID")
	}

	return toCountryDomain(&countryM), nil
}

// FindCountryByName retrieves a country by its unique name.
func (repo *geographyRepository) FindCountryByName(ctx context.Context, name string) (*entity.Country, error) {
	var countryM model.CountryModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&countryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCountryNotFound
		}

		return nil, errors.Wrap(err, "failed to find country by name")
	}

	return toCountryDomain(&countryM), nil
}

// CreateCountry persists a new country.
func (repo *geographyRepository) CreateCountry(ctx context.Context, country *entity.Country) error {
	countryM := &model.CountryModel{Name: country.Name}

	if err := repo.db.WithContext(ctx).Create(countryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("country already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create country")
	}

	country.ID = countryM.ID

	return nil
}

// FindCityByID retrieves a city by its ID.
func (repo *geographyRepository) FindCityByID(ctx context.Context, id uint) (*entity.City, error) {
	var cityM model.CityModel

	if err := repo.db.WithContext(ctx).First(&cityM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city by ID")
	}

	return toCityDomain(&cityM), nil
}

// FindCityByName retrieves a city of a country by name.
func (repo *geographyRepository) FindCityByName(ctx context.Context, countryID uint, name string) (*entity.City, error) {
	var cityM model.CityModel

	if err := repo.db.WithContext(ctx).
		Where("country_id = ? AND name = ?", countryID, name).
		First(&cityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city by name")
	}

	return toCityDomain(&cityM), nil
}

// CreateCity persists a new city.
func (repo *geographyRepository) CreateCity(ctx context.Context, city *entity.City) error {
	cityM := &model.CityModel{Name: city.Name, CountryID: city.CountryID}

	if err := repo.db.WithContext(ctx).Create(cityM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCountryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create city")
	}

	city.ID = cityM.ID

	return nil
}

// FindOrCreateLocation returns the location for (cityID, address), inserting it if missing.
// Concurrent callers converge on the same row through the unique index.
func (repo *geographyRepository) FindOrCreateLocation(ctx context.Context, cityID uint, address string) (*entity.Location, error) {
	locationM := &model.LocationModel{CityID: cityID, Address: address}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "city_id"}, {Name: "address"}},
			DoNothing: true,
		}).
		Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrCityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	if locationM.ID != 0 {
		return toLocationDomain(locationM), nil
	}

	var existing model.LocationModel
	if err := repo.db.WithContext(ctx).
		Where("city_id = ? AND address = ?", cityID, address).
		First(&existing).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find location")
	}

	return toLocationDomain(&existing), nil
}

func toCountryDomain(data *model.CountryModel) *entity.Country {
	if data == nil {
		return nil
	}

	return &entity.Country{ID: data.ID, Name: data.Name}
}

func toCityDomain(data *model.CityModel) *entity.City {
	if data == nil {
		return nil
	}

	return &entity.City{ID: data.ID, Name: data.Name, CountryID: data.CountryID}
}

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{ID: data.ID, Address: data.Address, CityID: data.CityID}
}
