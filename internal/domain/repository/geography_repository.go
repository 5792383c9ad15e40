// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"evacuation/internal/domain/entity"
)

var (
	// ErrCountryNotFound is returned when a country is not found.
	ErrCountryNotFound = errors.New("country not found")
	// ErrCityNotFound is returned when a city is not found.
	ErrCityNotFound = errors.New("city not found")
)

// GeographyRepository defines the interface for country, city and location data.
type GeographyRepository interface {
	// FindCountryByID retrieves a country by its ID.
	FindCountryByID(ctx context.Context, id uint) (*entity.Country, error)

	// FindCountryByName retrieves a country by its unique name.
	FindCountryByName(ctx context.Context, name string) (*entity.Country, error)

	// CreateCountry persists a new country.
	CreateCountry(ctx context.Context, country *entity.Country) error

	// FindCityByID retrieves a city by its ID.
	FindCityByID(ctx context.Context, id uint) (*entity.City, error)

	// FindCityByName retrieves a city of a country by name.
	FindCityByName(ctx context.Context, countryID uint, name string) (*entity.City, error)

	// CreateCity persists a new city.
	CreateCity(ctx context.Context, city *entity.City) error

	// FindOrCreateLocation returns the location with the given address in a city,
	// creating it when it does not exist yet.
	FindOrCreateLocation(ctx context.Context, cityID uint, address string) (*entity.Location, error)
}
