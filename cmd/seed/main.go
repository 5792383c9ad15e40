// Command seed loads a small demo dataset: two countries, three cities and
// travelers with stages around the current instant.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"evacuation/config"
	"evacuation/internal/domain/entity"
	domainerrors "evacuation/internal/domain/errors"
	"evacuation/internal/domain/repository"
	"evacuation/internal/errors"
	logs "evacuation/internal/infra/log"
	"evacuation/internal/infra/persistence/postgres"
	"evacuation/internal/usecase"
	"evacuation/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type cityFixture struct {
	country string
	city    string
}

type travelerFixture struct {
	traveler usecase.RegisterTravelerInput
	stay     cityFixture
	address  string
	from     time.Duration
	to       time.Duration
}

var travelers = []travelerFixture{
	{
		traveler: usecase.RegisterTravelerInput{
			Pesel: "90010112349", FirstName: "Anna", LastName: "Kowalska",
			Email: "anna.kowalska@example.pl", PhoneNumber: "+48500100200", Login: "anna",
		},
		stay:    cityFixture{country: "Francja", city: "Paryż"},
		address: "12 Rue de Rivoli",
		from:    -48 * time.Hour,
		to:      48 * time.Hour,
	},
	{
		traveler: usecase.RegisterTravelerInput{
			Pesel: "85051523456", FirstName: "Jan", LastName: "Nowak",
			Email: "jan.nowak@example.pl", Login: "jnowak",
		},
		stay:    cityFixture{country: "Francja", city: "Lyon"},
		address: "3 Place Bellecour",
		from:    -24 * time.Hour,
		to:      72 * time.Hour,
	},
	{
		traveler: usecase.RegisterTravelerInput{
			Pesel: "77121234560", FirstName: "Maria", LastName: "Wiśniewska",
			PhoneNumber: "+48600300400", Login: "mwisniewska",
		},
		stay:    cityFixture{country: "Niemcy", city: "Berlin"},
		address: "Unter den Linden 5",
		from:    -72 * time.Hour,
		to:      24 * time.Hour,
	},
}

type seedParams struct {
	fx.In

	DB          *gorm.DB
	TxManager   repository.TransactionManager
	ItineraryUC usecase.ItineraryUsecase
	Logger      *slog.Logger
}

func main() {
	app := fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewTransactionManager,
			impl.NewItineraryService,
		),
		fx.Invoke(register),
		fx.NopLogger,
	)

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to start seed", slog.Any("error", err))
		os.Exit(1)
	}

	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to stop seed", slog.Any("error", err))
		os.Exit(1)
	}
}

func register(lc fx.Lifecycle, params seedParams) {
	lc.Append(fx.Hook{
		// Appended after the database hook, so the pool is already pinged.
		OnStart: func(ctx context.Context) error {
			return seed(ctx, params)
		},
	})
}

func seed(ctx context.Context, params seedParams) error {
	if err := postgres.Migrate(ctx, params.DB); err != nil {
		return err
	}

	now := time.Now().UTC().Truncate(time.Minute)

	for _, f := range travelers {
		city, err := ensureCity(ctx, params.TxManager, f.stay)
		if err != nil {
			return err
		}

		input := f.traveler
		if _, err := params.ItineraryUC.RegisterTraveler(ctx, &input); err != nil {
			if !errors.Is(err, domainerrors.ErrTravelerAlreadyExists) {
				return err
			}
			params.Logger.Info("Traveler already seeded", slog.String("pesel", input.Pesel))

			continue
		}

		trip, err := params.ItineraryUC.RegisterTrip(ctx, &usecase.RegisterTripInput{
			TravelerPesel: input.Pesel,
			Status:        entity.TripStatusInProgress,
			Stages: []usecase.StageInput{{
				CityID:    city.ID,
				Address:   f.address,
				StartDate: now.Add(f.from),
				EndDate:   now.Add(f.to),
			}},
		})
		if err != nil {
			return err
		}

		params.Logger.Info("Seeded traveler",
			slog.String("pesel", input.Pesel),
			slog.String("city", city.Name),
			slog.Uint64("trip_id", uint64(trip.ID)),
		)
	}

	return nil
}

func ensureCity(ctx context.Context, txManager repository.TransactionManager, fixture cityFixture) (*entity.City, error) {
	var city *entity.City

	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		geoRepo := repoFactory.GeographyRepo()

		country, err := geoRepo.FindCountryByName(ctx, fixture.country)
		if errors.Is(err, repository.ErrCountryNotFound) {
			country = &entity.Country{Name: fixture.country}
			err = geoRepo.CreateCountry(ctx, country)
		}
		if err != nil {
			return err
		}

		city, err = geoRepo.FindCityByName(ctx, country.ID, fixture.city)
		if errors.Is(err, repository.ErrCityNotFound) {
			city = &entity.City{Name: fixture.city, CountryID: country.ID}
			err = geoRepo.CreateCity(ctx, city)
		}

		return err
	})

	return city, err
}
