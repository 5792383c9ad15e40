// Command evacd serves the evacuation REST API.
package main

import (
	"context"

	"evacuation/config"
	"evacuation/internal/delivery"
	"evacuation/internal/delivery/api"
	apimiddleware "evacuation/internal/delivery/api/middleware"
	"evacuation/internal/delivery/api/router/handler"
	logs "evacuation/internal/infra/log"
	"evacuation/internal/infra/persistence/postgres"
	"evacuation/internal/infra/pubsub"
	"evacuation/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewTransactionManager,
			pubsub.NewEventPublisher,
		),
		usecases(),
		fx.Provide(
			apimiddleware.NewPrincipalMiddleware,
			handler.NewEvacuationHandler,
			handler.NewNotificationHandler,
			handler.NewPreferenceHandler,
			handler.NewPresenceHandler,
			fx.Annotate(api.NewServer, fx.ResultTags(`group:"deliveries"`)),
		),
		fx.Invoke(delivery.Run),
	).Run()
}

func usecases() fx.Option {
	return fx.Provide(
		impl.NewPresenceService,
		impl.NewEvacuationService,
		impl.NewNotificationService,
		impl.NewPreferenceService,
		impl.NewItineraryService,
	)
}
