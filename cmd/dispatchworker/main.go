// Command dispatchworker consumes evacuation events pushed by Pub/Sub and
// re-runs the alert dispatch for each updated evacuation.
package main

import (
	"context"

	"evacuation/config"
	"evacuation/internal/delivery"
	"evacuation/internal/delivery/worker"
	"evacuation/internal/delivery/worker/handler"
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
			// Redispatch publishes follow-up events too.
			pubsub.NewEventPublisher,
			impl.NewEvacuationService,
			handler.NewPushHandler,
			fx.Annotate(worker.NewServer, fx.ResultTags(`group:"deliveries"`)),
		),
		fx.Invoke(delivery.Run),
	).Run()
}
