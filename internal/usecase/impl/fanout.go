package impl

import (
	"context"
	"fmt"
	"time"

	"evacuation/config"
	"evacuation/internal/domain/entity"
	"evacuation/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const alertMessageFormat = "ALERT [%s]: W %s wystąpiło zagrożenie: %s. Postępuj zgodnie z instrukcjami."

// fanout turns an affected set into persisted notifications for one evacuation.
type fanout struct {
	workers   int
	batchSize int
}

func newFanout(cfg *config.DispatchConfig) *fanout {
	if cfg == nil {
		cfg = &config.DispatchConfig{}
	}

	f := &fanout{workers: cfg.Workers, batchSize: cfg.BatchSize}
	if f.workers <= 0 {
		f.workers = 1
	}

	return f
}

// alertMessage renders the text shown to an affected traveler.
func alertMessage(actionName, label, description string) string {
	return fmt.Sprintf(alertMessageFormat, actionName, label, description)
}

// dispatch writes one notification per affected traveler inside the caller's transaction.
// Travelers already notified for this evacuation are skipped by the store, so
// NotifiedCount only counts new rows.
func (f *fanout) dispatch(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	evacuation *entity.Evacuation,
	affected *entity.AffectedSet,
) (*entity.DispatchResult, error) {
	result := &entity.DispatchResult{
		EvacuationID:  evacuation.ID,
		AffectedCount: affected.Count(),
		LocationLabel: affected.Label,
	}
	if affected.Count() == 0 {
		return result, nil
	}

	notifications, err := f.build(ctx, evacuation, affected, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	inserted, err := repoFactory.NotificationRepo().InsertDispatchBatch(ctx, notifications, f.batchSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert notifications")
	}
	result.NotifiedCount = int(inserted)

	if _, err := repoFactory.ItineraryRepo().LinkTripsToEvacuation(ctx, affected.TripIDs, evacuation.ID); err != nil {
		return nil, errors.Wrap(err, "failed to link trips to evacuation")
	}

	return result, nil
}

// build constructs the notification rows, one goroutine per traveler up to the worker limit.
func (f *fanout) build(
	ctx context.Context,
	evacuation *entity.Evacuation,
	affected *entity.AffectedSet,
	dispatchedAt time.Time,
) ([]*entity.Notification, error) {
	notifications := make([]*entity.Notification, len(affected.TravelerPesels))
	evacuationID := evacuation.ID

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)

	for i, pesel := range affected.TravelerPesels {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errors.WithStack(err)
			}

			id, err := uuid.NewV7()
			if err != nil {
				return errors.Wrap(err, "failed to generate notification id")
			}

			notifications[i] = &entity.Notification{
				ID:            id,
				TravelerPesel: pesel,
				EvacuationID:  &evacuationID,
				Message:       alertMessage(evacuation.ActionName, affected.Label, evacuation.EventDescription),
				CreatedAt:     dispatchedAt,
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to build notifications")
	}

	return notifications, nil
}
