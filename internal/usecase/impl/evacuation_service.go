// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"evacuation/config"
	deliverycontext "evacuation/internal/delivery/context"
	"evacuation/internal/domain/constants"
	"evacuation/internal/domain/entity"
	domainerrors "evacuation/internal/domain/errors"
	"evacuation/internal/domain/repository"
	"evacuation/internal/domain/service"
	"evacuation/internal/usecase"

	"github.com/pkg/errors"
)

// evacuationService implements the EvacuationUsecase interface.
type evacuationService struct {
	txManager         repository.TransactionManager
	publisher         service.EventPublisher
	fanout            *fanout
	defaultActionName string
	logger            *slog.Logger
}

// NewEvacuationService is the constructor for evacuationService.
func NewEvacuationService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.EvacuationUsecase {
	var dispatchCfg *config.DispatchConfig
	if cfg != nil {
		dispatchCfg = cfg.Dispatch
	}

	srv := &evacuationService{
		txManager: txManager,
		publisher: publisher,
		fanout:    newFanout(dispatchCfg),
		logger:    logger,
	}
	if dispatchCfg != nil {
		srv.defaultActionName = dispatchCfg.DefaultActionName
	}

	return srv
}

// Create persists a planned evacuation.
func (srv *evacuationService) Create(ctx context.Context, input *usecase.CreateEvacuationInput) (*entity.EvacuationView, error) {
	if strings.TrimSpace(input.ActionName) == "" || strings.TrimSpace(input.EventDescription) == "" || input.StartDate == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "action_name, event_description and start_date are required")
	}

	evacuation := &entity.Evacuation{
		ActionName:       strings.TrimSpace(input.ActionName),
		EventDescription: strings.TrimSpace(input.EventDescription),
		StartDate:        input.StartDate.UTC(),
		EndDate:          utcPtr(input.EndDate),
		Status:           entity.EvacuationStatusPlanned,
		Scope:            input.Scope(),
	}
	if err := validateEvacuation(evacuation); err != nil {
		return nil, err
	}

	var view *entity.EvacuationView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := scopeLabel(ctx, repoFactory.GeographyRepo(), evacuation.Scope); err != nil {
			return err
		}

		evacuationRepo := repoFactory.EvacuationRepo()
		if err := evacuationRepo.Create(ctx, evacuation); err != nil {
			return errors.Wrap(err, "failed to create evacuation")
		}

		created, err := evacuationRepo.FindViewByID(ctx, evacuation.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load created evacuation")
		}
		view = created

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create evacuation")
	}

	srv.requestLogger(ctx).Info("Evacuation created",
		slog.Uint64("evacuation_id", uint64(view.ID)),
		slog.String("status", view.Status.String()),
	)

	return view, nil
}

// Update applies a partial update and publishes evacuation.updated when the
// scope changed or the evacuation was started.
func (srv *evacuationService) Update(ctx context.Context, id uint, input *usecase.UpdateEvacuationInput) (*entity.EvacuationView, error) {
	var (
		view       *entity.EvacuationView
		reevaluate bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		evacuationRepo := repoFactory.EvacuationRepo()

		evacuation, err := evacuationRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrEvacuationNotFound) {
				return errors.Wrapf(domainerrors.ErrEvacuationNotFound, "evacuation %d not found", id)
			}

			return errors.Wrap(err, "failed to find evacuation")
		}

		previous := *evacuation
		if err := applyEvacuationPatch(evacuation, input); err != nil {
			return err
		}
		if err := validateEvacuation(evacuation); err != nil {
			return err
		}
		if _, err := scopeLabel(ctx, repoFactory.GeographyRepo(), evacuation.Scope); err != nil {
			return err
		}

		if err := evacuationRepo.Update(ctx, evacuation); err != nil {
			if errors.Is(err, repository.ErrEvacuationNotFound) {
				return errors.Wrapf(domainerrors.ErrEvacuationNotFound, "evacuation %d not found", id)
			}

			return errors.Wrap(err, "failed to update evacuation")
		}

		updated, err := evacuationRepo.FindViewByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to load updated evacuation")
		}
		view = updated

		started := previous.Status != entity.EvacuationStatusInProgress &&
			evacuation.Status == entity.EvacuationStatusInProgress
		reevaluate = (started || !sameScope(previous.Scope, evacuation.Scope)) && !evacuation.Status.IsTerminal()

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update evacuation")
	}

	if reevaluate {
		srv.publish(ctx, &service.EvacuationEvent{
			Type:         constants.EventTypeEvacuationUpdated,
			EvacuationID: id,
		})
	}

	return view, nil
}

// Delete hard-deletes an evacuation. Notifications already sent are kept.
func (srv *evacuationService) Delete(ctx context.Context, id uint) (bool, error) {
	var deleted bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		removed, err := repoFactory.EvacuationRepo().Delete(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to delete evacuation")
		}
		deleted = removed

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to delete evacuation")
	}

	srv.requestLogger(ctx).Info("Evacuation deleted",
		slog.Uint64("evacuation_id", uint64(id)),
		slog.Bool("deleted", deleted),
	)

	return deleted, nil
}

// Get returns one evacuation with resolved scope names.
func (srv *evacuationService) Get(ctx context.Context, id uint) (*entity.EvacuationView, error) {
	var view *entity.EvacuationView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.EvacuationRepo().FindViewByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrEvacuationNotFound) {
				return errors.Wrapf(domainerrors.ErrEvacuationNotFound, "evacuation %d not found", id)
			}

			return errors.Wrap(err, "failed to find evacuation")
		}
		view = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get evacuation")
	}

	return view, nil
}

// List returns evacuations, optionally filtered by status.
func (srv *evacuationService) List(ctx context.Context, status *entity.EvacuationStatus) ([]*entity.EvacuationView, error) {
	if status != nil && !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown status %q", *status)
	}

	var views []*entity.EvacuationView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.EvacuationRepo().List(ctx, status)
		if err != nil {
			return errors.Wrap(err, "failed to list evacuations")
		}
		views = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list evacuations")
	}

	return views, nil
}

// Declare creates an evacuation and alerts every traveler present in its scope,
// all in one transaction.
func (srv *evacuationService) Declare(ctx context.Context, input *usecase.DeclareEvacuationInput) (*entity.DispatchResult, error) {
	if strings.TrimSpace(input.EventDescription) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "event_description is required")
	}

	now := time.Now().UTC()
	actionName := strings.TrimSpace(input.ActionName)
	if actionName == "" {
		actionName = srv.defaultActionName
	}
	startDate := now
	if input.StartDate != nil {
		startDate = input.StartDate.UTC()
	}
	effectiveAt := now
	if input.EffectiveAt != nil {
		effectiveAt = input.EffectiveAt.UTC()
	}

	evacuation := &entity.Evacuation{
		ActionName:       actionName,
		EventDescription: strings.TrimSpace(input.EventDescription),
		StartDate:        startDate,
		EndDate:          utcPtr(input.EndDate),
		Status:           entity.EvacuationStatusPlanned,
		Scope:            input.Scope(),
	}
	if err := validateEvacuation(evacuation); err != nil {
		return nil, err
	}

	var result *entity.DispatchResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		affected, err := resolveAffected(ctx, repoFactory, evacuation.Scope, effectiveAt)
		if err != nil {
			return err
		}

		if err := repoFactory.EvacuationRepo().Create(ctx, evacuation); err != nil {
			return errors.Wrap(err, "failed to create evacuation")
		}

		dispatched, err := srv.fanout.dispatch(ctx, repoFactory, evacuation, affected)
		if err != nil {
			return err
		}
		result = dispatched

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to declare evacuation")
	}

	srv.requestLogger(ctx).Info("Evacuation declared",
		slog.Uint64("evacuation_id", uint64(result.EvacuationID)),
		slog.String("location_label", result.LocationLabel),
		slog.Int("affected_count", result.AffectedCount),
		slog.Int("notified_count", result.NotifiedCount),
	)

	srv.publish(ctx, &service.EvacuationEvent{
		Type:         constants.EventTypeEvacuationDispatched,
		EvacuationID: result.EvacuationID,
		EffectiveAt:  &effectiveAt,
		Affected:     result.AffectedCount,
		Notified:     result.NotifiedCount,
	})

	return result, nil
}

// Redispatch re-evaluates presence for an open evacuation. Travelers already
// alerted for it are not notified again.
func (srv *evacuationService) Redispatch(ctx context.Context, id uint, at *time.Time) (*entity.DispatchResult, error) {
	effectiveAt := time.Now().UTC()
	if at != nil && !at.IsZero() {
		effectiveAt = at.UTC()
	}

	var result *entity.DispatchResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		evacuation, err := repoFactory.EvacuationRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrEvacuationNotFound) {
				return errors.Wrapf(domainerrors.ErrEvacuationNotFound, "evacuation %d not found", id)
			}

			return errors.Wrap(err, "failed to find evacuation")
		}

		if evacuation.Status.IsTerminal() {
			return errors.Wrapf(domainerrors.ErrEvacuationClosed, "evacuation %d is %s", id, evacuation.Status)
		}

		affected, err := resolveAffected(ctx, repoFactory, evacuation.Scope, effectiveAt)
		if err != nil {
			return err
		}

		dispatched, err := srv.fanout.dispatch(ctx, repoFactory, evacuation, affected)
		if err != nil {
			return err
		}
		result = dispatched

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to redispatch evacuation")
	}

	srv.requestLogger(ctx).Info("Evacuation redispatched",
		slog.Uint64("evacuation_id", uint64(id)),
		slog.Int("affected_count", result.AffectedCount),
		slog.Int("notified_count", result.NotifiedCount),
	)

	if result.NotifiedCount > 0 {
		srv.publish(ctx, &service.EvacuationEvent{
			Type:         constants.EventTypeEvacuationDispatched,
			EvacuationID: id,
			EffectiveAt:  &effectiveAt,
			Affected:     result.AffectedCount,
			Notified:     result.NotifiedCount,
		})
	}

	return result, nil
}

// ListRecipients returns the notified travelers of an evacuation with their channel flags.
func (srv *evacuationService) ListRecipients(ctx context.Context, id uint) ([]*entity.Recipient, error) {
	var recipients []*entity.Recipient

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.EvacuationRepo().FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrEvacuationNotFound) {
				return errors.Wrapf(domainerrors.ErrEvacuationNotFound, "evacuation %d not found", id)
			}

			return errors.Wrap(err, "failed to find evacuation")
		}

		found, err := repoFactory.NotificationRepo().FindRecipients(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find recipients")
		}
		recipients = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipients")
	}

	return recipients, nil
}

// publish sends an event after commit. Failures are logged: the committed work stands.
func (srv *evacuationService) publish(ctx context.Context, event *service.EvacuationEvent) {
	if srv.publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if err := srv.publisher.PublishEvacuationEvent(ctx, event); err != nil {
		srv.requestLogger(ctx).Warn("Failed to publish evacuation event",
			slog.String("type", event.Type),
			slog.Uint64("evacuation_id", uint64(event.EvacuationID)),
			slog.Any("error", err),
		)
	}
}

func (srv *evacuationService) requestLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// applyEvacuationPatch copies the present fields of input onto evacuation.
func applyEvacuationPatch(evacuation *entity.Evacuation, input *usecase.UpdateEvacuationInput) error {
	if evacuation.Status.IsTerminal() && patchesContent(input) {
		return errors.Wrapf(domainerrors.ErrEvacuationClosed, "evacuation %d is %s", evacuation.ID, evacuation.Status)
	}

	if input.ActionName.Set {
		if !input.ActionName.HasValue() || strings.TrimSpace(input.ActionName.Value) == "" {
			return errors.Wrap(domainerrors.ErrValidationFailed, "action_name cannot be cleared")
		}
		evacuation.ActionName = strings.TrimSpace(input.ActionName.Value)
	}

	if input.EventDescription.Set {
		if !input.EventDescription.HasValue() || strings.TrimSpace(input.EventDescription.Value) == "" {
			return errors.Wrap(domainerrors.ErrValidationFailed, "event_description cannot be cleared")
		}
		evacuation.EventDescription = strings.TrimSpace(input.EventDescription.Value)
	}

	if input.StartDate.Set {
		if !input.StartDate.HasValue() {
			return errors.Wrap(domainerrors.ErrValidationFailed, "start_date cannot be cleared")
		}
		evacuation.StartDate = input.StartDate.Value.UTC()
	}

	if input.EndDate.Set {
		if input.EndDate.HasValue() {
			end := input.EndDate.Value.UTC()
			evacuation.EndDate = &end
		} else {
			evacuation.EndDate = nil
		}
	}

	if input.Status.Set {
		next := input.Status.Value
		if !input.Status.HasValue() || !next.IsValid() {
			return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown status %q", next)
		}
		if !evacuation.Status.CanTransitionTo(next) {
			return errors.Wrapf(domainerrors.ErrInvalidStatusTransition, "cannot move from %s to %s", evacuation.Status, next)
		}
		evacuation.Status = next
	}

	if input.CountryID.Set {
		evacuation.Scope.CountryID = patchedID(input.CountryID)
	}
	if input.CityID.Set {
		evacuation.Scope.CityID = patchedID(input.CityID)
	}

	return nil
}

// patchesContent reports whether the patch touches anything besides the status.
func patchesContent(input *usecase.UpdateEvacuationInput) bool {
	return input.ActionName.Set || input.EventDescription.Set ||
		input.StartDate.Set || input.EndDate.Set ||
		input.CountryID.Set || input.CityID.Set
}

// validateEvacuation checks the invariants every stored evacuation must hold.
func validateEvacuation(evacuation *entity.Evacuation) error {
	if !evacuation.Scope.IsValid() {
		return errors.Wrap(domainerrors.ErrInvalidScope, "scope must name exactly one country or city")
	}
	if evacuation.EndDate != nil && evacuation.EndDate.Before(evacuation.StartDate) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "end_date must not be before start_date")
	}

	return nil
}

func patchedID(p usecase.Patch[uint]) *uint {
	if !p.HasValue() {
		return nil
	}
	id := p.Value

	return &id
}

func sameScope(a, b entity.Scope) bool {
	return equalIDs(a.CountryID, b.CountryID) && equalIDs(a.CityID, b.CityID)
}

func equalIDs(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()

	return &utc
}
