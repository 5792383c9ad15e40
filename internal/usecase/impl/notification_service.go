package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"evacuation/internal/domain/entity"
	domainerrors "evacuation/internal/domain/errors"
	"evacuation/internal/domain/repository"
	"evacuation/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxNotificationPageSize = 500

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListForTraveler returns a traveler's feed, newest first.
func (srv *notificationService) ListForTraveler(ctx context.Context, pesel string) ([]*entity.Notification, error) {
	var notifications []*entity.Notification

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.TravelerRepo().FindByPesel(ctx, pesel); err != nil {
			if errors.Is(err, repository.ErrTravelerNotFound) {
				return errors.Wrap(domainerrors.ErrTravelerNotFound, "traveler not found")
			}

			return errors.Wrap(err, "failed to find traveler")
		}

		found, err := repoFactory.NotificationRepo().FindByTraveler(ctx, pesel)
		if err != nil {
			return errors.Wrap(err, "failed to find notifications")
		}
		notifications = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list traveler notifications")
	}

	return notifications, nil
}

// MarkRead flags a notification as read. Marking twice is not an error.
func (srv *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NotificationRepo().MarkRead(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotificationNotFound) {
				return errors.Wrap(domainerrors.ErrNotificationNotFound, "notification not found")
			}

			return errors.Wrap(err, "failed to mark notification as read")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to mark notification as read")
	}

	return nil
}

// ListAll returns notifications for operator dashboards, newest first.
func (srv *notificationService) ListAll(ctx context.Context, input *usecase.ListNotificationsInput) ([]*entity.Notification, error) {
	filter := repository.NotificationFilter{}
	if input != nil {
		if input.Limit < 0 || input.Offset < 0 || input.Limit > maxNotificationPageSize {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid pagination")
		}
		filter = repository.NotificationFilter{
			TravelerPesel: input.TravelerPesel,
			EvacuationID:  input.EvacuationID,
			UnreadOnly:    input.UnreadOnly,
			Limit:         input.Limit,
			Offset:        input.Offset,
		}
	}

	var notifications []*entity.Notification

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NotificationRepo().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list notifications")
		}
		notifications = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// CreateDirect records a single operator message. A second message for the
// same evacuation and traveler is a conflict.
func (srv *notificationService) CreateDirect(ctx context.Context, input *usecase.CreateNotificationInput) (*entity.Notification, error) {
	if strings.TrimSpace(input.TravelerPesel) == "" || strings.TrimSpace(input.Message) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "traveler_pesel and message are required")
	}

	notification := &entity.Notification{
		ID:            uuid.Must(uuid.NewV7()),
		TravelerPesel: input.TravelerPesel,
		EvacuationID:  input.EvacuationID,
		Message:       strings.TrimSpace(input.Message),
		CreatedAt:     time.Now().UTC(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.TravelerRepo().FindByPesel(ctx, input.TravelerPesel); err != nil {
			if errors.Is(err, repository.ErrTravelerNotFound) {
				return errors.Wrap(domainerrors.ErrTravelerNotFound, "traveler not found")
			}

			return errors.Wrap(err, "failed to find traveler")
		}

		if input.EvacuationID != nil {
			if _, err := repoFactory.EvacuationRepo().FindByID(ctx, *input.EvacuationID); err != nil {
				if errors.Is(err, repository.ErrEvacuationNotFound) {
					return errors.Wrap(domainerrors.ErrEvacuationNotFound, "evacuation not found")
				}

				return errors.Wrap(err, "failed to find evacuation")
			}
		}

		if err := repoFactory.NotificationRepo().Create(ctx, notification); err != nil {
			if errors.Is(err, repository.ErrNotificationAlreadyExists) {
				return errors.Wrap(domainerrors.ErrNotificationAlreadyExists, "traveler already notified for this evacuation")
			}

			return errors.Wrap(err, "failed to create notification")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	srv.logger.Info("Direct notification created",
		slog.String("notification_id", notification.ID.String()),
		slog.String("traveler_pesel", notification.TravelerPesel),
	)

	return notification, nil
}
