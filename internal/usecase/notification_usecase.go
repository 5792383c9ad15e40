package usecase

import (
	"context"

	"evacuation/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the read side of notifications and direct operator messages.
type NotificationUsecase interface {
	// ListForTraveler returns a traveler's feed, newest first.
	ListForTraveler(ctx context.Context, pesel string) ([]*entity.Notification, error)

	// MarkRead flags a notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// ListAll returns notifications for operator dashboards, newest first.
	ListAll(ctx context.Context, input *ListNotificationsInput) ([]*entity.Notification, error)

	// CreateDirect records a single operator message for one traveler.
	CreateDirect(ctx context.Context, input *CreateNotificationInput) (*entity.Notification, error)
}

// ListNotificationsInput filters a notification listing.
type ListNotificationsInput struct {
	TravelerPesel *string `query:"traveler_pesel"`
	EvacuationID  *uint   `query:"evacuation_id"`
	UnreadOnly    bool    `query:"unread_only"`
	Limit         int     `query:"limit" validate:"gte=0,lte=500"`
	Offset        int     `query:"offset" validate:"gte=0"`
}

// CreateNotificationInput defines a direct notification.
type CreateNotificationInput struct {
	TravelerPesel string `json:"traveler_pesel" validate:"required"`
	Message       string `json:"message" validate:"required"`
	EvacuationID  *uint  `json:"evacuation_id,omitempty"`
}
