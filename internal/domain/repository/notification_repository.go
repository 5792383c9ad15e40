package repository

import (
	"context"
	"errors"

	"evacuation/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrNotificationAlreadyExists is returned when (evacuation_id, traveler_pesel) is taken.
	ErrNotificationAlreadyExists = errors.New("notification already exists")
)

// NotificationFilter narrows a notification listing.
type NotificationFilter struct {
	TravelerPesel *string
	EvacuationID  *uint
	UnreadOnly    bool
	Limit         int
	Offset        int
}

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// InsertDispatchBatch inserts notifications in batches, skipping rows that
	// collide on (evacuation_id, traveler_pesel). It returns the number of rows inserted.
	InsertDispatchBatch(ctx context.Context, notifications []*entity.Notification, batchSize int) (int64, error)

	// Create persists a single notification. A duplicate pair yields ErrNotificationAlreadyExists.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindByTraveler retrieves all notifications of a traveler, newest first.
	FindByTraveler(ctx context.Context, pesel string) ([]*entity.Notification, error)

	// List retrieves notifications matching the filter, newest first.
	List(ctx context.Context, filter NotificationFilter) ([]*entity.Notification, error)

	// MarkRead sets is_read on a notification.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// FindRecipients lists the notified travelers of an evacuation with their contact channels.
	FindRecipients(ctx context.Context, evacuationID uint) ([]*entity.Recipient, error)
}
