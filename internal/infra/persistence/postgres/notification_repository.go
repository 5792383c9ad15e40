package postgres

import (
	"context"

	"evacuation/internal/domain/entity"
	domainerrors "evacuation/internal/domain/errors"
	"evacuation/internal/domain/repository"
	"evacuation/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultInsertBatchSize = 100

// dispatchConflict skips notifications already recorded for the same evacuation and traveler.
var dispatchConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "evacuation_id"}, {Name: "traveler_pesel"}},
	DoNothing: true,
}

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// InsertDispatchBatch inserts notifications with ON CONFLICT DO NOTHING and reports the rows inserted.
func (repo *notificationRepository) InsertDispatchBatch(ctx context.Context, notifications []*entity.Notification, batchSize int) (int64, error) {
	if len(notifications) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = defaultInsertBatchSize
	}

	notificationModels := make([]*model.NotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		notificationModels = append(notificationModels, fromNotificationDomain(notification))
	}

	result := repo.db.WithContext(ctx).
		Clauses(dispatchConflict).
		CreateInBatches(notificationModels, batchSize)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return 0, domainerrors.ErrTravelerNotFound.WrapMessage("notification references unknown traveler")
		}

		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to insert dispatch batch")
	}

	return result.RowsAffected, nil
}

// Create persists a single notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrNotificationAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTravelerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindByTraveler retrieves all notifications of a traveler, newest first.
func (repo *notificationRepository) FindByTraveler(ctx context.Context, pesel string) ([]*entity.Notification, error) {
	return repo.List(ctx, repository.NotificationFilter{TravelerPesel: &pesel})
}

// List retrieves notifications matching the filter, newest first.
func (repo *notificationRepository) List(ctx context.Context, filter repository.NotificationFilter) ([]*entity.Notification, error) {
	query := repo.db.WithContext(ctx).Model(&model.NotificationModel{})

	if filter.TravelerPesel != nil {
		query = query.Where("traveler_pesel = ?", *filter.TravelerPesel)
	}
	if filter.EvacuationID != nil {
		query = query.Where("evacuation_id = ?", *filter.EvacuationID)
	}
	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var notificationModels []*model.NotificationModel
	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkRead sets is_read on a notification.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification as read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// FindRecipients lists the notified travelers of an evacuation with their contact channels.
func (repo *notificationRepository) FindRecipients(ctx context.Context, evacuationID uint) ([]*entity.Recipient, error) {
	var rows []*model.RecipientModel

	if err := repo.db.WithContext(ctx).
		Table("notifications").
		Select("notifications.traveler_pesel, notifications.id AS notification_id, "+
			"travelers.email, travelers.phone_number, travelers.pref_sms, travelers.pref_email, travelers.pref_push").
		Joins("JOIN travelers ON travelers.pesel = notifications.traveler_pesel").
		Where("notifications.evacuation_id = ?", evacuationID).
		Order("notifications.traveler_pesel ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipients")
	}

	recipients := make([]*entity.Recipient, 0, len(rows))
	for _, row := range rows {
		recipients = append(recipients, &entity.Recipient{
			TravelerPesel:  row.TravelerPesel,
			NotificationID: row.NotificationID,
			Email:          row.Email,
			PhoneNumber:    row.PhoneNumber,
			Channels: entity.Preferences{
				SMS:   row.PrefSMS,
				Email: row.PrefEmail,
				Push:  row.PrefPush,
			},
		})
	}

	return recipients, nil
}

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:            data.ID,
		TravelerPesel: data.TravelerPesel,
		EvacuationID:  data.EvacuationID,
		Message:       data.Message,
		CreatedAt:     data.CreatedAt.UTC(),
		IsRead:        data.IsRead,
	}
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	id := data.ID
	if id == uuid.Nil {
		id = uuid.Must(uuid.NewV7())
		data.ID = id
	}

	return &model.NotificationModel{
		ID:            id,
		TravelerPesel: data.TravelerPesel,
		EvacuationID:  data.EvacuationID,
		Message:       data.Message,
		CreatedAt:     data.CreatedAt.UTC(),
		IsRead:        data.IsRead,
	}
}
