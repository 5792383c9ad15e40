package postgres

import (
	"context"

	"evacuation/internal/domain/repository"
	"evacuation/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one GORM transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// GeographyRepo creates a geography repository bound to the transaction.
func (f *gormRepositoryFactory) GeographyRepo() repository.GeographyRepository {
	return NewGeographyRepository(f.tx)
}

// TravelerRepo creates a traveler repository bound to the transaction.
func (f *gormRepositoryFactory) TravelerRepo() repository.TravelerRepository {
	return NewTravelerRepository(f.tx)
}

// ItineraryRepo creates an itinerary repository bound to the transaction.
func (f *gormRepositoryFactory) ItineraryRepo() repository.ItineraryRepository {
	return NewItineraryRepository(f.tx)
}

// EvacuationRepo creates an evacuation repository bound to the transaction.
func (f *gormRepositoryFactory) EvacuationRepo() repository.EvacuationRepository {
	return NewEvacuationRepository(f.tx)
}

// NotificationRepo creates a notification repository bound to the transaction.
func (f *gormRepositoryFactory) NotificationRepo() repository.NotificationRepository {
	return NewNotificationRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// A panic inside fn must not leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Join(err, errors.Wrap(rbErr, "failed to roll back transaction"))
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
