package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// The use case layer drives transactions through it without depending on GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	// GeographyRepo returns a GeographyRepository bound to the current transaction.
	GeographyRepo() GeographyRepository

	// TravelerRepo returns a TravelerRepository bound to the current transaction.
	TravelerRepo() TravelerRepository

	// ItineraryRepo returns an ItineraryRepository bound to the current transaction.
	ItineraryRepo() ItineraryRepository

	// EvacuationRepo returns an EvacuationRepository bound to the current transaction.
	EvacuationRepo() EvacuationRepository

	// NotificationRepo returns a NotificationRepository bound to the current transaction.
	NotificationRepo() NotificationRepository
}
