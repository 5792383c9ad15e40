package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"evacuation/internal/domain/repository"
	mockRepo "evacuation/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// txFixture runs every Execute callback against one mocked repository factory.
type txFixture struct {
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	geographyRepo    *mockRepo.MockGeographyRepository
	travelerRepo     *mockRepo.MockTravelerRepository
	itineraryRepo    *mockRepo.MockItineraryRepository
	evacuationRepo   *mockRepo.MockEvacuationRepository
	notificationRepo *mockRepo.MockNotificationRepository
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()

	fx := &txFixture{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		geographyRepo:    mockRepo.NewMockGeographyRepository(t),
		travelerRepo:     mockRepo.NewMockTravelerRepository(t),
		itineraryRepo:    mockRepo.NewMockItineraryRepository(t),
		evacuationRepo:   mockRepo.NewMockEvacuationRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
	}

	fx.factory.EXPECT().GeographyRepo().Return(fx.geographyRepo).Maybe()
	fx.factory.EXPECT().TravelerRepo().Return(fx.travelerRepo).Maybe()
	fx.factory.EXPECT().ItineraryRepo().Return(fx.itineraryRepo).Maybe()
	fx.factory.EXPECT().EvacuationRepo().Return(fx.evacuationRepo).Maybe()
	fx.factory.EXPECT().NotificationRepo().Return(fx.notificationRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		}).
		Maybe()

	return fx
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func uintPtr(v uint) *uint {
	return &v
}

func testNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}
