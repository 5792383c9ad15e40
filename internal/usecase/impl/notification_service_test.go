package impl

import (
	"context"
	"testing"

	"evacuation/internal/domain/entity"
	domainerrors "evacuation/internal/domain/errors"
	"evacuation/internal/domain/repository"
	"evacuation/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	*txFixture
	service usecase.NotificationUsecase
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	tx := newTxFixture(t)

	return notificationServiceFixtures{
		txFixture: tx,
		service:   NewNotificationService(tx.txManager, discardLogger()),
	}
}

func TestNotificationService_ListForTraveler(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	pesel := "90010112349"
	feed := []*entity.Notification{
		{ID: uuid.New(), TravelerPesel: pesel, Message: "nowsze"},
		{ID: uuid.New(), TravelerPesel: pesel, Message: "starsze"},
	}

	fx.travelerRepo.EXPECT().FindByPesel(ctx, pesel).Return(&entity.Traveler{Pesel: pesel}, nil)
	fx.notificationRepo.EXPECT().FindByTraveler(ctx, pesel).Return(feed, nil)

	got, err := fx.service.ListForTraveler(ctx, pesel)
	require.NoError(t, err)
	assert.Equal(t, feed, got)
}

func TestNotificationService_ListForTraveler_UnknownTraveler(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	fx.travelerRepo.EXPECT().FindByPesel(ctx, "02210245675").Return(nil, repository.ErrTravelerNotFound)

	_, err := fx.service.ListForTraveler(ctx, "02210245675")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTravelerNotFound)
}

func TestNotificationService_MarkRead(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	known := uuid.New()
	missing := uuid.New()

	fx.notificationRepo.EXPECT().MarkRead(ctx, known).Return(nil)
	fx.notificationRepo.EXPECT().MarkRead(ctx, missing).Return(repository.ErrNotificationNotFound)

	require.NoError(t, fx.service.MarkRead(ctx, known))

	err := fx.service.MarkRead(ctx, missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_ListAll_PassesFilter(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	pesel := "90010112349"
	input := &usecase.ListNotificationsInput{
		TravelerPesel: &pesel,
		EvacuationID:  uintPtr(5),
		UnreadOnly:    true,
		Limit:         20,
		Offset:        40,
	}

	fx.notificationRepo.EXPECT().
		List(ctx, repository.NotificationFilter{
			TravelerPesel: &pesel,
			EvacuationID:  uintPtr(5),
			UnreadOnly:    true,
			Limit:         20,
			Offset:        40,
		}).
		Return([]*entity.Notification{}, nil)

	got, err := fx.service.ListAll(ctx, input)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNotificationService_ListAll_InvalidPagination(t *testing.T) {
	for _, input := range []*usecase.ListNotificationsInput{
		{Limit: -1},
		{Offset: -1},
		{Limit: maxNotificationPageSize + 1},
	} {
		fx := createTestNotificationService(t)

		_, err := fx.service.ListAll(context.Background(), input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestNotificationService_CreateDirect(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	pesel := "90010112349"

	fx.travelerRepo.EXPECT().FindByPesel(ctx, pesel).Return(&entity.Traveler{Pesel: pesel}, nil)
	fx.evacuationRepo.EXPECT().FindByID(ctx, uint(5)).Return(parisEvacuation(entity.EvacuationStatusInProgress), nil)
	fx.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)

	n, err := fx.service.CreateDirect(ctx, &usecase.CreateNotificationInput{
		TravelerPesel: pesel,
		Message:       " Proszę o kontakt z konsulatem ",
		EvacuationID:  uintPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), n.ID.Version())
	assert.Equal(t, "Proszę o kontakt z konsulatem", n.Message)
	assert.False(t, n.IsRead)
	require.NotNil(t, n.EvacuationID)
	assert.Equal(t, uint(5), *n.EvacuationID)
}

func TestNotificationService_CreateDirect_WithoutEvacuation(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	pesel := "90010112349"

	fx.travelerRepo.EXPECT().FindByPesel(ctx, pesel).Return(&entity.Traveler{Pesel: pesel}, nil)
	fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	n, err := fx.service.CreateDirect(ctx, &usecase.CreateNotificationInput{TravelerPesel: pesel, Message: "Wiadomość"})
	require.NoError(t, err)
	assert.Nil(t, n.EvacuationID)
}

func TestNotificationService_CreateDirect_Errors(t *testing.T) {
	pesel := "90010112349"

	t.Run("duplicate for evacuation", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()

		fx.travelerRepo.EXPECT().FindByPesel(ctx, pesel).Return(&entity.Traveler{Pesel: pesel}, nil)
		fx.evacuationRepo.EXPECT().FindByID(ctx, uint(5)).Return(parisEvacuation(entity.EvacuationStatusInProgress), nil)
		fx.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrNotificationAlreadyExists)

		_, err := fx.service.CreateDirect(ctx, &usecase.CreateNotificationInput{
			TravelerPesel: pesel, Message: "x", EvacuationID: uintPtr(5),
		})
		assert.ErrorIs(t, err, domainerrors.ErrNotificationAlreadyExists)
	})

	t.Run("unknown evacuation", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()

		fx.travelerRepo.EXPECT().FindByPesel(ctx, pesel).Return(&entity.Traveler{Pesel: pesel}, nil)
		fx.evacuationRepo.EXPECT().FindByID(ctx, uint(9)).Return(nil, repository.ErrEvacuationNotFound)

		_, err := fx.service.CreateDirect(ctx, &usecase.CreateNotificationInput{
			TravelerPesel: pesel, Message: "x", EvacuationID: uintPtr(9),
		})
		assert.ErrorIs(t, err, domainerrors.ErrEvacuationNotFound)
	})

	t.Run("unknown traveler", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()

		fx.travelerRepo.EXPECT().FindByPesel(ctx, pesel).Return(nil, repository.ErrTravelerNotFound)

		_, err := fx.service.CreateDirect(ctx, &usecase.CreateNotificationInput{TravelerPesel: pesel, Message: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrTravelerNotFound)
	})

	t.Run("empty message", func(t *testing.T) {
		fx := createTestNotificationService(t)

		_, err := fx.service.CreateDirect(context.Background(), &usecase.CreateNotificationInput{TravelerPesel: pesel, Message: " "})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}
