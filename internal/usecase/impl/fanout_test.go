package impl

import (
	"context"
	"testing"

	"evacuation/config"
	"evacuation/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAlertMessage(t *testing.T) {
	msg := alertMessage("Powódź", "Paryż", "Wylała Sekwana")

	assert.Equal(t, "ALERT [Powódź]: W Paryż wystąpiło zagrożenie: Wylała Sekwana. Postępuj zgodnie z instrukcjami.", msg)
}

func TestNewFanout_Defaults(t *testing.T) {
	f := newFanout(nil)
	assert.Equal(t, 1, f.workers)
	assert.Zero(t, f.batchSize)

	f = newFanout(&config.DispatchConfig{Workers: 8, BatchSize: 50})
	assert.Equal(t, 8, f.workers)
	assert.Equal(t, 50, f.batchSize)
}

func TestFanout_Dispatch_OneNotificationPerTraveler(t *testing.T) {
	fx := newTxFixture(t)
	f := newFanout(&config.DispatchConfig{Workers: 2, BatchSize: 100})

	ctx := context.Background()
	evacuation := &entity.Evacuation{ID: 11, ActionName: "Powódź", EventDescription: "Wylała Sekwana"}
	affected := &entity.AffectedSet{
		TravelerPesels: []string{"85051523456", "90010112349"},
		TripIDs:        []uint{2, 4},
		Label:          "Paryż",
	}

	var inserted []*entity.Notification
	fx.notificationRepo.EXPECT().
		InsertDispatchBatch(ctx, mock.AnythingOfType("[]*entity.Notification"), 100).
		Run(func(_ context.Context, notifications []*entity.Notification, _ int) {
			inserted = notifications
		}).
		Return(int64(2), nil)

	fx.itineraryRepo.EXPECT().
		LinkTripsToEvacuation(ctx, []uint{2, 4}, uint(11)).
		Return(int64(2), nil)

	result, err := f.dispatch(ctx, fx.factory, evacuation, affected)
	require.NoError(t, err)
	assert.Equal(t, uint(11), result.EvacuationID)
	assert.Equal(t, 2, result.AffectedCount)
	assert.Equal(t, 2, result.NotifiedCount)
	assert.Equal(t, "Paryż", result.LocationLabel)

	require.Len(t, inserted, 2)
	for i, n := range inserted {
		assert.Equal(t, affected.TravelerPesels[i], n.TravelerPesel)
		require.NotNil(t, n.EvacuationID)
		assert.Equal(t, uint(11), *n.EvacuationID)
		assert.Equal(t, "ALERT [Powódź]: W Paryż wystąpiło zagrożenie: Wylała Sekwana. Postępuj zgodnie z instrukcjami.", n.Message)
		assert.NotEqual(t, uuid.Nil, n.ID)
		assert.Equal(t, uuid.Version(7), n.ID.Version())
		assert.False(t, n.IsRead)
	}
	assert.NotEqual(t, inserted[0].ID, inserted[1].ID)
}

func TestFanout_Dispatch_AlreadyNotifiedAreNotCounted(t *testing.T) {
	fx := newTxFixture(t)
	f := newFanout(nil)

	ctx := context.Background()
	evacuation := &entity.Evacuation{ID: 11, ActionName: "Powódź", EventDescription: "Wylała Sekwana"}
	affected := &entity.AffectedSet{
		TravelerPesels: []string{"85051523456", "90010112349"},
		TripIDs:        []uint{2, 4},
		Label:          "Paryż",
	}

	fx.notificationRepo.EXPECT().
		InsertDispatchBatch(ctx, mock.Anything, 0).
		Return(int64(0), nil)
	fx.itineraryRepo.EXPECT().
		LinkTripsToEvacuation(ctx, []uint{2, 4}, uint(11)).
		Return(int64(0), nil)

	result, err := f.dispatch(ctx, fx.factory, evacuation, affected)
	require.NoError(t, err)
	assert.Equal(t, 2, result.AffectedCount)
	assert.Zero(t, result.NotifiedCount)
}

func TestFanout_Dispatch_EmptyAffectedSetWritesNothing(t *testing.T) {
	fx := newTxFixture(t)
	f := newFanout(nil)

	result, err := f.dispatch(context.Background(), fx.factory, &entity.Evacuation{ID: 3}, &entity.AffectedSet{Label: "Lyon"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), result.EvacuationID)
	assert.Zero(t, result.AffectedCount)
	assert.Zero(t, result.NotifiedCount)
	assert.Equal(t, "Lyon", result.LocationLabel)
}

func TestFanout_Dispatch_InsertFailure(t *testing.T) {
	fx := newTxFixture(t)
	f := newFanout(nil)

	ctx := context.Background()
	storeErr := errors.New("insert failed")

	fx.notificationRepo.EXPECT().
		InsertDispatchBatch(ctx, mock.Anything, 0).
		Return(int64(0), storeErr)

	_, err := f.dispatch(ctx, fx.factory, &entity.Evacuation{ID: 3}, &entity.AffectedSet{
		TravelerPesels: []string{"90010112349"},
		TripIDs:        []uint{1},
		Label:          "Lyon",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}

func TestFanout_Build_CanceledContext(t *testing.T) {
	f := newFanout(&config.DispatchConfig{Workers: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.build(ctx, &entity.Evacuation{ID: 1}, &entity.AffectedSet{TravelerPesels: []string{"90010112349"}}, testNow())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
