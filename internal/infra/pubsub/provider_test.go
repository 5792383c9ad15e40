package pubsub

import (
	"context"
	"testing"
	"time"

	"evacuation/config"
	"evacuation/internal/domain/constants"
	"evacuation/internal/domain/service"
	servicemocks "evacuation/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newPublisherParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: newDiscardLogger(),
	}
}

func TestNewEventPublisher_DiscardsWhenUnconfigured(t *testing.T) {
	publisher, err := NewEventPublisher(newPublisherParams(t, nil))
	require.NoError(t, err)

	assert.IsType(t, discardPublisher{}, publisher)
	assert.NoError(t, publisher.PublishEvacuationEvent(context.Background(), &service.EvacuationEvent{
		Type:         constants.EventTypeEvacuationDispatched,
		EvacuationID: 1,
	}))
}

func TestNewEventPublisher_Local(t *testing.T) {
	publisher, err := NewEventPublisher(newPublisherParams(t, &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: "http://localhost:8081/push",
	}))
	require.NoError(t, err)

	bounded, ok := publisher.(*boundedPublisher)
	require.True(t, ok)
	assert.IsType(t, &pushRelay{}, bounded.inner)
	assert.Equal(t, defaultPublishTimeout, bounded.timeout)
}

func TestNewEventPublisher_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
		want string
	}{
		{
			name: "local without endpoint",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			want: "pubsub.localEndpoint is required",
		},
		{
			name: "google without project",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "evacuations"},
			want: "pubsub.projectId is required",
		},
		{
			name: "google without topic",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "consulate"},
			want: "pubsub.topicId is required",
		},
		{
			name: "unknown provider",
			cfg:  &config.PubSubConfig{Provider: "kafka"},
			want: `unknown pubsub provider "kafka"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(newPublisherParams(t, tt.cfg))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBoundedPublisher_DetachesFromCallerCancellation(t *testing.T) {
	inner := servicemocks.NewMockEventPublisher(t)
	event := &service.EvacuationEvent{Type: constants.EventTypeEvacuationUpdated, EvacuationID: 9}

	inner.EXPECT().PublishEvacuationEvent(mock.Anything, event).
		RunAndReturn(func(ctx context.Context, _ *service.EvacuationEvent) error {
			assert.NoError(t, ctx.Err())
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)

			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	publisher := &boundedPublisher{inner: inner, timeout: time.Minute}
	assert.NoError(t, publisher.PublishEvacuationEvent(ctx, event))
}

func TestBoundedPublisher_WrapsFailure(t *testing.T) {
	inner := servicemocks.NewMockEventPublisher(t)
	event := &service.EvacuationEvent{Type: constants.EventTypeEvacuationDispatched, EvacuationID: 3}
	brokerErr := errors.New("broker unavailable")

	inner.EXPECT().PublishEvacuationEvent(mock.Anything, event).Return(brokerErr)

	err := (&boundedPublisher{inner: inner, timeout: time.Second}).PublishEvacuationEvent(context.Background(), event)

	require.ErrorIs(t, err, brokerErr)
	assert.Contains(t, err.Error(), "publish "+constants.EventTypeEvacuationDispatched+" for evacuation 3")
}
