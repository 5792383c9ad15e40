package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"evacuation/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

type topicPublisher struct {
	client *pubsub.Client
	topic  *pubsub.Publisher
	logger *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and checks that topicID exists
// before handing out a publisher for it.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrapf(err, "pubsub client for project %s", projectID)
	}

	name := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: name}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s", name)
	}

	logger = logger.With(slog.String("topic", name))
	logger.Info("Publishing evacuation events to Google Pub/Sub")

	return &topicPublisher{client: client, topic: client.Publisher(topicID), logger: logger}, nil
}

// PublishEvacuationEvent blocks until the broker acknowledges the message.
func (p *topicPublisher) PublishEvacuationEvent(ctx context.Context, event *service.EvacuationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	serverID, err := p.topic.Publish(ctx, &pubsub.Message{
		Data:       payload,
		Attributes: eventAttributes(event),
	}).Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.InfoContext(ctx, "Evacuation event published",
		slog.String("type", event.Type),
		slog.Uint64("evacuation_id", uint64(event.EvacuationID)),
		slog.String("message_id", serverID),
	)

	return nil
}

func (p *topicPublisher) Close() error {
	p.topic.Stop()

	return errors.WithStack(p.client.Close())
}
