package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"evacuation/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/evacuation-sub"

// PushMessage mirrors the envelope a Pub/Sub push subscription POSTs to its endpoint.
type PushMessage struct {
	Message      PushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

type PushedMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// pushRelay stands in for a push subscription during local development by
// delivering each event straight to the worker endpoint.
type pushRelay struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &pushRelay{
		endpoint: endpoint,
		client:   &http.Client{},
		logger:   logger.With(slog.String("endpoint", endpoint)),
	}
}

func (r *pushRelay) PublishEvacuationEvent(ctx context.Context, event *service.EvacuationEvent) error {
	body, err := r.envelope(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push endpoint answered %d", resp.StatusCode)
	}

	r.logger.InfoContext(ctx, "Evacuation event relayed",
		slog.String("type", event.Type),
		slog.Uint64("evacuation_id", uint64(event.EvacuationID)),
	)

	return nil
}

func (r *pushRelay) envelope(event *service.EvacuationEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	body, err := json.Marshal(PushMessage{
		Subscription: localSubscription,
		Message: PushedMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  eventAttributes(event),
			MessageID:   uuid.NewString(),
			PublishTime: time.Now().UTC().Format(time.RFC3339Nano),
		},
	})

	return body, errors.WithStack(err)
}

func (*pushRelay) Close() error {
	return nil
}
