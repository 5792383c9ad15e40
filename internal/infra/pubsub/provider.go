package pubsub

import (
	"context"
	"log/slog"
	"time"

	"evacuation/config"
	"evacuation/internal/domain/constants"
	"evacuation/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPublishTimeout = 10 * time.Second

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher builds the publisher selected by pubsub.provider.
// Without a provider evacuation events are logged and dropped.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Evacuation events disabled, no pubsub provider configured")

		return discardPublisher{logger: params.Logger}, nil
	}
	if err := validatePubSubConfig(cfg); err != nil {
		return nil, err
	}

	inner, err := openPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	publisher := &boundedPublisher{inner: inner, timeout: timeout}

	params.Lc.Append(fx.StopHook(func() error {
		params.Logger.Info("Closing evacuation event publisher", slog.String("provider", cfg.Provider))

		return publisher.Close()
	}))

	return publisher, nil
}

func validatePubSubConfig(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return errors.New("pubsub.projectId is required for the google provider")
		}
		if cfg.TopicID == "" {
			return errors.New("pubsub.topicId is required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}

	return nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.Provider == constants.PubSubProviderGoogle {
		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	}

	return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
}

// boundedPublisher gives every publish its own deadline, detached from the
// caller's cancellation.
type boundedPublisher struct {
	inner   service.EventPublisher
	timeout time.Duration
}

func (p *boundedPublisher) PublishEvacuationEvent(ctx context.Context, event *service.EvacuationEvent) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	return errors.Wrapf(p.inner.PublishEvacuationEvent(ctx, event), "publish %s for evacuation %d", event.Type, event.EvacuationID)
}

func (p *boundedPublisher) Close() error {
	return p.inner.Close()
}

type discardPublisher struct {
	logger *slog.Logger
}

func (p discardPublisher) PublishEvacuationEvent(ctx context.Context, event *service.EvacuationEvent) error {
	p.logger.DebugContext(ctx, "Dropping evacuation event",
		slog.String("type", event.Type),
		slog.Uint64("evacuation_id", uint64(event.EvacuationID)),
	)

	return nil
}

func (discardPublisher) Close() error {
	return nil
}
