// Package handler handles Pub/Sub push deliveries for the dispatch worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"evacuation/config"
	deliverycontext "evacuation/internal/delivery/context"
	"evacuation/internal/domain/constants"
	domainerrors "evacuation/internal/domain/errors"
	"evacuation/internal/domain/service"
	"evacuation/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

const defaultRedispatchTimeout = 30 * time.Second

// PushRequest is the body of a Pub/Sub push delivery.
type PushRequest struct {
	Message      PushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

type PushedMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

func (m *PushedMessage) decodeEvent() (*service.EvacuationEvent, error) {
	raw, err := base64.StdEncoding.DecodeString(m.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	var event service.EvacuationEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, errors.Wrap(err, "message data is not an evacuation event")
	}

	return &event, nil
}

// errRedeliver marks a failure that Pub/Sub should retry.
type errRedeliver struct {
	cause error
}

func (e errRedeliver) Error() string { return "redeliver: " + e.cause.Error() }
func (e errRedeliver) Unwrap() error { return e.cause }

// PushHandler re-evaluates evacuations announced on the events topic.
type PushHandler struct {
	auth              *pushAuthenticator
	redispatchTimeout time.Duration
	logger            *slog.Logger
	evacuationUC      usecase.EvacuationUsecase
}

type PushHandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	EvacuationUC usecase.EvacuationUsecase
}

// NewPushHandler verifies push tokens only for the google provider outside develop.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config
	h := &PushHandler{
		redispatchTimeout: defaultRedispatchTimeout,
		logger:            params.Logger.With(slog.String("component", "push")),
		evacuationUC:      params.EvacuationUC,
	}
	if cfg.Worker != nil && cfg.Worker.RedispatchTimeout > 0 {
		h.redispatchTimeout = cfg.Worker.RedispatchTimeout
	}
	if cfg.PubSub != nil && cfg.PubSub.Provider == constants.PubSubProviderGoogle && cfg.Env.Env != constants.EnvDevelop {
		h.auth = &pushAuthenticator{validate: idtoken.Validate}
	}

	return h
}

// HandlePush answers 200 to acknowledge, 503 to ask for redelivery and 4xx
// for deliveries that can never succeed.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.auth != nil {
		if err := h.auth.verify(c.Request()); err != nil {
			h.logger.Warn("Rejected push delivery", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var req PushRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("Unreadable push body", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	event, err := req.Message.decodeEvent()
	if err != nil {
		h.logger.Error("Undecodable push message",
			slog.String("message_id", req.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, logger := deliverycontext.Scope(c.Request().Context(), h.logger, requestIDOf(c.Request().Context(), &req.Message, event))
	logger = logger.With(
		slog.String("type", event.Type),
		slog.Uint64("evacuation_id", uint64(event.EvacuationID)),
	)
	logger.Info("Evacuation event received", slog.String("message_id", req.Message.MessageID))

	err = h.handleEvent(ctx, logger, event)
	var redeliver errRedeliver
	switch {
	case err == nil:
		return c.NoContent(http.StatusOK)
	case errors.As(err, &redeliver):
		logger.Error("Evacuation event failed, asking for redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	default:
		logger.Error("Evacuation event dropped", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}
}

// requestIDOf takes the first of: message attribute, event payload, inbound
// request id, fresh id.
func requestIDOf(ctx context.Context, msg *PushedMessage, event *service.EvacuationEvent) string {
	for _, candidate := range []string{
		msg.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	} {
		if candidate != "" {
			return candidate
		}
	}

	return deliverycontext.NewRequestID()
}

func (h *PushHandler) handleEvent(ctx context.Context, logger *slog.Logger, event *service.EvacuationEvent) error {
	switch event.Type {
	case constants.EventTypeEvacuationUpdated:
		return h.redispatch(ctx, logger, event)
	case constants.EventTypeEvacuationDispatched:
		logger.Info("Dispatch already recorded",
			slog.Int("affected_count", event.Affected),
			slog.Int("notified_count", event.Notified),
		)
	default:
		logger.Warn("Unknown event type ignored")
	}

	return nil
}

// redispatch treats client-class domain errors as final; anything else may
// succeed on a later delivery.
func (h *PushHandler) redispatch(ctx context.Context, logger *slog.Logger, event *service.EvacuationEvent) error {
	if event.EvacuationID == 0 {
		return errors.New("updated event carries no evacuation id")
	}

	ctx, cancel := context.WithTimeout(ctx, h.redispatchTimeout)
	defer cancel()

	result, err := h.evacuationUC.Redispatch(ctx, event.EvacuationID, event.EffectiveAt)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
			return err
		}

		return errRedeliver{cause: err}
	}

	logger.Info("Evacuation re-evaluated",
		slog.Int("affected_count", result.AffectedCount),
		slog.Int("notified_count", result.NotifiedCount),
	)

	return nil
}
