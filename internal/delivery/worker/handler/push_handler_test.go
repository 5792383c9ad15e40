package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"evacuation/config"
	deliverycontext "evacuation/internal/delivery/context"
	"evacuation/internal/domain/constants"
	"evacuation/internal/domain/entity"
	domainerrors "evacuation/internal/domain/errors"
	"evacuation/internal/domain/service"
	mockUsecase "evacuation/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockEvacuationUsecase) {
	if cfg == nil {
		cfg = &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
		cfg.Env.Env = constants.EnvDevelop
	}

	evacuationUC := mockUsecase.NewMockEvacuationUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		EvacuationUC: evacuationUC,
	})

	return h, evacuationUC
}

func pushBody(t *testing.T, event *service.EvacuationEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	msg := PushRequest{
		Message: PushedMessage{
			Data:       base64.StdEncoding.EncodeToString(data),
			MessageID:  "msg-1",
			Attributes: attributes,
		},
		Subscription: "projects/test/subscriptions/evacuation-events",
	}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, headers ...string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_UpdatedEventRedispatches(t *testing.T) {
	h, evacuationUC := newTestPushHandler(t, nil)

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	evacuationUC.EXPECT().
		Redispatch(mock.Anything, uint(5), mock.MatchedBy(func(got *time.Time) bool {
			return got != nil && got.Equal(at)
		})).
		Run(func(ctx context.Context, _ uint, _ *time.Time) {
			assert.Equal(t, "req-123", deliverycontext.GetRequestIDFromContext(ctx))
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
		}).
		Return(&entity.DispatchResult{EvacuationID: 5, AffectedCount: 3, NotifiedCount: 1}, nil)

	rec := servePush(h, pushBody(t, &service.EvacuationEvent{
		Type:         constants.EventTypeEvacuationUpdated,
		EvacuationID: 5,
		EffectiveAt:  &at,
	}, map[string]string{"request_id": "req-123"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RequestIDFallsBackToPayload(t *testing.T) {
	h, evacuationUC := newTestPushHandler(t, nil)

	evacuationUC.EXPECT().
		Redispatch(mock.Anything, uint(5), (*time.Time)(nil)).
		Run(func(ctx context.Context, _ uint, _ *time.Time) {
			assert.Equal(t, "from-payload", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(&entity.DispatchResult{EvacuationID: 5}, nil)

	rec := servePush(h, pushBody(t, &service.EvacuationEvent{
		RequestID:    "from-payload",
		Type:         constants.EventTypeEvacuationUpdated,
		EvacuationID: 5,
	}, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_AcknowledgedWithoutRedispatch(t *testing.T) {
	for _, eventType := range []string{constants.EventTypeEvacuationDispatched, "evacuation.archived"} {
		t.Run(eventType, func(t *testing.T) {
			h, _ := newTestPushHandler(t, nil)

			rec := servePush(h, pushBody(t, &service.EvacuationEvent{
				Type: eventType, EvacuationID: 5, Affected: 2, Notified: 2,
			}, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPushHandler_RedispatchFailures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "closed evacuation is final",
			err:      errors.Wrap(domainerrors.ErrEvacuationClosed, "evacuation is canceled"),
			wantCode: http.StatusOK,
		},
		{
			name:     "deleted evacuation is final",
			err:      errors.Wrap(domainerrors.ErrEvacuationNotFound, "evacuation not found"),
			wantCode: http.StatusOK,
		},
		{
			name:     "transaction failure is retried",
			err:      errors.Wrap(domainerrors.ErrTransactionFailed, "commit failed"),
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:     "unknown failure is retried",
			err:      errors.New("connection refused"),
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, evacuationUC := newTestPushHandler(t, nil)

			evacuationUC.EXPECT().Redispatch(mock.Anything, uint(5), mock.Anything).Return(nil, tt.err)

			rec := servePush(h, pushBody(t, &service.EvacuationEvent{
				Type: constants.EventTypeEvacuationUpdated, EvacuationID: 5,
			}, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_UpdatedEventWithoutID(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)

	rec := servePush(h, pushBody(t, &service.EvacuationEvent{Type: constants.EventTypeEvacuationUpdated}, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"message":`},
		{name: "bad base64", body: `{"message":{"data":"%%%"}}`},
		{name: "payload not json", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("plain text")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, nil)

			rec := servePush(h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_TokenVerification(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = "production"

	validPayload := &idtoken.Payload{
		Issuer: "https://accounts.google.com",
		Claims: map[string]any{"email_verified": true},
	}

	tests := []struct {
		name      string
		header    string
		payload   *idtoken.Payload
		verifyErr error
		wantCode  int
	}{
		{name: "missing header", wantCode: http.StatusUnauthorized},
		{name: "not a bearer token", header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "rejected token", header: "Bearer bad", verifyErr: errors.New("token expired"), wantCode: http.StatusUnauthorized},
		{
			name:     "foreign issuer",
			header:   "Bearer ok",
			payload:  &idtoken.Payload{Issuer: "https://evil.example.com"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "unverified email",
			header:   "Bearer ok",
			payload:  &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantCode: http.StatusUnauthorized,
		},
		{name: "valid token", header: "Bearer ok", payload: validPayload, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, cfg)
			require.NotNil(t, h.auth)

			h.auth.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, strings.TrimPrefix(tt.header, "Bearer "), token)
				assert.Equal(t, "http://example.com/push", audience)

				return tt.payload, tt.verifyErr
			}

			var headers []string
			if tt.header != "" {
				headers = []string{echo.HeaderAuthorization, tt.header}
			}

			rec := servePush(h, pushBody(t, &service.EvacuationEvent{
				Type: constants.EventTypeEvacuationDispatched, EvacuationID: 5,
			}, nil), headers...)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestNewPushHandler_Defaults(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)
	assert.Nil(t, h.auth)
	assert.Equal(t, defaultRedispatchTimeout, h.redispatchTimeout)

	cfg := &config.Config{Worker: &config.WorkerConfig{RedispatchTimeout: 5 * time.Second}}
	h, _ = newTestPushHandler(t, cfg)
	assert.Nil(t, h.auth)
	assert.Equal(t, 5*time.Second, h.redispatchTimeout)
}
