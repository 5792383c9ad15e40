package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"evacuation/internal/domain/constants"
	"evacuation/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishEvacuationEvent(t *testing.T) {
	var (
		received  PushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.EvacuationEvent{
		RequestID:    "req-1",
		Type:         constants.EventTypeEvacuationUpdated,
		EvacuationID: 42,
	}

	err := publisher.PublishEvacuationEvent(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)
	assert.Equal(t, constants.EventTypeEvacuationUpdated, received.Message.Attributes[AttrEventType])
	assert.Equal(t, "42", received.Message.Attributes[AttrEvacuationID])
	assert.Equal(t, "req-1", received.Message.Attributes[AttrRequestID])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.EvacuationEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, uint(42), decoded.EvacuationID)
	assert.Equal(t, constants.EventTypeEvacuationUpdated, decoded.Type)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishEvacuationEvent(context.Background(), &service.EvacuationEvent{
		Type:         constants.EventTypeEvacuationDispatched,
		EvacuationID: 1,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "answered 503")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	attrs := eventAttributes(&service.EvacuationEvent{
		Type:         constants.EventTypeEvacuationDispatched,
		EvacuationID: 7,
	})

	assert.Equal(t, map[string]string{
		AttrEventType:    constants.EventTypeEvacuationDispatched,
		AttrEvacuationID: "7",
	}, attrs)
}
