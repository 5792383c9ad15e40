package pubsub

import (
	"strconv"

	"evacuation/internal/domain/service"
)

// Message attribute keys shared by every provider.
const (
	AttrEventType    = "event_type"
	AttrEvacuationID = "evacuation_id"
	AttrRequestID    = "request_id"
)

// eventAttributes builds the attributes used for subscription filtering and tracing.
func eventAttributes(event *service.EvacuationEvent) map[string]string {
	attributes := map[string]string{
		AttrEventType:    event.Type,
		AttrEvacuationID: strconv.FormatUint(uint64(event.EvacuationID), 10),
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}
