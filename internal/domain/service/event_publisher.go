package service

import (
	"context"
	"time"
)

// EvacuationEvent announces a change to an evacuation to the dispatch worker.
type EvacuationEvent struct {
	RequestID    string     `json:"request_id,omitempty"` // For distributed tracing
	Type         string     `json:"type"`                 // constants.EventTypeEvacuation*
	EvacuationID uint       `json:"evacuation_id"`
	EffectiveAt  *time.Time `json:"effective_at,omitempty"`
	Affected     int        `json:"affected_count"`
	Notified     int        `json:"notified_count"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEvacuationEvent publishes an evacuation event for async processing
	PublishEvacuationEvent(ctx context.Context, event *EvacuationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
