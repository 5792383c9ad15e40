// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an alert recorded for one traveler. Only IsRead changes after creation.
type Notification struct {
	ID            uuid.UUID `json:"id"`             // The Global Unique Identifier (GUID) for the notification.
	TravelerPesel string    `json:"traveler_pesel"` // The traveler the alert is addressed to.
	EvacuationID  *uint     `json:"evacuation_id"`  // The evacuation that produced the alert, nil for direct messages.
	Message       string    `json:"message"`        // Human-readable alert text.
	CreatedAt     time.Time `json:"created_at"`     // Dispatch time.
	IsRead        bool      `json:"is_read"`        // Whether the traveler has read it.
}

// Recipient is a notified traveler together with the channels an external
// delivery collaborator may use for them.
type Recipient struct {
	TravelerPesel  string      `json:"traveler_pesel"`
	NotificationID uuid.UUID   `json:"notification_id"`
	Email          string      `json:"email"`
	PhoneNumber    string      `json:"phone_number"`
	Channels       Preferences `json:"channels"`
}

// DispatchResult summarizes one fan-out.
type DispatchResult struct {
	EvacuationID  uint   `json:"evacuation_id"`
	AffectedCount int    `json:"affected_count"` // Travelers present in scope at the effective instant.
	NotifiedCount int    `json:"notified_count"` // Notifications inserted by this call.
	LocationLabel string `json:"location_label"`
}
