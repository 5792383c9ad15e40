// Package entity contains the core business objects of the project.
package entity

import "time"

// Traveler is a registered citizen abroad, identified by PESEL.
type Traveler struct {
	Pesel       string      // National identification number, the natural key.
	FirstName   string      // Given name.
	LastName    string      // Family name.
	Email       string      // Contact email, used by the email channel.
	PhoneNumber string      // Contact phone, used by the sms channel.
	Login       string      // Login name in the case-management application.
	Preferences Preferences // Channel opt-in flags.
	CreatedAt   time.Time   // Timestamp of when the traveler was registered.
	UpdatedAt   time.Time   // Timestamp of the last modification.
}

// Preferences are the per-traveler channel opt-in flags.
// They gate external delivery only; the in-app notification is always recorded.
type Preferences struct {
	SMS   bool `json:"sms"`
	Email bool `json:"email"`
	Push  bool `json:"push"`
}

// DefaultPreferences are applied when a traveler registers.
func DefaultPreferences() Preferences {
	return Preferences{Push: true}
}
