package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// The (evacuation_id, traveler_pesel) unique index makes fan-out idempotent.
// There is intentionally no foreign key to evacuations: notifications outlive them.
type NotificationModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TravelerPesel string         `gorm:"type:varchar(11);not null;index;uniqueIndex:idx_notifications_evacuation_traveler,priority:2"`
	EvacuationID  *uint          `gorm:"uniqueIndex:idx_notifications_evacuation_traveler,priority:1"`
	Message       string         `gorm:"type:text;not null"`
	CreatedAt     time.Time      `gorm:"not null;index"`
	IsRead        bool           `gorm:"not null;default:false"`
	Traveler      *TravelerModel `gorm:"foreignKey:TravelerPesel;references:Pesel;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// RecipientModel is the projection of a notification joined with its traveler's channels.
type RecipientModel struct {
	TravelerPesel  string
	NotificationID uuid.UUID
	Email          string
	PhoneNumber    string
	PrefSMS        bool
	PrefEmail      bool
	PrefPush       bool
}
