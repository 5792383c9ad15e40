package model

import "time"

// TravelerModel is the GORM-specific struct for the 'travelers' table.
// Preference flags have no column default: the registering code decides them.
type TravelerModel struct {
	Pesel       string `gorm:"type:varchar(11);primaryKey"`
	FirstName   string `gorm:"type:text;not null"`
	LastName    string `gorm:"type:text;not null"`
	Email       string `gorm:"type:text"`
	PhoneNumber string `gorm:"type:text"`
	Login       string `gorm:"type:text;index"`
	PrefSMS     bool   `gorm:"column:pref_sms;not null"`
	PrefEmail   bool   `gorm:"column:pref_email;not null"`
	PrefPush    bool   `gorm:"column:pref_push;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TravelerModel) TableName() string {
	return "travelers"
}
