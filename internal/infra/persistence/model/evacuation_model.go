package model

import "time"

// EvacuationModel is the GORM-specific struct for the 'evacuations' table.
// Exactly one of CountryID and CityID is set.
type EvacuationModel struct {
	ID               uint       `gorm:"primaryKey"`
	ActionName       string     `gorm:"type:text;not null"`
	EventDescription string     `gorm:"type:text;not null"`
	StartDate        time.Time  `gorm:"not null"`
	EndDate          *time.Time `gorm:"check:chk_evacuations_dates,end_date IS NULL OR end_date >= start_date"`
	Status           string     `gorm:"type:text;not null;index"`
	CountryID        *uint      `gorm:"index;check:chk_evacuations_scope,(country_id IS NULL) <> (city_id IS NULL)"`
	CityID           *uint      `gorm:"index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (EvacuationModel) TableName() string {
	return "evacuations"
}

// EvacuationViewModel is the read projection of an evacuation joined with its scope names.
type EvacuationViewModel struct {
	EvacuationModel
	CountryName *string
	CityName    *string
}
