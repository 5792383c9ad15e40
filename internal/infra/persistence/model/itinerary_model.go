package model

import "time"

// TripModel is the GORM-specific struct for the 'trips' table.
type TripModel struct {
	ID            uint           `gorm:"primaryKey"`
	Status        string         `gorm:"type:text;not null;default:'planned'"`
	TravelerPesel string         `gorm:"type:varchar(11);not null;index"`
	EvacuationID  *uint          `gorm:"index"`
	Traveler      *TravelerModel `gorm:"foreignKey:TravelerPesel;references:Pesel;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Stages        []StageModel   `gorm:"foreignKey:TripID"`
}

// TableName explicitly sets the table name for GORM.
func (TripModel) TableName() string {
	return "trips"
}

// StageModel is the GORM-specific struct for the 'stages' table.
// The (start_date, end_date) index serves the presence query.
type StageModel struct {
	ID         uint           `gorm:"primaryKey"`
	StartDate  time.Time      `gorm:"not null;index:idx_stages_interval,priority:1"`
	EndDate    time.Time      `gorm:"not null;index:idx_stages_interval,priority:2;check:chk_stages_dates,end_date >= start_date"`
	TripID     uint           `gorm:"not null;index"`
	LocationID uint           `gorm:"not null;index"`
	Location   *LocationModel `gorm:"foreignKey:LocationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (StageModel) TableName() string {
	return "stages"
}
