package model

// CountryModel is the GORM-specific struct for the 'countries' table.
type CountryModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:text;not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}

// CityModel is the GORM-specific struct for the 'cities' table.
type CityModel struct {
	ID        uint          `gorm:"primaryKey"`
	Name      string        `gorm:"type:text;not null"`
	CountryID uint          `gorm:"not null;index"`
	Country   *CountryModel `gorm:"foreignKey:CountryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}

// LocationModel is the GORM-specific struct for the 'locations' table.
// An address is unique within its city.
type LocationModel struct {
	ID      uint       `gorm:"primaryKey"`
	Address string     `gorm:"type:text;not null;uniqueIndex:idx_locations_city_address,priority:2"`
	CityID  uint       `gorm:"not null;uniqueIndex:idx_locations_city_address,priority:1"`
	City    *CityModel `gorm:"foreignKey:CityID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
