// Package entity contains the core business objects of the project.
package entity

// Country is the root geographic unit.
type Country struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// City belongs to exactly one Country.
type City struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	CountryID uint   `json:"country_id"`
}

// Location is a physical address within a City.
type Location struct {
	ID      uint   `json:"id"`
	Address string `json:"address"`
	CityID  uint   `json:"city_id"`
}
