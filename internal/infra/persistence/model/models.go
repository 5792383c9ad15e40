// Package model holds the GORM persistence models.
package model

// All lists every persisted model, in dependency order.
func All() []any {
	return []any{
		&CountryModel{},
		&CityModel{},
		&LocationModel{},
		&TravelerModel{},
		&TripModel{},
		&StageModel{},
		&EvacuationModel{},
		&NotificationModel{},
	}
}
