// Package entity contains the core business objects of the project.
package entity

// AffectedSet is the result of presence resolution: identities only, never snapshots.
type AffectedSet struct {
	TravelerPesels []string `json:"traveler_pesels"` // Sorted, deduplicated.
	TripIDs        []uint   `json:"trip_ids"`        // Trips whose stages matched.
	Label          string   `json:"location_label"`  // City or country name used in alert text.
}

// Count returns the number of affected travelers.
func (s *AffectedSet) Count() int {
	if s == nil {
		return 0
	}

	return len(s.TravelerPesels)
}
