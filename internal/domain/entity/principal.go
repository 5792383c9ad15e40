// Package entity contains the core business objects of the project.
package entity

// PrincipalKind tags which kind of person a Principal is.
type PrincipalKind string

const (
	// PrincipalTraveler is a registered traveler.
	PrincipalTraveler PrincipalKind = "traveler"
	// PrincipalEmployee is a consulate employee acting as operator.
	PrincipalEmployee PrincipalKind = "employee"
)

// String returns the string representation of the PrincipalKind.
func (k PrincipalKind) String() string {
	return string(k)
}

// IsValid checks if the PrincipalKind is a valid value.
func (k PrincipalKind) IsValid() bool {
	switch k {
	case PrincipalTraveler, PrincipalEmployee:
		return true
	default:
		return false
	}
}

// Principal is the caller of a request, resolved once at the HTTP boundary.
// Both kinds are keyed by PESEL.
type Principal struct {
	Kind  PrincipalKind
	Pesel string
}

// IsTraveler reports whether the principal is a traveler.
func (p Principal) IsTraveler() bool {
	return p.Kind == PrincipalTraveler
}

// IsEmployee reports whether the principal is an employee.
func (p Principal) IsEmployee() bool {
	return p.Kind == PrincipalEmployee
}
