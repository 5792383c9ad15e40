package middleware

import (
	"strings"

	"evacuation/internal/delivery/api/response"
	"evacuation/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderPrincipalType names the kind of caller, "traveler" or "employee".
	HeaderPrincipalType = "X-Principal-Type"
	// HeaderPrincipalID carries the caller's PESEL.
	HeaderPrincipalID = "X-Principal-Id"

	principalKey = "principal"
)

// PrincipalMiddleware resolves the caller identity forwarded by the front-end gateway.
type PrincipalMiddleware struct{}

// NewPrincipalMiddleware is the constructor for PrincipalMiddleware.
func NewPrincipalMiddleware() *PrincipalMiddleware {
	return &PrincipalMiddleware{}
}

// Resolve stores the principal in the echo context when both headers are present and valid.
// Requests without a principal pass through untouched.
func (m *PrincipalMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		kind := entity.PrincipalKind(strings.ToLower(strings.TrimSpace(c.Request().Header.Get(HeaderPrincipalType))))
		pesel := strings.TrimSpace(c.Request().Header.Get(HeaderPrincipalID))

		if kind == "" && pesel == "" {
			return next(c)
		}

		if !kind.IsValid() || pesel == "" {
			return response.Unauthorized(c, "INVALID_PRINCIPAL", "Nieprawidłowa tożsamość wywołującego")
		}

		c.Set(principalKey, entity.Principal{Kind: kind, Pesel: pesel})

		return next(c)
	}
}

// RequireTraveler rejects requests whose principal is not a traveler.
// It must be used AFTER Resolve.
func (m *PrincipalMiddleware) RequireTraveler(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, ok := GetPrincipal(c)
		if !ok {
			return response.Unauthorized(c, "PRINCIPAL_REQUIRED", "Wymagana tożsamość podróżnego")
		}

		if !principal.IsTraveler() {
			return response.Forbidden(c, "TRAVELER_ONLY", "Zasób dostępny tylko dla podróżnych")
		}

		return next(c)
	}
}

// GetPrincipal returns the principal resolved for the request.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	principal, ok := c.Get(principalKey).(entity.Principal)

	return principal, ok
}
