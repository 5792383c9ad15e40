package handler

import (
	"net/http"
	"time"

	"evacuation/internal/delivery/api/response"
	"evacuation/internal/domain/entity"
	"evacuation/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PresenceHandlerParams holds dependencies for PresenceHandler, injected by Fx.
type PresenceHandlerParams struct {
	fx.In

	PresenceUC usecase.PresenceUsecase
}

// PresenceHandler previews who would be alerted for a scope without writing anything.
type PresenceHandler struct {
	presenceUC usecase.PresenceUsecase
}

// NewPresenceHandler is the constructor for PresenceHandler.
func NewPresenceHandler(params PresenceHandlerParams) *PresenceHandler {
	return &PresenceHandler{presenceUC: params.PresenceUC}
}

// PresenceResponse is the preview payload.
type PresenceResponse struct {
	Label          string   `json:"label"`
	Count          int      `json:"count"`
	TravelerPesels []string `json:"traveler_pesels"`
}

// Preview resolves presence for ?country_id= or ?city_id= at ?at= (RFC 3339, default now).
func (h *PresenceHandler) Preview(c echo.Context) error {
	var (
		countryID, cityID uint
		at                time.Time
	)

	err := echo.QueryParamsBinder(c).
		Uint("country_id", &countryID).
		Uint("city_id", &cityID).
		Time("at", &at, time.RFC3339).
		BindError()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Nieprawidłowe parametry zapytania")
	}

	var scope entity.Scope
	if countryID != 0 {
		scope.CountryID = &countryID
	}
	if cityID != 0 {
		scope.CityID = &cityID
	}

	affected, err := h.presenceUC.ResolveAffected(c.Request().Context(), scope, at)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	pesels := affected.TravelerPesels
	if pesels == nil {
		pesels = []string{}
	}

	return response.Success(c, http.StatusOK, PresenceResponse{
		Label:          affected.Label,
		Count:          affected.Count(),
		TravelerPesels: pesels,
	})
}
