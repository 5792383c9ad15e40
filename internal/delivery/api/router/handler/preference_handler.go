package handler

import (
	"net/http"

	"evacuation/internal/delivery/api/response"
	"evacuation/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PreferenceHandlerParams holds dependencies for PreferenceHandler, injected by Fx.
type PreferenceHandlerParams struct {
	fx.In

	PreferenceUC usecase.PreferenceUsecase
}

// PreferenceHandler reads and writes channel preferences of a traveler.
type PreferenceHandler struct {
	preferenceUC usecase.PreferenceUsecase
}

// NewPreferenceHandler is the constructor for PreferenceHandler.
func NewPreferenceHandler(params PreferenceHandlerParams) *PreferenceHandler {
	return &PreferenceHandler{preferenceUC: params.PreferenceUC}
}

// Get returns the channel flags of a traveler.
func (h *PreferenceHandler) Get(c echo.Context) error {
	prefs, err := h.preferenceUC.GetPreferences(c.Request().Context(), c.Param("pesel"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs)
}

// Set overwrites the channel flags of a traveler. Omitted flags become false.
func (h *PreferenceHandler) Set(c echo.Context) error {
	var req usecase.SetPreferencesInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Nieprawidłowe preferencje")
	}

	prefs, err := h.preferenceUC.SetPreferences(c.Request().Context(), c.Param("pesel"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs)
}
