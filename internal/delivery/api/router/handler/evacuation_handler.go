package handler

import (
	"log/slog"
	"net/http"
	"time"

	"evacuation/internal/delivery/api/response"
	"evacuation/internal/domain/entity"
	"evacuation/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EvacuationHandlerParams holds dependencies for EvacuationHandler, injected by Fx.
type EvacuationHandlerParams struct {
	fx.In

	EvacuationUC usecase.EvacuationUsecase
	Logger       *slog.Logger
}

// EvacuationHandler serves the operator endpoints of the evacuation lifecycle.
type EvacuationHandler struct {
	evacuationUC usecase.EvacuationUsecase
	logger       *slog.Logger
}

// NewEvacuationHandler is the constructor for EvacuationHandler.
func NewEvacuationHandler(params EvacuationHandlerParams) *EvacuationHandler {
	return &EvacuationHandler{
		evacuationUC: params.EvacuationUC,
		logger:       params.Logger,
	}
}

// RedispatchRequest optionally pins the presence instant of a re-evaluation.
type RedispatchRequest struct {
	At *time.Time `json:"at,omitempty"`
}

// DeleteEvacuationResponse reports whether a row was removed.
type DeleteEvacuationResponse struct {
	Deleted bool `json:"deleted"`
}

// Declare creates an evacuation and alerts every traveler present in its scope.
func (h *EvacuationHandler) Declare(c echo.Context) error {
	var req usecase.DeclareEvacuationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Nieprawidłowe dane ewakuacji")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	result, err := h.evacuationUC.Declare(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// Create persists a planned evacuation without dispatching.
func (h *EvacuationHandler) Create(c echo.Context) error {
	var req usecase.CreateEvacuationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Nieprawidłowe dane ewakuacji")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	view, err := h.evacuationUC.Create(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view)
}

// List returns evacuations, filtered by the optional status query parameter.
func (h *EvacuationHandler) List(c echo.Context) error {
	var status *entity.EvacuationStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.EvacuationStatus(raw)
		status = &s
	}

	views, err := h.evacuationUC.List(c.Request().Context(), status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, views)
}

// Get returns one evacuation.
func (h *EvacuationHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Nieprawidłowy identyfikator ewakuacji")
	}

	view, err := h.evacuationUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Update applies a partial update; JSON null clears a field.
func (h *EvacuationHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Nieprawidłowy identyfikator ewakuacji")
	}

	var req usecase.UpdateEvacuationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Nieprawidłowe dane ewakuacji")
	}

	view, err := h.evacuationUC.Update(c.Request().Context(), id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Delete hard-deletes an evacuation.
func (h *EvacuationHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Nieprawidłowy identyfikator ewakuacji")
	}

	deleted, err := h.evacuationUC.Delete(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DeleteEvacuationResponse{Deleted: deleted})
}

// Dispatch re-evaluates presence and alerts travelers who were not notified yet.
func (h *EvacuationHandler) Dispatch(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Nieprawidłowy identyfikator ewakuacji")
	}

	var req RedispatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Nieprawidłowe dane wysyłki")
	}

	result, err := h.evacuationUC.Redispatch(c.Request().Context(), id, req.At)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Recipients lists the notified travelers of an evacuation with their channels.
func (h *EvacuationHandler) Recipients(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Nieprawidłowy identyfikator ewakuacji")
	}

	recipients, err := h.evacuationUC.ListRecipients(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipients)
}
