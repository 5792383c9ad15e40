package handler

import (
	"log/slog"
	"net/http"

	"evacuation/internal/delivery/api/middleware"
	"evacuation/internal/delivery/api/response"
	"evacuation/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves traveler feeds and the operator notification log.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListAll returns notifications filtered by traveler_pesel, evacuation_id and unread_only.
func (h *NotificationHandler) ListAll(c echo.Context) error {
	var (
		input        usecase.ListNotificationsInput
		pesel        string
		evacuationID uint
	)

	err := echo.QueryParamsBinder(c).
		String("traveler_pesel", &pesel).
		Uint("evacuation_id", &evacuationID).
		Bool("unread_only", &input.UnreadOnly).
		Int("limit", &input.Limit).
		Int("offset", &input.Offset).
		BindError()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Nieprawidłowe parametry zapytania")
	}

	if pesel != "" {
		input.TravelerPesel = &pesel
	}
	if evacuationID != 0 {
		input.EvacuationID = &evacuationID
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	notifications, err := h.notificationUC.ListAll(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// CreateDirect records an operator message for a single traveler.
func (h *NotificationHandler) CreateDirect(c echo.Context) error {
	var req usecase.CreateNotificationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Nieprawidłowe dane powiadomienia")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	notification, err := h.notificationUC.CreateDirect(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, notification)
}

// MarkRead flags a notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Nieprawidłowy identyfikator powiadomienia")
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": id, "is_read": true})
}

// ListForTraveler returns the feed of the traveler named in the path.
func (h *NotificationHandler) ListForTraveler(c echo.Context) error {
	return h.feed(c, c.Param("pesel"))
}

// ListMine returns the feed of the calling traveler.
func (h *NotificationHandler) ListMine(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return response.Unauthorized(c, "PRINCIPAL_REQUIRED", "Wymagana tożsamość podróżnego")
	}

	return h.feed(c, principal.Pesel)
}

func (h *NotificationHandler) feed(c echo.Context, pesel string) error {
	notifications, err := h.notificationUC.ListForTraveler(c.Request().Context(), pesel)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}
