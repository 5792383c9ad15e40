package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "evacuation/internal/delivery/api/middleware"
	"evacuation/internal/delivery/api/router/handler"
	"evacuation/internal/delivery/api/validator"
	"evacuation/internal/domain/entity"
	domainerrors "evacuation/internal/domain/errors"
	mockUsecase "evacuation/internal/mocks/usecase"
	"evacuation/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixtures struct {
	echo           *echo.Echo
	evacuationUC   *mockUsecase.MockEvacuationUsecase
	notificationUC *mockUsecase.MockNotificationUsecase
	preferenceUC   *mockUsecase.MockPreferenceUsecase
	presenceUC     *mockUsecase.MockPresenceUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func createTestRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := routerFixtures{
		echo:           echo.New(),
		evacuationUC:   mockUsecase.NewMockEvacuationUsecase(t),
		notificationUC: mockUsecase.NewMockNotificationUsecase(t),
		preferenceUC:   mockUsecase.NewMockPreferenceUsecase(t),
		presenceUC:     mockUsecase.NewMockPresenceUsecase(t),
	}
	f.echo.Validator = validator.New()
	f.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		EvacuationHandler: handler.NewEvacuationHandler(handler.EvacuationHandlerParams{
			EvacuationUC: f.evacuationUC, Logger: logger,
		}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{
			NotificationUC: f.notificationUC, Logger: logger,
		}),
		PreferenceHandler:   handler.NewPreferenceHandler(handler.PreferenceHandlerParams{PreferenceUC: f.preferenceUC}),
		PresenceHandler:     handler.NewPresenceHandler(handler.PresenceHandlerParams{PresenceUC: f.presenceUC}),
		PrincipalMiddleware: apimiddleware.NewPrincipalMiddleware(),
	}).RegisterRoutes(f.echo)

	return f
}

func (f routerFixtures) do(t *testing.T, method, target, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func TestRouter_Health(t *testing.T) {
	f := createTestRouter(t)

	rec, env := f.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestRouter_DeclareEvacuation(t *testing.T) {
	f := createTestRouter(t)

	f.evacuationUC.EXPECT().
		Declare(mock.Anything, mock.MatchedBy(func(in *usecase.DeclareEvacuationInput) bool {
			return in.EventDescription == "Powódź" && in.CityID != nil && *in.CityID == 7 && in.CountryID == nil
		})).
		Return(&entity.DispatchResult{EvacuationID: 12, AffectedCount: 1, NotifiedCount: 1, LocationLabel: "Paryż"}, nil)

	rec, env := f.do(t, http.MethodPost, "/api/v1/evacuations/declare",
		`{"event_description":"Powódź","city_id":7}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var result entity.DispatchResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, uint(12), result.EvacuationID)
	assert.Equal(t, 1, result.NotifiedCount)
	assert.Equal(t, "Paryż", result.LocationLabel)
}

func TestRouter_DeclareEvacuation_MissingDescription(t *testing.T) {
	f := createTestRouter(t)

	rec, env := f.do(t, http.MethodPost, "/api/v1/evacuations/declare", `{"city_id":7}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestRouter_DeclareEvacuation_MalformedJSON(t *testing.T) {
	f := createTestRouter(t)

	rec, env := f.do(t, http.MethodPost, "/api/v1/evacuations/declare", `{"city_id":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestRouter_GetEvacuation(t *testing.T) {
	f := createTestRouter(t)

	f.evacuationUC.EXPECT().
		Get(mock.Anything, uint(404)).
		Return(nil, errors.Wrap(domainerrors.ErrEvacuationNotFound, "evacuation not found"))

	rec, env := f.do(t, http.MethodGet, "/api/v1/evacuations/404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "EVACUATION_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "Nie znaleziono ewakuacji", env.Error.Message)

	for _, id := range []string{"abc", "0", "-3"} {
		rec, env = f.do(t, http.MethodGet, "/api/v1/evacuations/"+id, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
		assert.Equal(t, "INVALID_ID", env.Error.Code, id)
	}
}

func TestRouter_ListEvacuations_StatusFilter(t *testing.T) {
	f := createTestRouter(t)

	status := entity.EvacuationStatusInProgress
	f.evacuationUC.EXPECT().
		List(mock.Anything, &status).
		Return([]*entity.EvacuationView{{Evacuation: entity.Evacuation{ID: 5, Status: status}}}, nil)

	rec, env := f.do(t, http.MethodGet, "/api/v1/evacuations?status=in_progress", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var views []entity.EvacuationView
	require.NoError(t, json.Unmarshal(env.Data, &views))
	require.Len(t, views, 1)
	assert.Equal(t, uint(5), views[0].ID)
}

func TestRouter_UpdateEvacuation_NullClearsField(t *testing.T) {
	f := createTestRouter(t)

	f.evacuationUC.EXPECT().
		Update(mock.Anything, uint(5), mock.MatchedBy(func(in *usecase.UpdateEvacuationInput) bool {
			return in.EndDate.Set && in.EndDate.Null &&
				in.Status.HasValue() && in.Status.Value == entity.EvacuationStatusInProgress &&
				!in.ActionName.Set
		})).
		Return(&entity.EvacuationView{Evacuation: entity.Evacuation{ID: 5, Status: entity.EvacuationStatusInProgress}}, nil)

	rec, _ := f.do(t, http.MethodPatch, "/api/v1/evacuations/5", `{"end_date":null,"status":"in_progress"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_DeleteEvacuation(t *testing.T) {
	f := createTestRouter(t)

	f.evacuationUC.EXPECT().Delete(mock.Anything, uint(5)).Return(true, nil)

	rec, env := f.do(t, http.MethodDelete, "/api/v1/evacuations/5", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":true}`, string(env.Data))
}

func TestRouter_Dispatch(t *testing.T) {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("pinned instant", func(t *testing.T) {
		f := createTestRouter(t)

		f.evacuationUC.EXPECT().
			Redispatch(mock.Anything, uint(5), mock.MatchedBy(func(got *time.Time) bool {
				return got != nil && got.Equal(at)
			})).
			Return(&entity.DispatchResult{EvacuationID: 5, AffectedCount: 2, NotifiedCount: 1}, nil)

		rec, _ := f.do(t, http.MethodPost, "/api/v1/evacuations/5/dispatch", `{"at":"2024-06-01T12:00:00Z"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no body means now", func(t *testing.T) {
		f := createTestRouter(t)

		f.evacuationUC.EXPECT().
			Redispatch(mock.Anything, uint(5), (*time.Time)(nil)).
			Return(&entity.DispatchResult{EvacuationID: 5}, nil)

		rec, _ := f.do(t, http.MethodPost, "/api/v1/evacuations/5/dispatch", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("closed evacuation", func(t *testing.T) {
		f := createTestRouter(t)

		f.evacuationUC.EXPECT().
			Redispatch(mock.Anything, uint(5), mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrEvacuationClosed, "evacuation is completed"))

		rec, env := f.do(t, http.MethodPost, "/api/v1/evacuations/5/dispatch", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "EVACUATION_CLOSED", env.Error.Code)
	})

	t.Run("unexpected failure", func(t *testing.T) {
		f := createTestRouter(t)

		f.evacuationUC.EXPECT().
			Redispatch(mock.Anything, uint(5), mock.Anything).
			Return(nil, errors.New("connection reset"))

		rec, env := f.do(t, http.MethodPost, "/api/v1/evacuations/5/dispatch", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, env.Error.Message, "connection reset")
	})
}

func TestRouter_Recipients(t *testing.T) {
	f := createTestRouter(t)

	f.evacuationUC.EXPECT().
		ListRecipients(mock.Anything, uint(5)).
		Return([]*entity.Recipient{{
			TravelerPesel: "90010112349",
			Email:         "anna@example.com",
			Channels:      entity.Preferences{Push: true},
		}}, nil)

	rec, env := f.do(t, http.MethodGet, "/api/v1/evacuations/5/recipients", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var recipients []entity.Recipient
	require.NoError(t, json.Unmarshal(env.Data, &recipients))
	require.Len(t, recipients, 1)
	assert.True(t, recipients[0].Channels.Push)
}

func TestRouter_PresencePreview(t *testing.T) {
	f := createTestRouter(t)

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	f.presenceUC.EXPECT().
		ResolveAffected(mock.Anything, entity.CityScope(7), mock.MatchedBy(func(got time.Time) bool {
			return got.Equal(at)
		})).
		Return(&entity.AffectedSet{TravelerPesels: []string{"85051523456", "90010112349"}, Label: "Paryż"}, nil)

	rec, env := f.do(t, http.MethodGet, "/api/v1/presence?city_id=7&at=2024-06-01T12:00:00Z", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var preview handler.PresenceResponse
	require.NoError(t, json.Unmarshal(env.Data, &preview))
	assert.Equal(t, 2, preview.Count)
	assert.Equal(t, "Paryż", preview.Label)
}

func TestRouter_PresencePreview_InvalidScope(t *testing.T) {
	f := createTestRouter(t)

	f.presenceUC.EXPECT().
		ResolveAffected(mock.Anything, entity.Scope{}, time.Time{}).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidScope, "scope must name exactly one of country or city"))

	rec, env := f.do(t, http.MethodGet, "/api/v1/presence", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

	rec, env = f.do(t, http.MethodGet, "/api/v1/presence?city_id=Paryz", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestRouter_ListNotifications_Filters(t *testing.T) {
	f := createTestRouter(t)

	pesel := "90010112349"
	evacuationID := uint(5)
	f.notificationUC.EXPECT().
		ListAll(mock.Anything, &usecase.ListNotificationsInput{
			TravelerPesel: &pesel,
			EvacuationID:  &evacuationID,
			UnreadOnly:    true,
			Limit:         10,
		}).
		Return([]*entity.Notification{}, nil)

	rec, env := f.do(t, http.MethodGet,
		"/api/v1/notifications?traveler_pesel=90010112349&evacuation_id=5&unread_only=true&limit=10", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	rec, env = f.do(t, http.MethodGet, "/api/v1/notifications?limit=1000", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestRouter_CreateDirectNotification_Conflict(t *testing.T) {
	f := createTestRouter(t)

	f.notificationUC.EXPECT().
		CreateDirect(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrNotificationAlreadyExists, "traveler already notified"))

	rec, env := f.do(t, http.MethodPost, "/api/v1/notifications",
		`{"traveler_pesel":"90010112349","message":"Proszę o kontakt","evacuation_id":5}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "NOTIFICATION_ALREADY_EXISTS", env.Error.Code)
}

func TestRouter_MarkNotificationRead(t *testing.T) {
	f := createTestRouter(t)

	id := uuid.Must(uuid.NewV7())
	f.notificationUC.EXPECT().MarkRead(mock.Anything, id).Return(nil)

	rec, env := f.do(t, http.MethodPost, "/api/v1/notifications/"+id.String()+"/read", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"`+id.String()+`","is_read":true}`, string(env.Data))

	rec, env = f.do(t, http.MethodPost, "/api/v1/notifications/not-a-uuid/read", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}

func TestRouter_TravelerPreferences(t *testing.T) {
	f := createTestRouter(t)

	sms := true
	f.preferenceUC.EXPECT().
		SetPreferences(mock.Anything, "90010112349", &usecase.SetPreferencesInput{SMS: &sms}).
		Return(&entity.Preferences{SMS: true}, nil)
	f.preferenceUC.EXPECT().
		GetPreferences(mock.Anything, "02210245675").
		Return(nil, errors.Wrap(domainerrors.ErrTravelerNotFound, "traveler not found"))

	rec, env := f.do(t, http.MethodPut, "/api/v1/travelers/90010112349/preferences", `{"sms":true}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sms":true,"email":false,"push":false}`, string(env.Data))

	rec, env = f.do(t, http.MethodGet, "/api/v1/travelers/02210245675/preferences", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "TRAVELER_NOT_FOUND", env.Error.Code)
}

func TestRouter_MyNotifications(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		wantCode int
		wantErr  string
	}{
		{
			name:     "anonymous",
			wantCode: http.StatusUnauthorized,
			wantErr:  "PRINCIPAL_REQUIRED",
		},
		{
			name:     "employee",
			headers:  []string{apimiddleware.HeaderPrincipalType, "employee", apimiddleware.HeaderPrincipalID, "85051523456"},
			wantCode: http.StatusForbidden,
			wantErr:  "TRAVELER_ONLY",
		},
		{
			name:     "unknown principal kind",
			headers:  []string{apimiddleware.HeaderPrincipalType, "admin", apimiddleware.HeaderPrincipalID, "85051523456"},
			wantCode: http.StatusUnauthorized,
			wantErr:  "INVALID_PRINCIPAL",
		},
		{
			name:     "kind without id",
			headers:  []string{apimiddleware.HeaderPrincipalType, "traveler"},
			wantCode: http.StatusUnauthorized,
			wantErr:  "INVALID_PRINCIPAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestRouter(t)

			rec, env := f.do(t, http.MethodGet, "/api/v1/me/notifications", "", tt.headers...)
			assert.Equal(t, tt.wantCode, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}

	t.Run("traveler sees own feed", func(t *testing.T) {
		f := createTestRouter(t)

		f.notificationUC.EXPECT().
			ListForTraveler(mock.Anything, "90010112349").
			Return([]*entity.Notification{{TravelerPesel: "90010112349", Message: "Alert"}}, nil)

		rec, env := f.do(t, http.MethodGet, "/api/v1/me/notifications", "",
			apimiddleware.HeaderPrincipalType, "Traveler", apimiddleware.HeaderPrincipalID, "90010112349")
		require.Equal(t, http.StatusOK, rec.Code)

		var feed []entity.Notification
		require.NoError(t, json.Unmarshal(env.Data, &feed))
		require.Len(t, feed, 1)
		assert.Equal(t, "Alert", feed[0].Message)
	})
}

func TestRouter_UnknownRoute(t *testing.T) {
	f := createTestRouter(t)

	rec, env := f.do(t, http.MethodGet, "/api/v1/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}
