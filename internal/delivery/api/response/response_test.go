package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "evacuation/internal/delivery/context"
	domainerrors "evacuation/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-7")

	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]int{"id": 3}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":3},"meta":{"request_id":"req-7"}}`, rec.Body.String())
}

func TestError_DropsDetails(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantDetails bool
	}{
		{name: "bad request keeps details", status: http.StatusBadRequest, wantDetails: true},
		{name: "unauthorized", status: http.StatusUnauthorized},
		{name: "forbidden", status: http.StatusForbidden},
		{name: "server error", status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "komunikat", "Pesel: pesel"))

			var env Envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			require.NotNil(t, env.Error)
			assert.Equal(t, "CODE", env.Error.Code)
			assert.Equal(t, "req-7", env.Meta.RequestID)
			if tt.wantDetails {
				assert.Equal(t, "Pesel: pesel", env.Error.Details)
			} else {
				assert.Nil(t, env.Error.Details)
			}
		})
	}
}

func TestHandleAppError(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, errors.Wrap(domainerrors.ErrEvacuationNotFound, "get evacuation 4"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"EVACUATION_NOT_FOUND","message":"Nie znaleziono ewakuacji"},"meta":{"request_id":"req-7"}}`, rec.Body.String())
}

func TestHandleAppError_PassesThroughUnknown(t *testing.T) {
	c, rec := newContext()
	cause := errors.New("boom")

	err := HandleAppError(c, cause)

	require.ErrorIs(t, err, cause)
	assert.Zero(t, rec.Body.Len())
}
