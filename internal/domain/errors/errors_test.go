package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrTravelerNotFound.WrapMessage("notification references unknown traveler")

	assert.ErrorIs(t, err, ErrTravelerNotFound)
	assert.Contains(t, err.Error(), "notification references unknown traveler")

	var appErr AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "TRAVELER_NOT_FOUND", appErr.ErrorCode())
}

func TestBaseError_WithDetailsCopies(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("Description: required")

	assert.Equal(t, "Description: required", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), detailed.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, detailed.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create trip")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to create trip", err.Details())
	assert.Equal(t, "database execution failed: connection reset", err.Error())
}

func TestPredefinedStatuses(t *testing.T) {
	tests := []struct {
		err  *BaseError
		want int
	}{
		{ErrEvacuationNotFound, http.StatusNotFound},
		{ErrEvacuationClosed, http.StatusBadRequest},
		{ErrInvalidStatusTransition, http.StatusBadRequest},
		{ErrInvalidScope, http.StatusBadRequest},
		{ErrTravelerAlreadyExists, http.StatusConflict},
		{ErrNotificationAlreadyExists, http.StatusConflict},
		{ErrTransactionFailed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPCode())
		})
	}
}
