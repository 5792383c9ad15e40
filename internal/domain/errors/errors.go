// Package errors declares the failures the API reports to clients. Each one
// carries its HTTP status, a stable machine code and a Polish message.
package errors

import (
	"net/http"

	"evacuation/internal/errors"
)

// AppError is implemented by every error that maps onto an API problem response.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WrapMessage prefixes the error with internal context; errors.Is still matches e.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithDetails returns a copy that reports details to the client.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

func notFound(code, message string) *BaseError {
	return NewBaseError(http.StatusNotFound, code, message, "")
}

func badRequest(code, message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, code, message, "")
}

func conflict(code, message string) *BaseError {
	return NewBaseError(http.StatusConflict, code, message, "")
}

func internal(code, message string) *BaseError {
	return NewBaseError(http.StatusInternalServerError, code, message, "")
}

var (
	ErrEvacuationNotFound      = notFound("EVACUATION_NOT_FOUND", "Nie znaleziono ewakuacji")
	ErrEvacuationClosed        = badRequest("EVACUATION_CLOSED", "Ewakuacja została zakończona lub anulowana")
	ErrInvalidStatusTransition = badRequest("INVALID_STATUS_TRANSITION", "Niedozwolona zmiana statusu ewakuacji")

	ErrScopeNotFound = notFound("SCOPE_NOT_FOUND", "Nie znaleziono wskazanego kraju lub miasta")
	// Reported under the generic validation code.
	ErrInvalidScope = badRequest("VALIDATION_FAILED", "Należy podać dokładnie jedno z pól: country_id lub city_id")

	ErrTravelerNotFound      = notFound("TRAVELER_NOT_FOUND", "Nie znaleziono podróżnego")
	ErrTravelerAlreadyExists = conflict("TRAVELER_ALREADY_EXISTS", "Podróżny o tym numerze PESEL jest już zarejestrowany")

	ErrNotificationNotFound      = notFound("NOTIFICATION_NOT_FOUND", "Nie znaleziono powiadomienia")
	ErrNotificationAlreadyExists = conflict("NOTIFICATION_ALREADY_EXISTS", "Podróżny otrzymał już powiadomienie dla tej ewakuacji")

	ErrValidationFailed  = badRequest("VALIDATION_FAILED", "Walidacja danych wejściowych nie powiodła się")
	ErrTransactionFailed = internal("TRANSACTION_FAILED", "Transakcja bazodanowa nie powiodła się")
	ErrInternalError     = internal("INTERNAL_ERROR", "Wewnętrzny błąd systemu")
	ErrNotFound          = notFound("NOT_FOUND", "Nie znaleziono zasobu")
	ErrConflict          = conflict("CONFLICT", "Konflikt zasobów")
)

// DatabaseExecuteError reports a failed statement. The driver error stays
// reachable through Unwrap but never reaches the client.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Błąd wykonania zapytania do bazy danych" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
