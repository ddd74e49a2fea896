// Package apperrors defines the domain error values shared across usecases
// and their mapping to the HTTP error taxonomy.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email/password verification fails.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned when token verification fails.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrTokenRevoked is returned when a token is no longer present in the store.
	ErrTokenRevoked = errors.New("token has been revoked")
	// ErrForbidden is returned when the caller's role or ownership does not allow the operation.
	ErrForbidden = errors.New("operation not allowed for this user")
	// ErrSelfBookingOnly is returned when a patient books for someone else.
	ErrSelfBookingOnly = errors.New("patients can only book for themselves")

	// ErrEmailTaken is returned when the email unique constraint is violated.
	ErrEmailTaken = errors.New("email already registered")
	// ErrSlotUnavailable is returned when the (doctor, timestamp) slot is occupied.
	ErrSlotUnavailable = errors.New("slot is already booked for this doctor")

	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")
	// ErrBookingNotFound is returned when an appointment or exam lookup misses.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrExamNotFound is returned when the referenced exam does not exist.
	ErrExamNotFound = errors.New("exam not found")
	// ErrResultNotFound is returned when an exam result lookup misses.
	ErrResultNotFound = errors.New("exam result not found")
	// ErrPushTokenNotFound is returned when a push token lookup misses.
	ErrPushTokenNotFound = errors.New("push token not found")

	// ErrInvalidDoctor is returned when the doctor reference is missing or not a MEDICO.
	ErrInvalidDoctor = errors.New("invalid doctor")
	// ErrInvalidPatient is returned when the patient reference does not exist.
	ErrInvalidPatient = errors.New("invalid patient")
	// ErrInvalidStatus is returned when the status is not one of the enumerated values.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidRole is returned when the role is not one of the enumerated values.
	ErrInvalidRole = errors.New("invalid role")
	// ErrInvalidSchedule is returned when date/time cannot be combined.
	ErrInvalidSchedule = errors.New("invalid date or time")
)

// Error codes of the uniform error body.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeMissingToken       = "AUTH_MISSING_TOKEN"
	CodeInvalidToken       = "AUTH_INVALID_TOKEN"
	CodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	CodeForbidden          = "AUTH_FORBIDDEN"
	CodeNotFound           = "RESOURCE_NOT_FOUND"
	CodeRouteNotFound      = "ROUTE_NOT_FOUND"
	CodeConflict           = "RESOURCE_CONFLICT"
	CodeSlotUnavailable    = "SLOT_UNAVAILABLE"
	CodeInternal           = "INTERNAL_SERVER_ERROR"
)

// HTTPError pairs a taxonomy code with its status and message.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details interface{}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Validation builds a VALIDATION_ERROR carrying per-field details.
func Validation(details interface{}) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Code:    CodeValidation,
		Message: "validation failed",
		Details: details,
	}
}

// MapToHTTP maps domain errors to the HTTP taxonomy; unknown errors become a
// generic 500.
func MapToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return &HTTPError{Status: http.StatusUnauthorized, Code: CodeInvalidCredentials, Message: err.Error()}
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrTokenRevoked):
		return &HTTPError{Status: http.StatusUnauthorized, Code: CodeInvalidToken, Message: err.Error()}
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrSelfBookingOnly):
		return &HTTPError{Status: http.StatusForbidden, Code: CodeForbidden, Message: err.Error()}
	case errors.Is(err, ErrEmailTaken):
		return &HTTPError{Status: http.StatusConflict, Code: CodeConflict, Message: err.Error()}
	case errors.Is(err, ErrSlotUnavailable):
		return &HTTPError{Status: http.StatusConflict, Code: CodeSlotUnavailable, Message: err.Error()}
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrExamNotFound),
		errors.Is(err, ErrResultNotFound),
		errors.Is(err, ErrPushTokenNotFound):
		return &HTTPError{Status: http.StatusNotFound, Code: CodeNotFound, Message: err.Error()}
	case errors.Is(err, ErrInvalidDoctor),
		errors.Is(err, ErrInvalidPatient),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrInvalidSchedule):
		return &HTTPError{Status: http.StatusBadRequest, Code: CodeValidation, Message: err.Error()}
	default:
		return &HTTPError{Status: http.StatusInternalServerError, Code: CodeInternal, Message: "internal server error"}
	}
}
