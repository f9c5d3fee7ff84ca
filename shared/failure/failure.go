package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Kind    Kind   `json:"kind,omitempty"`
}

// Kind classifies booking failures so callers can branch without comparing messages.
type Kind string

const (
	KindCatalogUnavailable   Kind = "catalog_unavailable"
	KindSlotCheckUnavailable Kind = "slot_check_unavailable"
	KindSlotConflict         Kind = "slot_conflict"
	KindValidation           Kind = "validation"
	KindSubmissionInFlight   Kind = "submission_in_flight"
	KindNotification         Kind = "notification"
)

var SlotConflictError = &Failure{Code: http.StatusConflict, Message: "the selected time is no longer available, please choose another time", Kind: KindSlotConflict}
var SubmissionInFlightError = &Failure{Code: http.StatusConflict, Message: "a booking submission is already in progress", Kind: KindSubmissionInFlight}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// CatalogUnavailable returns a new Failure for locations or services that could not be fetched.
func CatalogUnavailable(err error) error {
	msg := "catalog is temporarily unavailable"
	if err != nil {
		msg = msg + ": " + err.Error()
	}

	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Message: msg,
		Kind:    KindCatalogUnavailable,
	}
}

// SlotCheckUnavailable returns a new Failure for a blocked-slot query that failed.
func SlotCheckUnavailable(err error) error {
	msg := "slot availability is temporarily unavailable"
	if err != nil {
		msg = msg + ": " + err.Error()
	}

	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Message: msg,
		Kind:    KindSlotCheckUnavailable,
	}
}

// Validation returns a new Failure for a single invalid field.
func Validation(field, msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Field:   field,
		Kind:    KindValidation,
	}
}

// NotificationFailure returns a new Failure for an admin notification that could not be delivered.
func NotificationFailure(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
		Kind:    KindNotification,
	}
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind == kind
	}

	return false
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
