// Package apperr defines the failure kinds shared by the domain services and
// their mapping onto HTTP responses.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Failure kinds. Use errors.Is against these to classify an error.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrReferenceNotFound = errors.New("referenced entity not found")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrPersistence       = errors.New("persistence failure")
)

// Error is a classified failure. Entity and ID are set for NotFound and
// ReferenceNotFound.
type Error struct {
	Kind    error
	Message string
	Entity  string
	ID      int64
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// Invalid reports a client-fixable field-level problem.
func Invalid(format string, args ...interface{}) error {
	return &Error{Kind: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// ReferenceNotFound reports that a referenced entity id does not resolve.
func ReferenceNotFound(entity string, id int64) error {
	return &Error{
		Kind:    ErrReferenceNotFound,
		Message: fmt.Sprintf("%s with id %d not found", entity, id),
		Entity:  entity,
		ID:      id,
	}
}

// NotFound reports that the target resource itself is missing.
func NotFound(entity string, id int64) error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("%s with id %d not found", entity, id),
		Entity:  entity,
		ID:      id,
	}
}

// NotFoundBy reports a missing resource looked up by a non-id key.
func NotFoundBy(entity, field, value string) error {
	return &Error{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("%s with %s %s not found", entity, field, value),
		Entity:  entity,
	}
}

func Conflict(format string, args ...interface{}) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// Persistence wraps an unexpected store error. Errors that are already
// classified pass through unchanged.
func Persistence(op string, cause error) error {
	if cause == nil {
		return nil
	}
	var ae *Error
	if errors.As(cause, &ae) {
		return cause
	}
	return &Error{Kind: ErrPersistence, Message: op, Cause: cause}
}

// EntityOf returns the entity and id recorded on a classified error.
func EntityOf(err error) (string, int64, bool) {
	var ae *Error
	if errors.As(err, &ae) && ae.Entity != "" {
		return ae.Entity, ae.ID, true
	}
	return "", 0, false
}

// HTTPStatus maps an error to the status code a handler should respond with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrReferenceNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HTTPError converts err into an echo error. Persistence failures are not
// echoed to the client.
func HTTPError(err error) *echo.HTTPError {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		he := echo.NewHTTPError(status, "internal server error")
		return he.SetInternal(err)
	}
	return echo.NewHTTPError(status, err.Error())
}
