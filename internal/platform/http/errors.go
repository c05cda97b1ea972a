package http

import (
	"net/http"
)

// Error is an error that knows which HTTP status it should be reported with.
// Details, when set, is serialised next to the message.
type Error struct {
	StatusCode int
	Message    string
	Details    any
	Err        error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithDetails returns a copy of e carrying details.
func (e *Error) WithDetails(details any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

func New(statusCode int, message string, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

func NewNotFound(message string, err error) *Error {
	return New(http.StatusNotFound, message, err)
}

func NewBadRequest(message string, err error) *Error {
	return New(http.StatusBadRequest, message, err)
}

func NewConflict(message string, err error) *Error {
	return New(http.StatusConflict, message, err)
}

func NewUnprocessableEntity(message string, err error) *Error {
	return New(http.StatusUnprocessableEntity, message, err)
}

func NewRequestTooLarge(message string, err error) *Error {
	return New(http.StatusRequestEntityTooLarge, message, err)
}

func NewServiceUnavailable(message string, err error) *Error {
	return New(http.StatusServiceUnavailable, message, err)
}

func NewInternalServerError(message string, err error) *Error {
	return New(http.StatusInternalServerError, message, err)
}
