package usecases

import (
	"errors"
	"net/http"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// UseCaseError carries the HTTP status a handler should answer with.
type UseCaseError struct {
	Code    int
	Message string
	Err     error
}

func (e *UseCaseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *UseCaseError) Unwrap() error {
	return e.Err
}

func unauthorized(message string, err error) error {
	return &UseCaseError{Code: http.StatusUnauthorized, Message: message, Err: err}
}
