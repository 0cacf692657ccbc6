// Package server provides the HTTP REST API for huntboard.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/alexr/huntboard/internal/types"
)

// ErrEmailAlreadyExists indicates the email is already registered.
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrNotFound indicates a requested record was not found.
type ErrNotFound struct {
	Kind string
	ID   uuid.UUID
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrInvalidStageTransition indicates a stage transition outside the
// pipeline enumeration.
type ErrInvalidStageTransition struct {
	From types.Stage
	To   types.Stage
}

func (e *ErrInvalidStageTransition) Error() string {
	return fmt.Sprintf("invalid stage transition from %s to %s", e.From, e.To)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrNotFound:
		return http.StatusNotFound
	case *ErrValidation, *ErrInvalidStageTransition:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
