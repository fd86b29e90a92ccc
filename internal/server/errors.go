// Package server provides the HTTP REST API for the resume matcher.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrJobPostingNotFound indicates the job posting does not exist
type ErrJobPostingNotFound struct {
	PostingID uuid.UUID
}

func (e *ErrJobPostingNotFound) Error() string {
	return fmt.Sprintf("job posting not found: %s", e.PostingID)
}

// ErrBatchTooLarge indicates a match request exceeded the résumé limit
type ErrBatchTooLarge struct {
	Count int
	Limit int
}

func (e *ErrBatchTooLarge) Error() string {
	return fmt.Sprintf("batch of %d resumes exceeds limit of %d", e.Count, e.Limit)
}

// ErrDocumentTooLarge indicates a single résumé exceeded the size limit
type ErrDocumentTooLarge struct {
	Position int
	Size     int
	Limit    int
}

func (e *ErrDocumentTooLarge) Error() string {
	return fmt.Sprintf("resume %d is %d bytes, exceeds limit of %d", e.Position, e.Size, e.Limit)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrJobPostingNotFound:
		return http.StatusNotFound
	case *ErrBatchTooLarge, *ErrDocumentTooLarge:
		return http.StatusRequestEntityTooLarge
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
