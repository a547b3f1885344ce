package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
)

// Detail points at the request field or resource path an error refers to.
type Detail struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Status  int      `json:"status"`
	Details []Detail `json:"details,omitempty"`
	Err     error    `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", http.StatusUnauthorized, "password is incorrect")
	ErrNotFound           = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrForbidden          = New("FORBIDDEN", http.StatusForbidden, "forbidden")
	ErrUnauthorized       = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrConflict           = New("CONFLICT", http.StatusConflict, "conflict")
	ErrValidation         = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal           = New("INTERNAL_ERROR", http.StatusInternalServerError, "Something went wrong!")
	ErrCacheMiss          = New("CACHE_MISS", http.StatusNotFound, "cache miss")
)

// pq error codes that map onto client-facing statuses.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// FromError normalises any error into an *Error. Validation failures from
// go-playground/validator become 400s with one detail per offending field,
// postgres constraint violations become 409s, explicit application errors
// pass through, everything else collapses to a 500.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]Detail, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, Detail{
				Path:    strings.ToLower(fe.Field()),
				Message: fieldMessage(fe),
			})
		}
		return &Error{
			Code:    ErrValidation.Code,
			Status:  ErrValidation.Status,
			Message: "Validation Error",
			Details: details,
			Err:     err,
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return &Error{
				Code:    ErrConflict.Code,
				Status:  ErrConflict.Status,
				Message: "Already exists!",
				Details: []Detail{{Path: pqErr.Constraint, Message: pqErr.Detail}},
				Err:     err,
			}
		case pqForeignKeyViolation:
			return &Error{
				Code:    ErrValidation.Code,
				Status:  ErrValidation.Status,
				Message: "referenced record does not exist",
				Details: []Detail{{Path: pqErr.Constraint, Message: pqErr.Detail}},
				Err:     err,
			}
		}
	}

	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", strings.ToLower(fe.Field()))
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the %s rule", fe.Tag())
	}
}
