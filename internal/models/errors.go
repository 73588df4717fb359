package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across the application. Each code maps to exactly one
// HTTP status at the handler boundary.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeReference     = "REFERENCE_ERROR"
	CodeConflict      = "CONFLICT"
	CodeNotFound      = "NOT_FOUND"
	CodeInvalidAction = "INVALID_ACTION"
	CodeIntegrity     = "INTEGRITY_ERROR"
	CodeInternal      = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Field   string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError reports malformed, missing or wrong-typed input for a field.
func NewValidationError(field, message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Field:   field,
		Message: message,
	}
}

// NewReferenceError reports a foreign key that does not resolve to an existing row.
func NewReferenceError(field string) *AppError {
	return &AppError{
		Code:    CodeReference,
		Field:   field,
		Message: fmt.Sprintf("%s does not reference an existing record", field),
	}
}

// NewConflictError reports a uniqueness violation on the given field.
func NewConflictError(field string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Field:   field,
		Message: fmt.Sprintf("a record with this %s already exists", field),
	}
}

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

// NewInvalidActionError reports an unrecognized state-transition token.
func NewInvalidActionError(action string) *AppError {
	return &AppError{
		Code:    CodeInvalidAction,
		Field:   "action",
		Message: fmt.Sprintf("unknown action %q (expected %q or %q)", action, ActionAccept, ActionReject),
	}
}

// NewIntegrityError reports a storage-layer constraint violation that
// surfaced despite the application-level checks.
func NewIntegrityError(err error) *AppError {
	return &AppError{
		Code:    CodeIntegrity,
		Message: "storage constraint violated",
		Err:     err,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
			Field: appErr.Field,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
