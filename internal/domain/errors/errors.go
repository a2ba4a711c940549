package errors

import (
	"net/http"

	"rapmaster/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Lookup errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrTrackNotFound = NewBaseError(
		http.StatusNotFound,
		"TRACK_NOT_FOUND",
		"Track not found",
		"",
	)

	ErrJobNotFound = NewBaseError(
		http.StatusNotFound,
		"JOB_NOT_FOUND",
		"Job not found",
		"",
	)

	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"Shop item not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Action precondition errors
	ErrInsufficientEnergy = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_ENERGY",
		"Not enough energy",
		"",
	)

	ErrInsufficientFame = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_FAME",
		"Not enough fame",
		"",
	)

	ErrInsufficientFunds = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_FUNDS",
		"Not enough money",
		"",
	)

	ErrInvalidBudget = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BUDGET",
		"Budget amount is not a valid tier",
		"",
	)

	// State transition errors
	ErrTrackAlreadyReleased = NewBaseError(
		http.StatusConflict,
		"TRACK_ALREADY_RELEASED",
		"Track has already been released",
		"",
	)

	ErrAlreadyHasVideo = NewBaseError(
		http.StatusConflict,
		"ALREADY_HAS_VIDEO",
		"Track already has a music video",
		"",
	)

	ErrSkillMaxLevel = NewBaseError(
		http.StatusConflict,
		"SKILL_MAX_LEVEL",
		"Skill is already at maximum level",
		"",
	)

	ErrItemAlreadyOwned = NewBaseError(
		http.StatusConflict,
		"ITEM_ALREADY_OWNED",
		"Item is already owned",
		"",
	)

	// Creation conflicts
	ErrProfileAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PROFILE_ALREADY_EXISTS",
		"A profile already exists for this user",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This username is already taken",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)
