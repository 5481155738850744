package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InvalidPeriodicityError represents a malformed recurrence pattern. It is
// rejected at construction time so it can never reach expansion.
type InvalidPeriodicityError struct {
	Reason string
}

func (e *InvalidPeriodicityError) Error() string {
	return fmt.Sprintf("invalid periodicity: %s", e.Reason)
}

// Is enables errors.Is() comparison for InvalidPeriodicityError
func (e *InvalidPeriodicityError) Is(target error) bool {
	_, ok := target.(*InvalidPeriodicityError)
	return ok
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrSchoolNotFound     = &NotFoundError{Entity: "school"}
	ErrResourceNotFound   = &NotFoundError{Entity: "resource"}
	ErrActivityNotFound   = &NotFoundError{Entity: "activity"}
	ErrAssignmentNotFound = &NotFoundError{Entity: "assignment"}

	// ErrNoVersionsFound means an activity id has no version history. Every
	// known activity has at least one version, so for calendar purposes the
	// activity simply does not exist.
	ErrNoVersionsFound = &NotFoundError{Entity: "activity versions"}
)

// Calendar Window Errors
var (
	ErrInvalidWindow = errors.New("calendar window must end after it starts")
	ErrWindowTooLong = errors.New("calendar window cannot exceed 7 days")
)

// Business Logic Errors
var (
	ErrInvalidTimeInterval   = errors.New("time interval is out of range")
	ErrResourceNotInSchool   = errors.New("resource does not belong to this school")
	ErrActivityNotInSchool   = errors.New("activity does not belong to this school")
	ErrDuplicateResourceIDs  = errors.New("assigned resource ids must be unique")
	ErrEffectiveFromNotAfter = errors.New("effective_from must be after the latest version")
	ErrUnknownTimeZone       = errors.New("unknown IANA time zone")
)

// Authentication Errors
var (
	ErrMissingAuthHeader = &AuthenticationError{Message: "missing or malformed Authorization header"}
	ErrInvalidToken      = &AuthenticationError{Message: "invalid or expired token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidPeriodicity checks if an error is an InvalidPeriodicityError
func IsInvalidPeriodicity(err error) bool {
	var periodicityErr *InvalidPeriodicityError
	return errors.As(err, &periodicityErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidPeriodicityError creates a new InvalidPeriodicityError
func NewInvalidPeriodicityError(format string, args ...interface{}) error {
	return &InvalidPeriodicityError{Reason: fmt.Sprintf(format, args...)}
}
