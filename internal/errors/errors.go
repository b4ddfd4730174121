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

// AlreadyExistsError represents an error when an entity already exists.
// The HTTP surface reports it as 422.
type AlreadyExistsError struct {
	Entity string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// UnprocessableEntityError represents a request that references something
// outside the store (e.g. a deployment artifact) that does not exist.
type UnprocessableEntityError struct {
	Entity string
}

func (e *UnprocessableEntityError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for UnprocessableEntityError
func (e *UnprocessableEntityError) Is(target error) bool {
	t, ok := target.(*UnprocessableEntityError)
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
	ErrCompanyNotFound = &NotFoundError{Entity: "Company"}
	ErrWidgetNotFound  = &NotFoundError{Entity: "Widget"}
	ErrBranchNotFound  = &NotFoundError{Entity: "Branch"}
)

// Already Exists Errors
var (
	ErrCompanyExists = &AlreadyExistsError{Entity: "Company name"}
	ErrWidgetExists  = &AlreadyExistsError{Entity: "Widget name"}
	ErrBranchExists  = &AlreadyExistsError{Entity: "Branch name"}
)

// Unprocessable Entity Errors
var (
	ErrDeploymentArtifactNotFound = &UnprocessableEntityError{Entity: "Deployment artifact"}
)

// Authentication Errors
var (
	ErrMissingAuthorization = &AuthenticationError{Message: "Authorization header is required"}
	ErrInvalidAuthorization = &AuthenticationError{Message: "Invalid authorization header format"}
	ErrInvalidToken         = &AuthenticationError{Message: "Invalid token"}
)

// Configuration Errors
var (
	ErrUnknownArtifactSource = &ConfigurationError{Message: "ARTIFACT_SOURCE must be one of: fixture, bucket"}
	ErrStorageBucketMissing  = &ConfigurationError{Message: "FIREBASE_STORAGE_BUCKET is required for the bucket artifact source"}
	ErrJWTSecretMissing      = &ConfigurationError{Message: "JWT_SECRET must be set to a non-default secret"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsUnprocessableEntity checks if an error is an UnprocessableEntityError
func IsUnprocessableEntity(err error) bool {
	var unprocessableErr *UnprocessableEntityError
	return errors.As(err, &unprocessableErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
