package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "Company"}
		assert.Equal(t, "Company not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "Widget"}
		err2 := &NotFoundError{Entity: "Widget"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrWidgetNotFound, ErrBranchNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("lookup: %w", ErrCompanyNotFound)
		assert.True(t, errors.Is(wrapped, ErrCompanyNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrBranchNotFound))
		assert.False(t, IsNotFound(ErrBranchExists))
		assert.False(t, IsNotFound(ErrDeploymentArtifactNotFound))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("errors.Is matches on entity", func(t *testing.T) {
		assert.True(t, errors.Is(fmt.Errorf("insert: %w", ErrBranchExists), ErrBranchExists))
		assert.False(t, errors.Is(ErrBranchExists, ErrWidgetExists))
	})

	t.Run("Predefined messages", func(t *testing.T) {
		assert.Equal(t, "Company name already exists", ErrCompanyExists.Error())
		assert.Equal(t, "Widget name already exists", ErrWidgetExists.Error())
		assert.Equal(t, "Branch name already exists", ErrBranchExists.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrCompanyExists))
		assert.False(t, IsAlreadyExists(ErrCompanyNotFound))
	})
}

func TestUnprocessableEntityError(t *testing.T) {
	assert.Equal(t, "Deployment artifact not found", ErrDeploymentArtifactNotFound.Error())
	assert.True(t, IsUnprocessableEntity(fmt.Errorf("create branch: %w", ErrDeploymentArtifactNotFound)))
	assert.False(t, IsUnprocessableEntity(ErrBranchNotFound))
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "company_name", Message: "is required"}
		assert.Equal(t, "validation error: company_name - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid body"}
		assert.Equal(t, "validation error: invalid body", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("widget_name", "is required")))
		assert.False(t, IsValidation(ErrWidgetNotFound))
	})
}

func TestAuthenticationAndConfigurationErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidToken))
	assert.Equal(t, "Authorization header is required", ErrMissingAuthorization.Error())
	assert.False(t, IsAuthentication(ErrJWTSecretMissing))

	assert.True(t, IsConfiguration(ErrUnknownArtifactSource))
	assert.True(t, IsConfiguration(fmt.Errorf("load: %w", ErrStorageBucketMissing)))
	assert.False(t, IsConfiguration(ErrCompanyNotFound))
}
