package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"espresso-backend/internal/database/models"
	apperrors "espresso-backend/internal/errors"
	"espresso-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewValidator returns a validator that reports fields by their JSON name
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}

// artifactIDRules mirrors the deployment_artifact_id tags on the branch requests
const artifactIDRules = "required,max=200"

// validateArtifactID checks the one field branch writes need before asking the oracle
func validateArtifactID(v *validator.Validate, artifactID string) error {
	err := v.Var(artifactID, artifactIDRules)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperrors.NewValidationError("deployment_artifact_id", fmt.Sprintf("failed on the '%s' rule", fieldErrs[0].Tag()))
	}
	return apperrors.NewValidationError("deployment_artifact_id", err.Error())
}

// parseID turns a path or body identifier into a document key. Any string is a
// legal key, so a malformed one simply resolves to nothing.
func parseID(id string) (uuid.UUID, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed == uuid.Nil {
		return uuid.Nil, false
	}
	return parsed, true
}

// resolveCompany loads the company addressed by id or returns ErrCompanyNotFound
func resolveCompany(ctx context.Context, repo repository.CompanyRepositoryInterface, id string) (*models.Company, error) {
	companyID, ok := parseID(id)
	if !ok {
		return nil, apperrors.ErrCompanyNotFound
	}
	company, err := repo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to verify company: %w", err)
	}
	return company, nil
}

// resolveWidget loads the widget addressed by id under company
func resolveWidget(ctx context.Context, repo repository.WidgetRepositoryInterface, company *models.Company, id string) (*models.Widget, error) {
	widgetID, ok := parseID(id)
	if !ok {
		return nil, apperrors.ErrWidgetNotFound
	}
	widget, err := repo.GetByID(ctx, company.ID, widgetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWidgetNotFound
		}
		return nil, fmt.Errorf("failed to verify widget: %w", err)
	}
	return widget, nil
}

// resolveBranch loads the branch addressed by id under widget
func resolveBranch(ctx context.Context, repo repository.BranchRepositoryInterface, widget *models.Widget, id string) (*models.Branch, error) {
	branchID, ok := parseID(id)
	if !ok {
		return nil, apperrors.ErrBranchNotFound
	}
	branch, err := repo.GetByID(ctx, widget.ID, branchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to verify branch: %w", err)
	}
	return branch, nil
}
