package service

import (
	"context"
	"errors"
	"fmt"

	"espresso-backend/internal/database/models"
	apperrors "espresso-backend/internal/errors"
	"espresso-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// WidgetService handles business logic for widgets
type WidgetService struct {
	repo        repository.WidgetRepositoryInterface
	companyRepo repository.CompanyRepositoryInterface
	validator   *validator.Validate
}

// NewWidgetService creates a new widget service
func NewWidgetService(repo repository.WidgetRepositoryInterface, companyRepo repository.CompanyRepositoryInterface, validator *validator.Validate) *WidgetService {
	return &WidgetService{
		repo:        repo,
		companyRepo: companyRepo,
		validator:   validator,
	}
}

// CreateWidgetRequest represents the request to create a widget
type CreateWidgetRequest struct {
	CompanyID  string `json:"company_id" validate:"required" example:"0b0b6a43-3d0f-4b4a-9a53-6f1f7d2b9a10"`
	WidgetName string `json:"widget_name" validate:"required,max=200" example:"Widget A"`
}

// CreateWidgetResponse carries the generated widget id
type CreateWidgetResponse struct {
	WidgetID string `json:"widget_id"`
}

// Create creates a new widget under an existing company
func (s *WidgetService) Create(ctx context.Context, req *CreateWidgetRequest) (*CreateWidgetResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	company, err := resolveCompany(ctx, s.companyRepo, req.CompanyID)
	if err != nil {
		return nil, err
	}

	// Check if widget with same name exists in the company
	existing, err := s.repo.GetByName(ctx, company.ID, req.WidgetName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing widget: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrWidgetExists
	}

	widget := &models.Widget{
		CompanyID:  company.ID,
		WidgetName: req.WidgetName,
	}

	if err := s.repo.Create(ctx, widget); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrWidgetExists
		}
		return nil, fmt.Errorf("failed to create widget: %w", err)
	}

	return &CreateWidgetResponse{WidgetID: widget.ID.String()}, nil
}

// GetIDByName resolves a widget name within a company to its id
func (s *WidgetService) GetIDByName(ctx context.Context, companyID, widgetName string) (string, error) {
	company, err := resolveCompany(ctx, s.companyRepo, companyID)
	if err != nil {
		return "", err
	}

	widget, err := s.repo.GetByName(ctx, company.ID, widgetName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrWidgetNotFound
		}
		return "", fmt.Errorf("failed to get widget: %w", err)
	}
	return widget.ID.String(), nil
}
