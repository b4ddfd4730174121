package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"espresso-backend/internal/database/models"
	apperrors "espresso-backend/internal/errors"
	"espresso-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// CompanyService handles business logic for companies
type CompanyService struct {
	repo      repository.CompanyRepositoryInterface
	validator *validator.Validate
}

// NewCompanyService creates a new company service
func NewCompanyService(repo repository.CompanyRepositoryInterface, validator *validator.Validate) *CompanyService {
	return &CompanyService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCompanyRequest represents the request to create a company
type CreateCompanyRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=200" example:"Acme"`
}

// CreateCompanyResponse carries the generated company id
type CreateCompanyResponse struct {
	CompanyID string `json:"company_id" example:"0b0b6a43-3d0f-4b4a-9a53-6f1f7d2b9a10"`
}

// CompanyNode is one company of the nested tree returned by GetTree
type CompanyNode struct {
	ID          string       `json:"id"`
	CompanyName string       `json:"company_name"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   *time.Time   `json:"updated_at"`
	Widgets     []WidgetNode `json:"widgets"`
}

// WidgetNode is one widget of the nested tree returned by GetTree
type WidgetNode struct {
	ID         string           `json:"id"`
	WidgetName string           `json:"widget_name"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  *time.Time       `json:"updated_at"`
	Branches   []BranchResponse `json:"branches"`
}

// Create creates a new company. The name must not be used by any other company.
func (s *CompanyService) Create(ctx context.Context, req *CreateCompanyRequest) (*CreateCompanyResponse, error) {
	// Validate request
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	// Check if a company with the same name exists
	existing, err := s.repo.GetByName(ctx, req.CompanyName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing company: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCompanyExists
	}

	company := &models.Company{
		CompanyName: req.CompanyName,
	}

	if err := s.repo.Create(ctx, company); err != nil {
		// another writer took the name between the check and the insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrCompanyExists
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return &CreateCompanyResponse{CompanyID: company.ID.String()}, nil
}

// GetIDByName resolves a company name to its id
func (s *CompanyService) GetIDByName(ctx context.Context, companyName string) (string, error) {
	company, err := s.repo.GetByName(ctx, companyName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrCompanyNotFound
		}
		return "", fmt.Errorf("failed to get company: %w", err)
	}
	return company.ID.String(), nil
}

// GetTree returns every company with its widgets and their branches
func (s *CompanyService) GetTree(ctx context.Context) ([]CompanyNode, error) {
	companies, err := s.repo.GetAllWithWidgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get companies: %w", err)
	}

	nodes := make([]CompanyNode, len(companies))
	for i := range companies {
		nodes[i] = toCompanyNode(&companies[i])
	}
	return nodes, nil
}

func toCompanyNode(company *models.Company) CompanyNode {
	widgets := make([]WidgetNode, len(company.Widgets))
	for i := range company.Widgets {
		widget := &company.Widgets[i]
		branches := make([]BranchResponse, len(widget.Branches))
		for j := range widget.Branches {
			branches[j] = *toBranchResponse(&widget.Branches[j], "")
		}
		widgets[i] = WidgetNode{
			ID:         widget.ID.String(),
			WidgetName: widget.WidgetName,
			CreatedAt:  widget.CreatedAt,
			UpdatedAt:  widget.UpdatedAt,
			Branches:   branches,
		}
	}
	return CompanyNode{
		ID:          company.ID.String(),
		CompanyName: company.CompanyName,
		CreatedAt:   company.CreatedAt,
		UpdatedAt:   company.UpdatedAt,
		Widgets:     widgets,
	}
}
