package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"espresso-backend/internal/artifact"
	"espresso-backend/internal/database/models"
	apperrors "espresso-backend/internal/errors"
	"espresso-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// BranchService handles business logic for branches
type BranchService struct {
	repo        repository.BranchRepositoryInterface
	widgetRepo  repository.WidgetRepositoryInterface
	companyRepo repository.CompanyRepositoryInterface
	artifacts   artifact.Oracle
	validator   *validator.Validate
	now         func() time.Time
}

// NewBranchService creates a new branch service
func NewBranchService(
	repo repository.BranchRepositoryInterface,
	widgetRepo repository.WidgetRepositoryInterface,
	companyRepo repository.CompanyRepositoryInterface,
	artifacts artifact.Oracle,
	validator *validator.Validate,
) *BranchService {
	return &BranchService{
		repo:        repo,
		widgetRepo:  widgetRepo,
		companyRepo: companyRepo,
		artifacts:   artifacts,
		validator:   validator,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CreateBranchRequest represents the request to create a branch
type CreateBranchRequest struct {
	CompanyID            string `json:"company_id" validate:"required"`
	WidgetID             string `json:"widget_id" validate:"required"`
	BranchName           string `json:"branch_name" validate:"required,max=200" example:"main"`
	DeploymentArtifactID string `json:"deployment_artifact_id" validate:"required,max=200" example:"1a3bfc85-0bf6-4ab0-99c0-43c37ec9efd5"`
}

// CreateBranchResponse carries the generated branch id
type CreateBranchResponse struct {
	BranchID string `json:"branch_id"`
}

// UpdateBranchRequest represents the request to repoint a branch at another artifact
type UpdateBranchRequest struct {
	CompanyID            string `json:"company_id" validate:"required"`
	WidgetID             string `json:"widget_id" validate:"required"`
	DeploymentArtifactID string `json:"deployment_artifact_id" validate:"required,max=200" example:"d784441e-4274-4b70-b775-f18bd87d9214"`
}

// BranchResponse represents a stored branch
type BranchResponse struct {
	ID                    string     `json:"id"`
	BranchName            string     `json:"branch_name"`
	DeploymentArtifactID  string     `json:"deployment_artifact_id"`
	DeploymentArtifactURI string     `json:"deployment_artifact_uri,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             *time.Time `json:"updated_at"`
}

// checkArtifact gates every branch write on the artifact being present in the bucket
func (s *BranchService) checkArtifact(ctx context.Context, artifactID string) error {
	ok, err := s.artifacts.Exists(ctx, artifactID)
	if err != nil {
		return fmt.Errorf("failed to look up deployment artifact: %w", err)
	}
	if !ok {
		return apperrors.ErrDeploymentArtifactNotFound
	}
	return nil
}

// Create creates a new branch. The artifact is checked before anything else in
// the request, then the company, the widget and finally the branch name.
func (s *BranchService) Create(ctx context.Context, req *CreateBranchRequest) (*CreateBranchResponse, error) {
	// An absent artifact wins over every other problem with the request
	if err := validateArtifactID(s.validator, req.DeploymentArtifactID); err != nil {
		return nil, err
	}
	if err := s.checkArtifact(ctx, req.DeploymentArtifactID); err != nil {
		return nil, err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	company, err := resolveCompany(ctx, s.companyRepo, req.CompanyID)
	if err != nil {
		return nil, err
	}
	widget, err := resolveWidget(ctx, s.widgetRepo, company, req.WidgetID)
	if err != nil {
		return nil, err
	}

	// Check if branch with same name exists in the widget
	existing, err := s.repo.GetByName(ctx, widget.ID, req.BranchName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing branch: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrBranchExists
	}

	branch := &models.Branch{
		WidgetID:             widget.ID,
		BranchName:           req.BranchName,
		DeploymentArtifactID: req.DeploymentArtifactID,
	}

	if err := s.repo.Create(ctx, branch); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrBranchExists
		}
		return nil, fmt.Errorf("failed to create branch: %w", err)
	}

	return &CreateBranchResponse{BranchID: branch.ID.String()}, nil
}

// Update points an existing branch at another artifact. Only
// deployment_artifact_id and updated_at change.
func (s *BranchService) Update(ctx context.Context, branchID string, req *UpdateBranchRequest) error {
	if err := validateArtifactID(s.validator, req.DeploymentArtifactID); err != nil {
		return err
	}
	if err := s.checkArtifact(ctx, req.DeploymentArtifactID); err != nil {
		return err
	}
	if err := validateRequest(s.validator, req); err != nil {
		return err
	}

	company, err := resolveCompany(ctx, s.companyRepo, req.CompanyID)
	if err != nil {
		return err
	}
	widget, err := resolveWidget(ctx, s.widgetRepo, company, req.WidgetID)
	if err != nil {
		return err
	}
	branch, err := resolveBranch(ctx, s.repo, widget, branchID)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateDeploymentArtifact(ctx, widget.ID, branch.ID, req.DeploymentArtifactID, s.now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBranchNotFound
		}
		return fmt.Errorf("failed to update branch: %w", err)
	}

	return nil
}

// Get returns a branch after checking company, widget and branch in that order
func (s *BranchService) Get(ctx context.Context, companyID, widgetID, branchID string) (*BranchResponse, error) {
	company, err := resolveCompany(ctx, s.companyRepo, companyID)
	if err != nil {
		return nil, err
	}
	widget, err := resolveWidget(ctx, s.widgetRepo, company, widgetID)
	if err != nil {
		return nil, err
	}
	branch, err := resolveBranch(ctx, s.repo, widget, branchID)
	if err != nil {
		return nil, err
	}

	return toBranchResponse(branch, s.artifacts.URI(branch.DeploymentArtifactID)), nil
}

// GetIDByName resolves a branch name within a widget to its id
func (s *BranchService) GetIDByName(ctx context.Context, companyID, widgetID, branchName string) (string, error) {
	company, err := resolveCompany(ctx, s.companyRepo, companyID)
	if err != nil {
		return "", err
	}
	widget, err := resolveWidget(ctx, s.widgetRepo, company, widgetID)
	if err != nil {
		return "", err
	}

	branch, err := s.repo.GetByName(ctx, widget.ID, branchName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrBranchNotFound
		}
		return "", fmt.Errorf("failed to get branch: %w", err)
	}
	return branch.ID.String(), nil
}

// toBranchResponse converts a branch model to response
func toBranchResponse(branch *models.Branch, artifactURI string) *BranchResponse {
	return &BranchResponse{
		ID:                    branch.ID.String(),
		BranchName:            branch.BranchName,
		DeploymentArtifactID:  branch.DeploymentArtifactID,
		DeploymentArtifactURI: artifactURI,
		CreatedAt:             branch.CreatedAt,
		UpdatedAt:             branch.UpdatedAt,
	}
}
