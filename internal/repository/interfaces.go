package repository

import (
	"context"
	"time"

	"espresso-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CompanyRepositoryInterface defines the interface for the companies collection
type CompanyRepositoryInterface interface {
	Create(ctx context.Context, company *models.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	GetByName(ctx context.Context, name string) (*models.Company, error)
	GetAllWithWidgets(ctx context.Context) ([]models.Company, error)
}

// WidgetRepositoryInterface defines the interface for a company's widgets collection
type WidgetRepositoryInterface interface {
	Create(ctx context.Context, widget *models.Widget) error
	GetByID(ctx context.Context, companyID, id uuid.UUID) (*models.Widget, error)
	GetByName(ctx context.Context, companyID uuid.UUID, name string) (*models.Widget, error)
}

// BranchRepositoryInterface defines the interface for a widget's branches collection
type BranchRepositoryInterface interface {
	Create(ctx context.Context, branch *models.Branch) error
	GetByID(ctx context.Context, widgetID, id uuid.UUID) (*models.Branch, error)
	GetByName(ctx context.Context, widgetID uuid.UUID, name string) (*models.Branch, error)
	UpdateDeploymentArtifact(ctx context.Context, widgetID, id uuid.UUID, deploymentArtifactID string, updatedAt time.Time) error
}
