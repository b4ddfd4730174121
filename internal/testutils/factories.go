package testutils

import (
	"fmt"
	"time"

	"espresso-backend/internal/database/models"

	"github.com/google/uuid"
)

// KnownArtifactID is present in the embedded artifact fixture table
const KnownArtifactID = "1a3bfc85-0bf6-4ab0-99c0-43c37ec9efd5"

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with a unique name
func (f *CompanyFactory) Create() *models.Company {
	id := uuid.New()
	return &models.Company{
		DocumentModel: models.DocumentModel{
			ID:        id,
			CreatedAt: time.Now().UTC(),
		},
		CompanyName: fmt.Sprintf("Company %s", id.String()[:8]),
	}
}

// WithName sets a custom name for the company
func (f *CompanyFactory) WithName(name string) *models.Company {
	company := f.Create()
	company.CompanyName = name
	return company
}

// WidgetFactory provides methods to create test Widget data
type WidgetFactory struct{}

// NewWidgetFactory creates a new WidgetFactory
func NewWidgetFactory() *WidgetFactory {
	return &WidgetFactory{}
}

// Create creates a test Widget under companyID
func (f *WidgetFactory) Create(companyID uuid.UUID) *models.Widget {
	id := uuid.New()
	return &models.Widget{
		DocumentModel: models.DocumentModel{
			ID:        id,
			CreatedAt: time.Now().UTC(),
		},
		CompanyID:  companyID,
		WidgetName: fmt.Sprintf("Widget %s", id.String()[:8]),
	}
}

// WithName sets a custom name for the widget
func (f *WidgetFactory) WithName(companyID uuid.UUID, name string) *models.Widget {
	widget := f.Create(companyID)
	widget.WidgetName = name
	return widget
}

// BranchFactory provides methods to create test Branch data
type BranchFactory struct{}

// NewBranchFactory creates a new BranchFactory
func NewBranchFactory() *BranchFactory {
	return &BranchFactory{}
}

// Create creates a test Branch under widgetID pointing at KnownArtifactID
func (f *BranchFactory) Create(widgetID uuid.UUID) *models.Branch {
	id := uuid.New()
	return &models.Branch{
		DocumentModel: models.DocumentModel{
			ID:        id,
			CreatedAt: time.Now().UTC(),
		},
		WidgetID:             widgetID,
		BranchName:           fmt.Sprintf("branch-%s", id.String()[:8]),
		DeploymentArtifactID: KnownArtifactID,
	}
}

// WithName sets a custom name for the branch
func (f *BranchFactory) WithName(widgetID uuid.UUID, name string) *models.Branch {
	branch := f.Create(widgetID)
	branch.BranchName = name
	return branch
}

// FactorySet provides access to all factories
type FactorySet struct {
	Company *CompanyFactory
	Widget  *WidgetFactory
	Branch  *BranchFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Company: NewCompanyFactory(),
		Widget:  NewWidgetFactory(),
		Branch:  NewBranchFactory(),
	}
}
