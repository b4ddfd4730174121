package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CompanyServiceInterface defines the interface for company service
type CompanyServiceInterface interface {
	Create(ctx context.Context, req *CreateCompanyRequest) (*CreateCompanyResponse, error)
	GetIDByName(ctx context.Context, companyName string) (string, error)
	GetTree(ctx context.Context) ([]CompanyNode, error)
}

// WidgetServiceInterface defines the interface for widget service
type WidgetServiceInterface interface {
	Create(ctx context.Context, req *CreateWidgetRequest) (*CreateWidgetResponse, error)
	GetIDByName(ctx context.Context, companyID, widgetName string) (string, error)
}

// BranchServiceInterface defines the interface for branch service
type BranchServiceInterface interface {
	Create(ctx context.Context, req *CreateBranchRequest) (*CreateBranchResponse, error)
	Update(ctx context.Context, branchID string, req *UpdateBranchRequest) error
	Get(ctx context.Context, companyID, widgetID, branchID string) (*BranchResponse, error)
	GetIDByName(ctx context.Context, companyID, widgetID, branchName string) (string, error)
}
